// Package ast defines the slim external-interface contract that the type
// core consumes from the parser and binder. Per the specification these are
// collaborators outside this repository's scope: the real scanner, parser
// and binder produce a cache-dense AST arena indexed by opaque handles, a
// symbol table per scope, and a flow graph. This package models the shape
// of those inputs — nodes addressed by index, never by owning pointer — so
// the type core can be exercised and tested without a parser attached.
package ast

// NodeIndex addresses a node inside an Arena. NoNode (NodeIndex(-1))
// never denotes a real node.
type NodeIndex int32

const NoNode NodeIndex = -1

// Kind is the syntactic kind of a node, analogous to ts.SyntaxKind. Only
// the kinds the type core inspects directly are enumerated; the rest live
// behind DataIndex-addressed side tables the parser owns.
type Kind uint16

const (
	KindUnknown Kind = iota
	KindSourceFile
	KindIdentifier
	KindVarDecl
	KindFuncDecl
	KindClassDecl
	KindInterfaceDecl
	KindTypeAliasDecl
	KindEnumDecl
	KindParam
	KindCallExpr
	KindNewExpr
	KindMemberExpr
	KindConditionalExpr
	KindBinaryExpr
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindSwitchStmt
	KindReturnStmt
	KindThrowStmt
	KindTryStmt
	KindArrayLit
	KindObjectLit
	KindTypeAnnotation
)

// Node is a read-only view over one arena slot: syntactic kind, source
// span, and an opaque index into a kind-specific payload table. Consumers
// never hold pointers across node boundaries — only indices — so the
// arena can be reallocated or shared across worker threads (§5).
type Node struct {
	Kind      Kind
	Span      Span
	DataIndex int32
}

// Arena is the node-index-addressed store the parser hands to the binder
// and the binder hands to the type core. It is append-only for the
// lifetime of a single parse; in incremental mode a new Arena replaces the
// old one wholesale per changed file.
type Arena struct {
	Nodes []Node
}

func NewArena() *Arena { return &Arena{} }

func (a *Arena) Add(n Node) NodeIndex {
	a.Nodes = append(a.Nodes, n)
	return NodeIndex(len(a.Nodes) - 1)
}

func (a *Arena) At(i NodeIndex) (Node, bool) {
	if i < 0 || int(i) >= len(a.Nodes) {
		return Node{}, false
	}
	return a.Nodes[i], true
}

// SymbolID names a declaration-site binding. The binder assigns these;
// the type core only ever receives them by value.
type SymbolID int32

// ScopeKind distinguishes the container kinds the spec's scope chain uses.
type ScopeKind uint8

const (
	ScopeSourceFile ScopeKind = iota
	ScopeModule
	ScopeFunction
	ScopeBlock
	ScopeClass
	ScopeConditionalInfer
)

// Scope is one link in the binder's scope chain. Parent is NoScope at the
// root. Symbols maps a name to the SymbolID declared in this scope link
// (never across links — lookup walks Parent explicitly).
type ScopeID int32

const NoScope ScopeID = -1

type ScopeInfo struct {
	Kind    ScopeKind
	Parent  ScopeID
	Symbols map[string]SymbolID
}

// SymbolTable is the per-file (or per-module) table the binder produces.
type SymbolTable struct {
	Scopes  []ScopeInfo
	Decls   map[SymbolID]NodeIndex
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Decls: map[SymbolID]NodeIndex{}}
}
