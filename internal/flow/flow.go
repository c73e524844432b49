// Package flow computes flow-sensitive narrowed types (§4.7) by walking
// an ast.FlowGraph backwards from a use site. The binder builds the graph;
// this package only ever reads it. Grounded on the typeof-guard narrowing
// pattern in the broader example pack's control-flow inference (the
// teacher carries no flow analysis of its own — this subsystem has no
// in-repo precedent, so its shape follows that external reference instead
// of an escalier file).
package flow

import (
	"github.com/tscore-lang/tscore/internal/ast"
	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/type_system"
)

// Guard describes a narrowing predicate attached to a FlowConditionTrue/
// FlowConditionFalse node: "symbol's declared type narrows to Narrowed
// when the branch taken is Positive".
type Guard struct {
	Symbol   ast.SymbolID
	Narrowed type_system.Type
	Positive bool
}

// GuardResolver reads the guard predicate off a condition node's
// expression. The real implementation lives with the binder/checker
// (reading `typeof x === "string"`-shaped syntax); this package takes it
// as a collaborator interface so it stays decoupled from any concrete
// expression grammar (§1, parser/binder are external collaborators).
type GuardResolver interface {
	ResolveGuard(expr ast.NodeIndex) (Guard, bool)
}

// ExprTypeResolver reads an already-evaluated expression node's static
// type off the Evaluator (§4.7 "replace current type with the assigned
// expression's type"). Like GuardResolver, this is a collaborator
// interface rather than a direct import of the Evaluator, keeping this
// package decoupled from any concrete expression/typing grammar.
type ExprTypeResolver interface {
	ResolveExprType(expr ast.NodeIndex) (type_system.Type, bool)
}

// cacheKey is the memoization key of §4.9 ("(flow_node, symbol,
// declared_type) -> narrowed_type").
type cacheKey struct {
	node   ast.FlowNodeID
	symbol ast.SymbolID
	typ    string
}

// Analyzer narrows a symbol's declared type at a given flow-graph node.
type Analyzer struct {
	graph    *ast.FlowGraph
	guards   GuardResolver
	exprs    ExprTypeResolver
	interner *type_system.Interner
	engine   *judge.Engine
	iterCap  int
	memo     map[cacheKey]type_system.Type
}

func New(graph *ast.FlowGraph, guards GuardResolver, interner *type_system.Interner, engine *judge.Engine, iterCap int) *Analyzer {
	return &Analyzer{
		graph: graph, guards: guards, interner: interner, engine: engine,
		iterCap: iterCap, memo: map[cacheKey]type_system.Type{},
	}
}

// WithExprTypes attaches the resolver FlowAssignment needs to narrow to an
// assigned expression's actual type rather than falling back to the
// antecedent's. Optional: an Analyzer with no resolver widens an
// assignment to the symbol back to its declared type.
func (a *Analyzer) WithExprTypes(exprs ExprTypeResolver) *Analyzer {
	a.exprs = exprs
	return a
}

// NarrowAt computes the narrowed type of symbol at the given flow node,
// starting from its declared type (§4.7). A loop label is walked once,
// with its back edge taken as the declared type; loops are not iterated
// to a fixed point. iterCap bounds the length of one walk (§5, §9 "flow
// cap"); past it the walk falls back to the declared type.
func (a *Analyzer) NarrowAt(node ast.FlowNodeID, symbol ast.SymbolID, declared type_system.Type) type_system.Type {
	key := cacheKey{node: node, symbol: symbol, typ: declared.String()}
	if cached, ok := a.memo[key]; ok {
		return cached
	}

	result := a.walk(node, symbol, declared, map[ast.FlowNodeID]type_system.Type{}, 0)
	a.memo[key] = result
	return result
}

func (a *Analyzer) walk(node ast.FlowNodeID, symbol ast.SymbolID, declared type_system.Type, visiting map[ast.FlowNodeID]type_system.Type, iter int) type_system.Type {
	if iter > a.iterCap {
		return declared // iteration-budget cancellation: fall back to the widest known type
	}
	if t, ok := visiting[node]; ok {
		return t // already on this walk's stack: assume unchanged (coinductive join)
	}

	n, ok := a.graph.At(node)
	if !ok {
		return declared
	}

	switch n.Kind {
	case ast.FlowStart:
		return declared

	case ast.FlowAssignment:
		if n.Symbol == symbol {
			// The assigned expression's static type supersedes the
			// antecedent narrowing entirely (§4.7). Without an
			// ExprTypeResolver attached there is no way to ask the
			// Evaluator what that type is, so this conservatively widens
			// back to declared rather than guessing.
			if a.exprs != nil {
				if t, ok := a.exprs.ResolveExprType(n.Expr); ok {
					return t
				}
			}
			return declared
		}
		return a.antecedent(n, symbol, declared, visiting, iter)

	case ast.FlowConditionTrue, ast.FlowConditionFalse:
		base := a.antecedent(n, symbol, declared, visiting, iter)
		if a.guards == nil {
			return base
		}
		g, ok := a.guards.ResolveGuard(n.Expr)
		if !ok || g.Symbol != symbol {
			return base
		}
		wantPositive := n.Kind == ast.FlowConditionTrue
		if g.Positive != wantPositive {
			return base
		}
		return a.narrow(base, g.Narrowed)

	case ast.FlowReduceLabel:
		visiting[node] = declared // break recursive joins at `declared` until proven otherwise
		var branches []type_system.Type
		for _, ante := range n.Antecedents {
			branches = append(branches, a.walk(ante, symbol, declared, visiting, iter+1))
		}
		delete(visiting, node)
		return a.interner.UnionOf(nil, branches...)

	case ast.FlowLoopLabel:
		visiting[node] = declared
		result := a.antecedent(n, symbol, declared, visiting, iter+1)
		delete(visiting, node)
		return result

	default: // FlowBranchLabel, FlowSwitchCase, FlowArrayMutation, FlowCall
		return a.antecedent(n, symbol, declared, visiting, iter)
	}
}

// antecedent narrows through a node's single (or first) antecedent,
// unioning across multiple antecedents when present (a branch label).
func (a *Analyzer) antecedent(n ast.FlowNode, symbol ast.SymbolID, declared type_system.Type, visiting map[ast.FlowNodeID]type_system.Type, iter int) type_system.Type {
	if len(n.Antecedents) == 0 {
		return declared
	}
	if len(n.Antecedents) == 1 {
		return a.walk(n.Antecedents[0], symbol, declared, visiting, iter+1)
	}
	var branches []type_system.Type
	for _, ante := range n.Antecedents {
		branches = append(branches, a.walk(ante, symbol, declared, visiting, iter+1))
	}
	return a.interner.UnionOf(nil, branches...)
}

// narrow applies a typeof-style guard to base (§4.7 "type guard
// narrowing"): each union member of base that is itself related to
// narrowed survives unchanged, since the narrowed type is usually a
// primitive/shape check rather than base's exact literal. A base with no
// surviving member (e.g. the guard names a type unrelated to any member)
// falls back to narrowed itself, matching a `typeof x === "string"` guard
// against a variable TypeScript hasn't statically excluded `string` from.
// Plain IntersectionOf would leave `(string | number) & string` as an
// unreduced intersection node instead of collapsing it to `string`, since
// it dedupes structurally rather than semantically.
func (a *Analyzer) narrow(base, narrowed type_system.Type) type_system.Type {
	members := []type_system.Type{base}
	if u, ok := type_system.Prune(base).(*type_system.UnionType); ok {
		members = u.Types
	}

	var kept []type_system.Type
	for _, m := range members {
		if a.engine.IsSubtype(m, narrowed, judge.Policy{}).Bool() {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return narrowed
	}
	return a.interner.UnionOf(nil, kept...)
}
