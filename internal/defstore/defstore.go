// Package defstore is the Definition Store (§4.2): it materializes a
// declaration's type lazily, on first reference, and detects a
// declaration that (directly or transitively) depends on its own value
// before it has one. Grounded on checker/package_registry.go's
// error-returning (not panicking) registry pattern, with the lazy-thunk
// and cycle-sentinel behavior of the deleted dep_graph package adapted to
// the slim ast.NodeIndex model: declarations are identified by DeclID, not
// by owning a pointer into a full AST.
package defstore

import (
	"github.com/tidwall/btree"

	"github.com/tscore-lang/tscore/internal/ast"
	"github.com/tscore-lang/tscore/internal/diagnostics"
	"github.com/tscore-lang/tscore/internal/type_system"
)

// DeclID names one declaration the binder discovered. The binder assigns
// these; the Definition Store never invents its own.
type DeclID int32

type state uint8

const (
	stateUnresolved state = iota
	stateResolving
	stateResolved
)

// Thunk computes a declaration's type on demand. It runs at most once per
// declaration; its result (or the cyclic-reference error) is cached
// permanently until the next Reset.
type Thunk func() (type_system.Type, error)

type entry struct {
	state  state
	thunk  Thunk
	result type_system.Type
	err    error
}

// Store is the lazy, cycle-detecting declaration table. Keys are ordered
// (via tidwall/btree) so iterating the whole store — e.g. to report every
// unresolved cycle at once — is deterministic across runs (§5).
type Store struct {
	entries *btree.Map[DeclID, *entry]
	names   *btree.Map[string, DeclID]
}

func New() *Store {
	return &Store{
		entries: &btree.Map[DeclID, *entry]{},
		names:   &btree.Map[string, DeclID]{},
	}
}

// Register associates a declaration with the thunk that computes its
// type. Re-registering an id replaces the thunk and clears any cached
// result, for incremental re-checking of a changed declaration.
func (s *Store) Register(id DeclID, name string, thunk Thunk) {
	s.entries.Set(id, &entry{thunk: thunk})
	if name != "" {
		s.names.Set(name, id)
	}
}

// Lookup resolves a declaration's name to its materialized type. A
// declaration still resolving when Lookup re-enters it (a cyclic
// reference) reports CyclicDependency rather than recursing forever.
func (s *Store) Lookup(name string) (type_system.Type, error) {
	id, ok := s.names.Get(name)
	if !ok {
		return nil, nil
	}
	return s.Resolve(id)
}

// Resolve materializes id's type, running its thunk at most once.
func (s *Store) Resolve(id DeclID) (type_system.Type, error) {
	e, ok := s.entries.Get(id)
	if !ok {
		return nil, nil
	}
	switch e.state {
	case stateResolved:
		return e.result, e.err
	case stateResolving:
		return nil, diagnostics.CyclicDependency(ast.Span{}, []string{})
	}

	e.state = stateResolving
	result, err := e.thunk()
	e.state = stateResolved
	e.result = result
	e.err = err
	return result, err
}

// Reset clears every cached result (but keeps registrations), for a fresh
// incremental pass after edits invalidate prior resolutions.
func (s *Store) Reset() {
	iter := s.entries.Iter()
	for ok := iter.First(); ok; ok = iter.Next() {
		e := iter.Value()
		e.state = stateUnresolved
		e.result = nil
		e.err = nil
	}
}
