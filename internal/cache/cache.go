// Package cache memoizes relation queries (§4.9). A query is expensive
// chiefly because of the structural recursion Judge performs over large
// object/union graphs; memoizing by (source, target, kind, policy) turns
// repeated queries against the same pair — common when checking a large
// union against many candidate members — into a single evaluation.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tscore-lang/tscore/internal/judge"
)

// Kind distinguishes the relation family a cached entry answers, since the
// same (source, target) pair can be related under subtyping but not under
// strict identity.
type Kind uint8

const (
	KindSubtype Kind = iota
	KindIdentity
	KindAssignable
)

// Key identifies one cached query. policyBits packs the judge.Policy
// fields the query ran under, so a bivariant-parameter query never
// collides with a strict one over the same pair.
type Key struct {
	Source, Target string
	Kind           Kind
	PolicyBits     uint8
}

func PolicyBits(p judge.Policy) uint8 {
	var b uint8
	if p.ParamsBivariant {
		b |= 1
	}
	if p.IgnoreReadonly {
		b |= 2
	}
	return b
}

// Cache is an LRU-bounded relation-query cache. Revision bumps (a file
// re-checked in incremental mode) invalidate it wholesale rather than
// tracking fine-grained dependency edges, matching §5's "whole-sale purge
// on revision bump" scoping for the relation cache specifically (the
// Definition Store does not track per-declaration dependencies either;
// its Reset clears every entry).
type Cache struct {
	lru      *lru.Cache[Key, judge.Result]
	revision uint64
}

func New(size int) *Cache {
	l, err := lru.New[Key, judge.Result](size)
	if err != nil {
		// Only returns an error for size <= 0; callers pass a static
		// positive constant, so this can't happen in practice.
		panic(err)
	}
	return &Cache{lru: l}
}

func (c *Cache) Get(k Key) (judge.Result, bool) { return c.lru.Get(k) }

func (c *Cache) Put(k Key, r judge.Result) { c.lru.Add(k, r) }

// Bump invalidates every cached entry and advances the revision counter.
// Called once per file re-check in incremental mode.
func (c *Cache) Bump() {
	c.lru.Purge()
	c.revision++
}

func (c *Cache) Revision() uint64 { return c.revision }
