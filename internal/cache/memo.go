package cache

import (
	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/type_system"
)

// MemoizedEngine wraps a judge.Engine so repeated IsSubtype queries over
// the same (source, target, policy) triple hit the Cache instead of
// re-walking the type graph. A Provisional result is deliberately never
// cached: it reflects an in-flight coinductive assumption that is only
// valid for the query that produced it (§4.4 cycle handling), not a
// durable fact about the pair.
type MemoizedEngine struct {
	engine *judge.Engine
	cache  *Cache
}

func NewMemoizedEngine(engine *judge.Engine, cache *Cache) *MemoizedEngine {
	return &MemoizedEngine{engine: engine, cache: cache}
}

func (m *MemoizedEngine) IsSubtype(source, target type_system.Type, policy judge.Policy) judge.Result {
	key := Key{
		Source:     source.String(),
		Target:     target.String(),
		Kind:       KindSubtype,
		PolicyBits: PolicyBits(policy),
	}
	if r, ok := m.cache.Get(key); ok {
		return r
	}
	r := m.engine.IsSubtype(source, target, policy)
	if r != judge.Provisional {
		m.cache.Put(key, r)
	}
	return r
}
