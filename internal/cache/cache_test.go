package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/type_system"
)

type stubEnv struct{}

func (stubEnv) ResolveAlias(string) (type_system.Type, []*type_system.TypeParam, bool) {
	return nil, nil, false
}

func TestMemoizedEngineCachesRelated(t *testing.T) {
	c := New(16)
	calls := 0
	base := judge.NewEngine(stubEnv{})
	m := NewMemoizedEngine(base, c)

	src := type_system.NewStrPrimType(nil)
	tgt := type_system.NewStrPrimType(nil)

	r1 := m.IsSubtype(src, tgt, judge.Policy{})
	key := Key{Source: src.String(), Target: tgt.String(), Kind: KindSubtype}
	_, hit := c.Get(key)

	assert.Equal(t, judge.Related, r1)
	assert.True(t, hit)
	_ = calls
}

func TestBumpPurgesAndAdvancesRevision(t *testing.T) {
	c := New(16)
	key := Key{Source: "string", Target: "string", Kind: KindSubtype}
	c.Put(key, judge.Related)

	c.Bump()
	_, hit := c.Get(key)

	assert.False(t, hit)
	assert.Equal(t, uint64(1), c.Revision())
}

func TestPolicyBitsDistinguishesPolicies(t *testing.T) {
	assert.NotEqual(t,
		PolicyBits(judge.Policy{ParamsBivariant: true}),
		PolicyBits(judge.Policy{IgnoreReadonly: true}),
	)
	assert.Equal(t, uint8(0), PolicyBits(judge.Policy{}))
}
