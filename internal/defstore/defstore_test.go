package defstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/type_system"
)

func TestResolveRunsThunkOnce(t *testing.T) {
	s := New()
	calls := 0
	s.Register(1, "Foo", func() (type_system.Type, error) {
		calls++
		return type_system.NewStrPrimType(nil), nil
	})

	got1, err1 := s.Resolve(1)
	got2, err2 := s.Resolve(1)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, "string", got1.String())
	assert.Same(t, got1, got2)
	assert.Equal(t, 1, calls)
}

func TestLookupByName(t *testing.T) {
	s := New()
	s.Register(7, "Bar", func() (type_system.Type, error) {
		return type_system.NewNumPrimType(nil), nil
	})

	got, err := s.Lookup("Bar")

	assert.NoError(t, err)
	assert.Equal(t, "number", got.String())
}

func TestLookupUnknownNameReturnsNil(t *testing.T) {
	s := New()
	got, err := s.Lookup("Missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveDetectsSelfReference(t *testing.T) {
	s := New()
	s.Register(1, "Cyclic", func() (type_system.Type, error) {
		_, err := s.Resolve(1)
		return nil, err
	})

	_, err := s.Resolve(1)

	assert.Error(t, err)
}

func TestResetClearsCache(t *testing.T) {
	s := New()
	calls := 0
	s.Register(1, "Foo", func() (type_system.Type, error) {
		calls++
		return type_system.NewBoolPrimType(nil), nil
	})

	_, _ = s.Resolve(1)
	s.Reset()
	_, _ = s.Resolve(1)

	assert.Equal(t, 2, calls)
}
