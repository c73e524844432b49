package type_system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// NewIntersectionType itself does no normalization beyond the 0/1-arg
// special cases; real flatten/dedupe/collapse semantics live on
// Interner.IntersectionOf (see TestInternerIntersectionOf below).
func TestNewIntersectionType(t *testing.T) {
	t.Run("empty intersection returns never", func(t *testing.T) {
		result := NewIntersectionType(nil)
		assert.Equal(t, "never", result.String())
	})

	t.Run("single type intersection returns the type unchanged", func(t *testing.T) {
		strType := NewStrPrimType(nil)
		result := NewIntersectionType(nil, strType)
		assert.Equal(t, "string", result.String())
	})

	t.Run("does not flatten nested intersections", func(t *testing.T) {
		strType := NewStrPrimType(nil)
		numType := NewNumPrimType(nil)
		inner := NewIntersectionType(nil, strType, numType)
		result := NewIntersectionType(nil, inner, NewBoolPrimType(nil))
		assert.Equal(t, "string & number & boolean", result.String())
	})
}

func TestInternerIntersectionOf(t *testing.T) {
	t.Run("flattens nested intersections", func(t *testing.T) {
		in := NewInterner()
		obj1 := NewObjectType(nil, []ObjTypeElem{NewPropertyElem(NewStrKey("a"), NewStrPrimType(nil))})
		obj2 := NewObjectType(nil, []ObjTypeElem{NewPropertyElem(NewStrKey("b"), NewNumPrimType(nil))})
		obj3 := NewObjectType(nil, []ObjTypeElem{NewPropertyElem(NewStrKey("c"), NewBoolPrimType(nil))})

		inner := NewIntersectionType(nil, obj1, obj2)
		result := in.IntersectionOf(nil, inner, obj3)

		assert.Equal(t, "{a: string} & {b: number} & {c: boolean}", result.String())
	})

	t.Run("removes duplicates", func(t *testing.T) {
		in := NewInterner()
		strType := NewStrPrimType(nil)
		result := in.IntersectionOf(nil, strType, strType, strType)
		assert.Equal(t, "string", result.String())
	})

	t.Run("A & never returns never", func(t *testing.T) {
		in := NewInterner()
		result := in.IntersectionOf(nil, NewStrPrimType(nil), NewNeverType(nil))
		assert.Equal(t, "never", result.String())
	})

	t.Run("conflicting primitives collapse to never", func(t *testing.T) {
		in := NewInterner()
		result := in.IntersectionOf(nil, NewStrPrimType(nil), NewNumPrimType(nil))
		assert.Equal(t, "never", result.String())
	})

	t.Run("members sort into canonical order regardless of input order", func(t *testing.T) {
		in := NewInterner()
		obj1 := NewObjectType(nil, []ObjTypeElem{NewPropertyElem(NewStrKey("a"), NewStrPrimType(nil))})
		obj2 := NewObjectType(nil, []ObjTypeElem{NewPropertyElem(NewStrKey("b"), NewStrPrimType(nil))})

		forward := in.IntersectionOf(nil, obj1, obj2)
		backward := in.IntersectionOf(nil, obj2, obj1)

		assert.Equal(t, forward.String(), backward.String())
		assert.Equal(t, "{a: string} & {b: string}", forward.String())
	})
}
