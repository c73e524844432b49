package contextual

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/type_system"
)

func TestForArrowParam(t *testing.T) {
	fn := type_system.NewFuncType(nil, nil, []*type_system.FuncParam{
		type_system.NewFuncParam(nil, type_system.NewStrPrimType(nil)),
		type_system.NewFuncParam(nil, type_system.NewNumPrimType(nil)),
	}, type_system.NewVoidType(nil), nil)

	ty := New()
	got, ok := ty.ForArrowParam(fn, 1)

	assert.True(t, ok)
	assert.Equal(t, "number", got.String())
}

func TestForArrowParamOutOfRange(t *testing.T) {
	fn := type_system.NewFuncType(nil, nil, nil, type_system.NewVoidType(nil), nil)
	_, ok := New().ForArrowParam(fn, 0)
	assert.False(t, ok)
}

func TestForArrayElementTuple(t *testing.T) {
	tup := type_system.NewTupleType(nil, type_system.NewStrPrimType(nil), type_system.NewBoolPrimType(nil))

	got, ok := New().ForArrayElement(tup, 1)

	assert.True(t, ok)
	assert.Equal(t, "boolean", got.String())
}

func TestForArrayElementArrayType(t *testing.T) {
	arr := type_system.NewTypeRefType(nil, "Array", nil, type_system.NewNumPrimType(nil))

	got, ok := New().ForArrayElement(arr, 5)

	assert.True(t, ok)
	assert.Equal(t, "number", got.String())
}

func TestForProperty(t *testing.T) {
	obj := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("name"), type_system.NewStrPrimType(nil)),
	})

	got, ok := New().ForProperty(obj, "name")

	assert.True(t, ok)
	assert.Equal(t, "string", got.String())
}

func TestDistributeSplitsUnion(t *testing.T) {
	u := type_system.NewUnionType(nil, type_system.NewStrPrimType(nil), type_system.NewNumPrimType(nil))

	got := New().Distribute(u)

	assert.Len(t, got, 2)
}

func TestDistributeNonUnionIsSingleton(t *testing.T) {
	got := New().Distribute(type_system.NewBoolPrimType(nil))
	assert.Len(t, got, 1)
}
