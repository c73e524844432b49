package evaluate

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

func newEvaluator() *Evaluator {
	in := type_system.NewInterner()
	return New(in, judge.NewEngine(stubEnv{}), 100)
}

func TestReduceCondTrueBranch(t *testing.T) {
	e := newEvaluator()
	cond := type_system.NewCondType(nil,
		type_system.NewStrLitType(nil, "hi"),
		type_system.NewStrPrimType(nil),
		type_system.NewStrLitType(nil, "yes"),
		type_system.NewStrLitType(nil, "no"),
	)

	got := e.Reduce(cond)

	assert.Equal(t, `"yes"`, got.String())
}

func TestReduceCondFalseBranch(t *testing.T) {
	e := newEvaluator()
	cond := type_system.NewCondType(nil,
		type_system.NewNumLitType(nil, 1),
		type_system.NewStrPrimType(nil),
		type_system.NewStrLitType(nil, "yes"),
		type_system.NewStrLitType(nil, "no"),
	)

	got := e.Reduce(cond)

	assert.Equal(t, `"no"`, got.String())
}

func TestReduceKeyOf(t *testing.T) {
	e := newEvaluator()
	obj := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("a"), type_system.NewNumPrimType(nil)),
		type_system.NewPropertyElem(type_system.NewStrKey("b"), type_system.NewStrPrimType(nil)),
	})

	got := e.Reduce(type_system.NewKeyOfType(nil, obj))

	assert.Equal(t, `"a" | "b"`, got.String())
}

func TestReduceKeyOfNonObjectIsNever(t *testing.T) {
	e := newEvaluator()

	got := e.Reduce(type_system.NewKeyOfType(nil, type_system.NewNumPrimType(nil)))

	assert.IsType(t, &type_system.NeverType{}, got)
}

func TestReduceIndex(t *testing.T) {
	e := newEvaluator()
	obj := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("a"), type_system.NewNumPrimType(nil)),
	})

	got := e.Reduce(type_system.NewIndexType(nil, obj, type_system.NewStrLitType(nil, "a")))

	assert.Equal(t, "number", got.String())
}

func TestApplyIntrinsicUppercase(t *testing.T) {
	e := newEvaluator()
	got := e.ApplyIntrinsic("Uppercase", type_system.NewStrLitType(nil, "hi"))
	assert.Equal(t, `"HI"`, got.String())
}

func TestApplyIntrinsicCapitalize(t *testing.T) {
	e := newEvaluator()
	got := e.ApplyIntrinsic("Capitalize", type_system.NewStrLitType(nil, "hi"))
	assert.Equal(t, `"Hi"`, got.String())
}
