package lawyer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/options"
	"github.com/tscore-lang/tscore/internal/type_system"
)

type stubEnv struct{}

func (stubEnv) ResolveAlias(string) (type_system.Type, []*type_system.TypeParam, bool) {
	return nil, nil, false
}

func newLawyer(opts *options.Options) *Lawyer {
	return New(judge.NewEngine(stubEnv{}), opts)
}

func TestAssignableRelatedTypes(t *testing.T) {
	l := newLawyer(options.Default())
	ok, diags := l.Assignable(type_system.NewStrLitType(nil, "hi"), type_system.NewStrPrimType(nil), false, false)
	assert.True(t, ok)
	assert.Empty(t, diags)
}

func TestAssignableUnrelatedTypes(t *testing.T) {
	l := newLawyer(options.Default())
	ok, diags := l.Assignable(type_system.NewNumPrimType(nil), type_system.NewStrPrimType(nil), false, false)
	assert.False(t, ok)
	assert.NotEmpty(t, diags)
}

func TestAssignableFreshLiteralReportsExcessProperty(t *testing.T) {
	l := newLawyer(options.Default())
	target := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumPrimType(nil)),
	})
	literal := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumLitType(nil, 1)),
		type_system.NewPropertyElem(type_system.NewStrKey("extra"), type_system.NewBoolLitType(nil, true)),
	})

	ok, diags := l.Assignable(literal, target, false, true)

	assert.True(t, ok)
	assert.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "extra")
}

func TestAssignableNonFreshSkipsExcessCheck(t *testing.T) {
	l := newLawyer(options.Default())
	target := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumPrimType(nil)),
	})
	variable := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumPrimType(nil)),
		type_system.NewPropertyElem(type_system.NewStrKey("extra"), type_system.NewBoolPrimType(nil)),
	})

	ok, diags := l.Assignable(variable, target, false, false)

	assert.True(t, ok)
	assert.Empty(t, diags)
}

func TestAssignableAnyEscapeInSoundMode(t *testing.T) {
	opts := options.Default()
	opts.SoundMode = true
	l := newLawyer(opts)

	ok, diags := l.Assignable(type_system.NewAnyType(nil), type_system.NewStrPrimType(nil), false, false)

	assert.True(t, ok)
	assert.Len(t, diags, 1)
}

func TestIdenticalRequiresMutualAssignability(t *testing.T) {
	l := newLawyer(options.Default())
	assert.True(t, l.Identical(type_system.NewStrPrimType(nil), type_system.NewStrPrimType(nil)))
	assert.False(t, l.Identical(type_system.NewStrLitType(nil, "hi"), type_system.NewStrPrimType(nil)))
}
