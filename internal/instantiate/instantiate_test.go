package instantiate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/type_system"
)

func TestSubstituteReplacesTypeParam(t *testing.T) {
	ref := type_system.NewTypeRefType(nil, "T", nil)

	got := Substitute(type_system.Type(ref), map[string]type_system.Type{
		"T": type_system.NewStrPrimType(nil),
	})

	assert.Equal(t, "string", got.String())
}

func TestSubstituteRespectsShadowing(t *testing.T) {
	inner := type_system.NewTypeRefType(nil, "T", nil)
	fn := type_system.NewFuncType(nil,
		[]*type_system.TypeParam{type_system.NewTypeParam("T")},
		[]*type_system.FuncParam{type_system.NewFuncParam(nil, inner)},
		type_system.NewVoidType(nil), nil)

	got := Substitute(type_system.Type(fn), map[string]type_system.Type{
		"T": type_system.NewStrPrimType(nil),
	})

	// The nested function's own `T` type parameter shadows the outer
	// substitution, so its parameter type stays a reference to `T`.
	assert.Equal(t, "T", got.(*type_system.FuncType).Params[0].Type.String())
}

func TestInstantiatePositional(t *testing.T) {
	ref := type_system.NewTypeRefType(nil, "T", nil)
	params := []*type_system.TypeParam{type_system.NewTypeParam("T")}

	got := Instantiate(ref, params, []type_system.Type{type_system.NewNumPrimType(nil)})

	assert.Equal(t, "number", got.String())
}

func TestInstantiateFallsBackToDefault(t *testing.T) {
	ref := type_system.NewTypeRefType(nil, "T", nil)
	params := []*type_system.TypeParam{
		type_system.NewTypeParamWithDefault("T", type_system.NewBoolPrimType(nil)),
	}

	got := Instantiate(ref, params, nil)

	assert.Equal(t, "boolean", got.String())
}

func TestCandidatesCollectAndFinalize(t *testing.T) {
	typeParams := map[string]bool{"T": true}
	c := NewCandidates()
	c.Collect(typeParams, type_system.NewTypeRefType(nil, "T", nil), type_system.NewStrLitType(nil, "a"), PriorityArgument)
	c.Collect(typeParams, type_system.NewTypeRefType(nil, "T", nil), type_system.NewStrLitType(nil, "b"), PriorityArgument)

	in := type_system.NewInterner()
	out := c.Finalize(in, []*type_system.TypeParam{type_system.NewTypeParam("T")})

	assert.Equal(t, `"a" | "b"`, out["T"].String())
}

func TestCandidatesFinalizeFallsBackToConstraint(t *testing.T) {
	in := type_system.NewInterner()
	c := NewCandidates()
	tp := type_system.NewTypeParam("T")
	tp.Constraint = type_system.NewStrPrimType(nil)

	out := c.Finalize(in, []*type_system.TypeParam{tp})

	assert.Equal(t, "string", out["T"].String())
}
