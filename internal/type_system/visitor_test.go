package type_system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// IdentityVisitor returns nil from both hooks, leaving every type unchanged.
type IdentityVisitor struct{}

func (v *IdentityVisitor) EnterType(t Type) Type { return nil }
func (v *IdentityVisitor) ExitType(t Type) Type  { return nil }

// TrackingVisitor records the order types are entered and exited, without
// transforming anything.
type TrackingVisitor struct {
	entered []Type
	exited  []Type
}

func (v *TrackingVisitor) EnterType(t Type) Type {
	v.entered = append(v.entered, t)
	return nil
}

func (v *TrackingVisitor) ExitType(t Type) Type {
	v.exited = append(v.exited, t)
	return nil
}

// replacementVisitor swaps out types found in `at`, via either hook.
type replacementVisitor struct {
	at      map[Type]Type
	onEnter bool
}

func (v *replacementVisitor) EnterType(t Type) Type {
	if !v.onEnter {
		return nil
	}
	return v.at[t]
}

func (v *replacementVisitor) ExitType(t Type) Type {
	if v.onEnter {
		return nil
	}
	return v.at[t]
}

func TestAccept_IdentityVisitorLeavesTypeUnchanged(t *testing.T) {
	prov := (Provenance)(nil)
	union := NewUnionType(prov, NewNumPrimType(prov), NewStrPrimType(prov)).(*UnionType)

	result := union.Accept(&IdentityVisitor{})

	assert.Same(t, union, result)
}

func TestAccept_ExitTypeReplacesLeaf(t *testing.T) {
	numType := NewNumPrimType(nil)
	strType := NewStrPrimType(nil)

	result := numType.Accept(&replacementVisitor{at: map[Type]Type{numType: strType}})

	assert.Same(t, strType, result)
}

func TestAccept_EnterTypeReplacesBeforeDescending(t *testing.T) {
	numType := NewNumPrimType(nil)
	strType := NewStrPrimType(nil)

	result := numType.Accept(&replacementVisitor{onEnter: true, at: map[Type]Type{numType: strType}})

	assert.Same(t, strType, result)
}

func TestAccept_RebuildsUnionWhenMemberChanges(t *testing.T) {
	numType := NewNumPrimType(nil)
	strType := NewStrPrimType(nil)
	boolType := NewBoolPrimType(nil)
	union := NewUnionType(nil, numType, strType).(*UnionType)

	result := union.Accept(&replacementVisitor{at: map[Type]Type{numType: boolType}})

	newUnion, ok := result.(*UnionType)
	if !assert.True(t, ok, "expected *UnionType, got %T", result) {
		return
	}
	assert.NotSame(t, union, newUnion)
	assert.Same(t, boolType, newUnion.Types[0])
	assert.Same(t, strType, newUnion.Types[1])
}

func TestAccept_RebuildsTupleWhenElemChanges(t *testing.T) {
	numType := NewNumPrimType(nil)
	strType := NewStrPrimType(nil)
	boolType := NewBoolPrimType(nil)
	tuple := NewTupleType(nil, numType, strType)

	result := tuple.Accept(&replacementVisitor{at: map[Type]Type{strType: boolType}})

	newTuple, ok := result.(*TupleType)
	if !assert.True(t, ok, "expected *TupleType, got %T", result) {
		return
	}
	assert.Same(t, numType, newTuple.Elems[0])
	assert.Same(t, boolType, newTuple.Elems[1])
}

func TestAccept_RebuildsFuncParamAndReturn(t *testing.T) {
	paramType := NewNumPrimType(nil)
	returnType := NewStrPrimType(nil)
	replacedReturn := NewBoolPrimType(nil)
	fn := &FuncType{
		Params: []*FuncParam{NewFuncParam(NewIdentPat("x"), paramType)},
		Return: returnType,
	}

	result := fn.Accept(&replacementVisitor{at: map[Type]Type{returnType: replacedReturn}})

	newFn, ok := result.(*FuncType)
	if !assert.True(t, ok, "expected *FuncType, got %T", result) {
		return
	}
	assert.Same(t, paramType, newFn.Params[0].Type)
	assert.Same(t, replacedReturn, newFn.Return)
}

func TestAccept_VisitsEveryMemberOfNestedStructure(t *testing.T) {
	numType := NewNumPrimType(nil)
	strType := NewStrPrimType(nil)
	boolType := NewBoolPrimType(nil)
	union := NewUnionType(nil, numType, strType, boolType)

	tracker := &TrackingVisitor{}
	union.Accept(tracker)

	assert.Len(t, tracker.entered, 4) // the union itself plus its 3 members
	assert.Len(t, tracker.exited, 4)
}

func TestAccept_PrunesTypeVarBeforeVisiting(t *testing.T) {
	strType := NewStrPrimType(nil)
	tv := NewTypeVarType(nil, 1)
	tv.Instance = strType

	tracker := &TrackingVisitor{}
	result := tv.Accept(tracker)

	assert.Same(t, strType, result)
	assert.Equal(t, []Type{strType}, tracker.entered)
}
