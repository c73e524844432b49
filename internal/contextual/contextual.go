// Package contextual propagates an expected type into an expression
// before it is fully inferred (§4.8): arrow-function parameters whose
// annotation is implicit, array/object literal element types, and
// per-branch expected types for a union target. It never performs
// inference itself — it narrows what the caller should infer *against*.
package contextual

import "github.com/tscore-lang/tscore/internal/type_system"

// Typer computes the expected type to push into a sub-expression given
// the expected type of its enclosing expression.
type Typer struct{}

func New() *Typer { return &Typer{} }

// ForArrowParam returns the expected parameter type at position i of an
// arrow/function literal, read off expected's call-signature shape
// (§4.8 "Contextual parameter types"). Returns (nil, false) when expected
// carries no usable signature, e.g. it is `any` or an unrelated shape.
func (t *Typer) ForArrowParam(expected type_system.Type, i int) (type_system.Type, bool) {
	fn, ok := type_system.Prune(expected).(*type_system.FuncType)
	if !ok || i >= len(fn.Params) {
		return nil, false
	}
	return fn.Params[i].Type, true
}

// ForArrayElement returns the expected element type for each position of
// an array literal. A tuple target gives each position its own expected
// type; a type reference with exactly one type argument (Array<T>-shaped)
// gives every position that argument. Any other target, or a position
// past a tuple's end, yields no expected type.
func (t *Typer) ForArrayElement(expected type_system.Type, i int) (type_system.Type, bool) {
	switch e := type_system.Prune(expected).(type) {
	case *type_system.TupleType:
		if i < len(e.Elems) {
			return e.Elems[i], true
		}
		return nil, false
	case *type_system.TypeRefType:
		if len(e.TypeArgs) == 1 {
			return e.TypeArgs[0], true // Array<T>-shaped reference
		}
		return nil, false
	default:
		return nil, false
	}
}

// ForProperty returns the expected type of an object literal's named
// property, read off expected's own PropertyElem of the same name.
func (t *Typer) ForProperty(expected type_system.Type, name string) (type_system.Type, bool) {
	obj, ok := type_system.Prune(expected).(*type_system.ObjectType)
	if !ok {
		return nil, false
	}
	for _, elem := range obj.Elems {
		if p, ok := elem.(*type_system.PropertyElem); ok && p.Name.String() == name {
			return p.Value, true
		}
	}
	return nil, false
}

// ForReturn returns the expected return type read off an enclosing
// function's declared (or contextually expected) signature.
func (t *Typer) ForReturn(expected type_system.Type) (type_system.Type, bool) {
	fn, ok := type_system.Prune(expected).(*type_system.FuncType)
	if !ok || fn.Return == nil {
		return nil, false
	}
	return fn.Return, true
}

// Distribute splits a union expected type into one candidate per member,
// for expressions (like a conditional expression's two branches) that
// should each be checked against the branch of the union that fits them
// (§4.8 "Contextual typing distributes into each union member").
func (t *Typer) Distribute(expected type_system.Type) []type_system.Type {
	if u, ok := type_system.Prune(expected).(*type_system.UnionType); ok {
		return u.Types
	}
	return []type_system.Type{expected}
}
