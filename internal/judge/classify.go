package judge

import "github.com/tscore-lang/tscore/internal/type_system"

// Shape describes the structural classification an object-shaped type
// falls into for control-flow/desugaring purposes (§3, originally the
// query_boundaries classifiers of the reference implementation's `tsz`
// crate — supplemented here since the distilled spec only names the
// relation queries, not these auxiliary shape tests).
type Shape int

const (
	ShapeNone Shape = iota
	ShapeIterable
	ShapePromise
	ShapeCallable
)

// ClassifyIterable reports whether t structurally exposes a
// `[Symbol.iterator](): Iterator<T>`-shaped method, returning the element
// type.
func ClassifyIterable(t type_system.Type) (elem type_system.Type, ok bool) {
	obj, isObj := type_system.Prune(t).(*type_system.ObjectType)
	if !isObj {
		return nil, false
	}
	for _, e := range obj.Elems {
		m, isMethod := e.(*type_system.MethodElem)
		if !isMethod || m.Name.String() != "Symbol.iterator" {
			continue
		}
		ret := type_system.Prune(m.Fn.Return)
		if retObj, ok := ret.(*type_system.ObjectType); ok {
			if el, ok := iteratorElemType(retObj); ok {
				return el, true
			}
		}
	}
	return nil, false
}

func iteratorElemType(iter *type_system.ObjectType) (type_system.Type, bool) {
	for _, e := range iter.Elems {
		if m, ok := e.(*type_system.MethodElem); ok && m.Name.String() == "next" {
			ret := type_system.Prune(m.Fn.Return)
			if retObj, ok := ret.(*type_system.ObjectType); ok {
				for _, fe := range retObj.Elems {
					if p, ok := fe.(*type_system.PropertyElem); ok && p.Name.String() == "value" {
						return p.Value, true
					}
				}
			}
		}
	}
	return nil, false
}

// ClassifyPromise reports whether t structurally exposes a `.then` method
// and, if so, the type it resolves to: the type consequence of `await`
// unwrapping a Promise, whose syntax this module does not model.
func ClassifyPromise(t type_system.Type) (resolved type_system.Type, ok bool) {
	obj, isObj := type_system.Prune(t).(*type_system.ObjectType)
	if !isObj {
		return nil, false
	}
	for _, e := range obj.Elems {
		m, isMethod := e.(*type_system.MethodElem)
		if !isMethod || m.Name.String() != "then" {
			continue
		}
		if len(m.Fn.Params) == 0 {
			continue
		}
		onFulfilled, ok := type_system.Prune(m.Fn.Params[0].Type).(*type_system.FuncType)
		if !ok || len(onFulfilled.Params) == 0 {
			continue
		}
		return onFulfilled.Params[0].Type, true
	}
	return nil, false
}

// ClassifyCallable reports the call signatures a type structurally exposes:
// either a literal FuncType or an object type carrying CallableElem
// signatures (overloads). Used wherever a relation needs to know "is this
// invokable" without fully resolving an application (§4.4's
// diagnostics.NotCallable, grounded on the teacher's CalleeIsNotCallable
// error).
func ClassifyCallable(t type_system.Type) (sigs []*type_system.FuncType, ok bool) {
	switch v := type_system.Prune(t).(type) {
	case *type_system.FuncType:
		return []*type_system.FuncType{v}, true
	case *type_system.ObjectType:
		for _, e := range v.Elems {
			if c, ok := e.(*type_system.CallableElem); ok {
				sigs = append(sigs, c.Fn)
			}
		}
		return sigs, len(sigs) > 0
	default:
		return nil, false
	}
}

// ClassifyLiteralKey reports the ObjTypeKey a literal type would index an
// object with, for indexed-access and mapped-type evaluation (§4.3).
func ClassifyLiteralKey(t type_system.Type) (type_system.ObjTypeKey, bool) {
	lit, ok := type_system.Prune(t).(*type_system.LitType)
	if !ok {
		return type_system.ObjTypeKey{}, false
	}
	switch l := lit.Lit.(type) {
	case *type_system.StrLit:
		return type_system.NewStrKey(l.Value), true
	case *type_system.NumLit:
		return type_system.NewNumKey(l.Value), true
	default:
		return type_system.ObjTypeKey{}, false
	}
}
