// Package instantiate binds a generic declaration's type parameters to
// concrete arguments (§4.6). Substitution happens as an explicit tree
// rewrite completed before a relation query ever runs, which is what lets
// internal/judge stay pure: instantiate, then ask Judge about the result,
// never the other way around (see DESIGN.md's "Pure Judge" entry).
package instantiate

import (
	"github.com/tscore-lang/tscore/internal/type_system"
)

// substitutionVisitor rewrites TypeRefType leaves naming a substituted
// parameter, respecting nested generic-function shadowing (a nested `fn
// <T>` rebinds the outer `T`). Grounded on the teacher's
// TypeParamSubstitutionVisitor.
type substitutionVisitor struct {
	subs        map[string]type_system.Type
	shadowStack []map[string]bool
}

func (v *substitutionVisitor) isShadowed(name string) bool {
	for _, frame := range v.shadowStack {
		if frame[name] {
			return true
		}
	}
	return false
}

func (v *substitutionVisitor) EnterType(t type_system.Type) type_system.Type {
	if ft, ok := t.(*type_system.FuncType); ok && len(ft.TypeParams) > 0 {
		frame := make(map[string]bool, len(ft.TypeParams))
		for _, p := range ft.TypeParams {
			frame[p.Name] = true
		}
		v.shadowStack = append(v.shadowStack, frame)
	}
	return nil
}

func (v *substitutionVisitor) ExitType(t type_system.Type) type_system.Type {
	if ft, ok := t.(*type_system.FuncType); ok && len(ft.TypeParams) > 0 && len(v.shadowStack) > 0 {
		v.shadowStack = v.shadowStack[:len(v.shadowStack)-1]
	}

	ref, ok := t.(*type_system.TypeRefType)
	if !ok {
		return nil
	}
	name := type_system.QualIdentToString(ref.Name)
	if v.isShadowed(name) {
		return nil
	}
	if sub, found := v.subs[name]; found {
		return sub
	}
	return nil
}

// Substitute rewrites every unshadowed reference to a name in subs with
// its bound type. A nil/empty subs map is a cheap no-op.
func Substitute[T type_system.Type](t T, subs map[string]type_system.Type) T {
	if len(subs) == 0 {
		return t
	}
	pruned := type_system.Prune(t).(T)
	v := &substitutionVisitor{subs: subs}
	return pruned.Accept(v).(T)
}

// Instantiate binds typeParams to args positionally, falling back to each
// parameter's Default when args runs short, and returns the substituted
// type (§4.6 "Instantiation"). It never validates constraints itself —
// callers needing that call CheckConstraints separately, since an
// instantiation used purely for display (e.g. hover text) should not fail.
func Instantiate(t type_system.Type, typeParams []*type_system.TypeParam, args []type_system.Type) type_system.Type {
	subs := make(map[string]type_system.Type, len(typeParams))
	for i, p := range typeParams {
		switch {
		case i < len(args):
			subs[p.Name] = args[i]
		case p.Default != nil:
			subs[p.Name] = p.Default
		default:
			subs[p.Name] = nil // left as type param reference; see below
		}
	}
	// Drop unresolved params so Substitute leaves their references alone
	// rather than substituting a nil Type.
	for k, v := range subs {
		if v == nil {
			delete(subs, k)
		}
	}
	return Substitute(t, subs)
}
