package instantiate

import (
	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/type_system"
)

// Priority ranks competing candidate types inferred for the same type
// parameter, mirroring how a literal argument position should win over a
// contextual/return-position inference when both exist (§4.6 "Priority").
type Priority int

const (
	PriorityContextual Priority = iota
	PriorityReturn
	PriorityArgument
)

type candidate struct {
	typ      type_system.Type
	priority Priority
}

// Candidates accumulates inferred candidates per type parameter across
// multiple call-argument positions before a final selection is made.
type Candidates struct {
	byParam map[string][]candidate
}

func NewCandidates() *Candidates { return &Candidates{byParam: map[string][]candidate{}} }

// Collect structurally walks param (the declared parameter type, possibly
// containing InferType-free TypeRefTypes naming one of typeParams) against
// arg (the actual argument type), recording a candidate for every type
// parameter position found. Grounded on the same structural-matching idea
// as evaluate.matchInfer, specialized to plain type-parameter names
// instead of `infer` slots.
func (c *Candidates) Collect(typeParams map[string]bool, param, arg type_system.Type, prio Priority) {
	param = type_system.Prune(param)
	arg = type_system.Prune(arg)

	if ref, ok := param.(*type_system.TypeRefType); ok {
		name := type_system.QualIdentToString(ref.Name)
		if typeParams[name] {
			c.byParam[name] = append(c.byParam[name], candidate{typ: arg, priority: prio})
			return
		}
	}

	switch p := param.(type) {
	case *type_system.TupleType:
		if a, ok := arg.(*type_system.TupleType); ok {
			for i := 0; i < len(p.Elems) && i < len(a.Elems); i++ {
				c.Collect(typeParams, p.Elems[i], a.Elems[i], prio)
			}
		}
	case *type_system.FuncType:
		if a, ok := arg.(*type_system.FuncType); ok {
			for i := 0; i < len(p.Params) && i < len(a.Params); i++ {
				// parameter types are contravariant positions; still a
				// useful source of candidates for the common "pass a
				// callback shaped like T" case.
				c.Collect(typeParams, p.Params[i].Type, a.Params[i].Type, prio)
			}
			if p.Return != nil && a.Return != nil {
				c.Collect(typeParams, p.Return, a.Return, PriorityReturn)
			}
		}
	case *type_system.ObjectType:
		if a, ok := arg.(*type_system.ObjectType); ok {
			aProps := map[string]type_system.Type{}
			for _, e := range a.Elems {
				if pe, ok := e.(*type_system.PropertyElem); ok {
					aProps[pe.Name.String()] = pe.Value
				}
			}
			for _, e := range p.Elems {
				if pe, ok := e.(*type_system.PropertyElem); ok {
					if av, ok := aProps[pe.Name.String()]; ok {
						c.Collect(typeParams, pe.Value, av, prio)
					}
				}
			}
		}
	case *type_system.TypeRefType:
		if a, ok := arg.(*type_system.TypeRefType); ok && len(p.TypeArgs) == len(a.TypeArgs) {
			for i := range p.TypeArgs {
				c.Collect(typeParams, p.TypeArgs[i], a.TypeArgs[i], prio)
			}
		}
	}
}

// Finalize picks one winning type per type parameter: the highest-priority
// candidate (argument beats return beats contextual), widened to a union
// when several same-priority candidates disagree (§4.6 "multiple
// candidates unify to their union"). A parameter with no candidates falls
// back to its Default, then its Constraint, then `unknown`.
func (c *Candidates) Finalize(interner *type_system.Interner, typeParams []*type_system.TypeParam) map[string]type_system.Type {
	out := make(map[string]type_system.Type, len(typeParams))
	for _, tp := range typeParams {
		cands := c.byParam[tp.Name]
		if len(cands) == 0 {
			switch {
			case tp.Default != nil:
				out[tp.Name] = tp.Default
			case tp.Constraint != nil:
				out[tp.Name] = tp.Constraint
			default:
				out[tp.Name] = interner.Resolve(type_system.IdentUnknown)
			}
			continue
		}
		best := cands[0].priority
		for _, cd := range cands {
			if cd.priority > best {
				best = cd.priority
			}
		}
		var winners []type_system.Type
		for _, cd := range cands {
			if cd.priority == best {
				winners = append(winners, cd.typ)
			}
		}
		out[tp.Name] = interner.UnionOf(nil, winners...)
	}
	return out
}

// DeferredConstraint records a constraint check instantiation could not
// decide immediately because the relation query came back Provisional
// (§4.4 cycle handling) — typically because the constraint itself
// references a declaration still being defined. Supplements the
// distilled specification per the reference implementation's
// query_boundaries module, which keeps exactly this kind of pending-check
// queue rather than forcing premature resolution.
type DeferredConstraint struct {
	Param      string
	Arg        type_system.Type
	Constraint type_system.Type
}

// ConstraintViolation is the structured result of a failed constraint
// re-validation (§4.6 "Constraint re-validation").
type ConstraintViolation struct {
	Param      string
	Arg        type_system.Type
	Constraint type_system.Type
}

// CheckConstraints validates every type parameter's inferred (or
// explicitly supplied) argument against its constraint, using engine for
// the relation query. A Provisional result is queued as a
// DeferredConstraint rather than treated as a pass or a failure.
func CheckConstraints(
	engine *judge.Engine,
	typeParams []*type_system.TypeParam,
	resolved map[string]type_system.Type,
) (violations []ConstraintViolation, deferred []DeferredConstraint) {
	for _, tp := range typeParams {
		if tp.Constraint == nil {
			continue
		}
		arg, ok := resolved[tp.Name]
		if !ok {
			continue
		}
		switch engine.IsSubtype(arg, tp.Constraint, judge.Policy{}) {
		case judge.NotRelated:
			violations = append(violations, ConstraintViolation{Param: tp.Name, Arg: arg, Constraint: tp.Constraint})
		case judge.Provisional:
			deferred = append(deferred, DeferredConstraint{Param: tp.Name, Arg: arg, Constraint: tp.Constraint})
		}
	}
	return violations, deferred
}
