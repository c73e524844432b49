// Package judge implements the pure structural relation queries of §4.4:
// is-subtype, identity and (via the classifiers) the structural shape
// tests instantiation and contextual typing need. It is deliberately
// side-effect free: unlike the teacher's checker.Unify, a Judge query never
// mutates a TypeVarType in place. Generic instantiation binds type
// parameters through an explicit substitution map (internal/instantiate)
// *before* the result reaches a relation query here — see DESIGN.md's
// "Pure Judge" entry for why this split was necessary.
package judge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/tscore-lang/tscore/internal/set"
	"github.com/tscore-lang/tscore/internal/type_system"
)

// Result is the three-valued outcome of a relation query (§4.4). Provisional
// is returned while a query is still inside its own active-recursion frame
// (§3's coinductive assumption: a type is related to itself until proven
// otherwise).
type Result int

const (
	Related Result = iota
	NotRelated
	Provisional
)

func (r Result) Bool() bool { return r == Related || r == Provisional }

// Policy controls the variance and strictness knobs a relation query
// applies. Lawyer builds these; Judge itself never reads options.Options
// directly so it stays a pure function of (source, target, policy, env).
type Policy struct {
	// ParamsBivariant relaxes function-parameter contravariance to
	// bivariance for method-shaped comparisons, matching the teacher's
	// unifyFuncTypes leniency for method parameters (§4.5 "method
	// bivariance" sound-mode finding).
	ParamsBivariant bool
	// IgnoreReadonly treats a readonly and a non-readonly property of the
	// same name and type as related (structural, not nominal, readonly).
	IgnoreReadonly bool
}

// frame is the active-recursion-set key for one in-flight relation query,
// used to detect the coinductive "already assumed related" case for
// recursive type definitions (§3, §4.4 "Cycle handling").
type frame struct{ from, to string }

// Env resolves a TypeRefType's alias body during a query. The Judge never
// walks a Definition Store directly; the caller supplies the resolved
// bodies it already has on hand (typically via internal/defstore).
type Env interface {
	ResolveAlias(name string) (type_system.Type, []*type_system.TypeParam, bool)
}

// Engine runs relation queries, carrying the active-frame set across a
// single top-level query's recursive calls (§4.4 cycle handling mirrors
// the teacher's occursInType / OccursInVisitor, but tracked by structural
// key instead of by mutating a visited-pointer set).
type Engine struct {
	env    Env
	active set.Set[frame]
}

func NewEngine(env Env) *Engine {
	return &Engine{env: env, active: set.NewSet[frame]()}
}

// IsSubtype reports whether source is related to target under policy
// (§4.4). It is the core entry point every other relation in this module
// composes from.
func (e *Engine) IsSubtype(source, target type_system.Type, policy Policy) Result {
	source = type_system.Prune(source)
	target = type_system.Prune(target)

	switch {
	case isAny(target), isAny(source), isUnknown(target):
		return Related
	case isNever(source):
		return Related
	case isNever(target):
		return NotRelated
	case isUnknown(source):
		return NotRelated
	}

	key := frame{from: source.String(), to: target.String()}
	if e.active.Contains(key) {
		return Provisional
	}
	e.active.Add(key)
	defer e.active.Remove(key)

	if u, ok := source.(*type_system.UnionType); ok {
		return e.allRelated(u.Types, target, policy)
	}
	if u, ok := target.(*type_system.UnionType); ok {
		return e.anyRelated(source, u.Types, policy)
	}
	if it, ok := target.(*type_system.IntersectionType); ok {
		return e.allRelated2(source, it.Types, policy)
	}
	if it, ok := source.(*type_system.IntersectionType); ok {
		return e.anyRelated2(it.Types, target, policy)
	}

	if tv, ok := target.(*type_system.TypeVarType); ok {
		if tv.Constraint != nil {
			return e.IsSubtype(source, tv.Constraint, policy)
		}
		return Related
	}
	if sv, ok := source.(*type_system.TypeVarType); ok {
		if sv.Constraint != nil {
			return e.IsSubtype(sv.Constraint, target, policy)
		}
		return NotRelated
	}

	if lit, ok := source.(*type_system.LitType); ok {
		if prim, ok := target.(*type_system.PrimType); ok {
			return boolResult(litMatchesPrim(lit, prim))
		}
		if tpl, ok := target.(*type_system.TemplateLitType); ok {
			return boolResult(litMatchesTemplate(lit, tpl))
		}
		if rx, ok := target.(*type_system.RegexType); ok {
			return boolResult(litMatchesRegex(lit, rx))
		}
	}

	if sp, ok := source.(*type_system.PrimType); ok {
		if tp, ok := target.(*type_system.PrimType); ok {
			return boolResult(sp.Prim == tp.Prim)
		}
	}

	if sr, ok := source.(*type_system.TypeRefType); ok {
		if tr, ok := target.(*type_system.TypeRefType); ok &&
			type_system.QualIdentToString(sr.Name) == type_system.QualIdentToString(tr.Name) {
			return e.relatedTypeArgs(sr.TypeArgs, tr.TypeArgs, policy)
		}
		if body, _, ok := e.resolve(sr); ok {
			return e.IsSubtype(body, target, policy)
		}
	}
	if tr, ok := target.(*type_system.TypeRefType); ok {
		if body, _, ok := e.resolve(tr); ok {
			return e.IsSubtype(source, body, policy)
		}
	}

	if st, ok := source.(*type_system.TupleType); ok {
		if tt, ok := target.(*type_system.TupleType); ok {
			return e.tupleRelated(st, tt, policy)
		}
	}

	if sf, ok := source.(*type_system.FuncType); ok {
		if tf, ok := target.(*type_system.FuncType); ok {
			return e.funcRelated(sf, tf, policy)
		}
	}

	if so, ok := source.(*type_system.ObjectType); ok {
		if to, ok := target.(*type_system.ObjectType); ok {
			return e.objectRelated(so, to, policy)
		}
	}

	if mt, ok := target.(*type_system.MutabilityType); ok {
		return e.IsSubtype(source, mt.Type, policy)
	}
	if ms, ok := source.(*type_system.MutabilityType); ok {
		return e.IsSubtype(ms.Type, target, policy)
	}

	return boolResult(source.String() == target.String())
}

func (e *Engine) resolve(ref *type_system.TypeRefType) (type_system.Type, []*type_system.TypeParam, bool) {
	if ref.TypeAlias != nil {
		return ref.TypeAlias.Type, ref.TypeAlias.TypeParams, true
	}
	if e.env != nil {
		return e.env.ResolveAlias(type_system.QualIdentToString(ref.Name))
	}
	return nil, nil, false
}

func (e *Engine) anyRelated(source type_system.Type, candidates []type_system.Type, p Policy) Result {
	best := NotRelated
	for _, c := range candidates {
		switch e.IsSubtype(source, c, p) {
		case Related:
			return Related
		case Provisional:
			best = Provisional
		}
	}
	return best
}

func (e *Engine) allRelated(members []type_system.Type, target type_system.Type, p Policy) Result {
	best := Related
	for _, m := range members {
		switch e.IsSubtype(m, target, p) {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
	}
	return best
}

func (e *Engine) allRelated2(source type_system.Type, members []type_system.Type, p Policy) Result {
	best := Related
	for _, m := range members {
		switch e.IsSubtype(source, m, p) {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
	}
	return best
}

func (e *Engine) anyRelated2(members []type_system.Type, target type_system.Type, p Policy) Result {
	best := NotRelated
	for _, m := range members {
		switch e.IsSubtype(m, target, p) {
		case Related:
			return Related
		case Provisional:
			best = Provisional
		}
	}
	return best
}

func (e *Engine) relatedTypeArgs(source, target []type_system.Type, p Policy) Result {
	if len(source) != len(target) {
		return NotRelated
	}
	best := Related
	for i := range source {
		switch e.IsSubtype(source[i], target[i], p) {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
	}
	return best
}

// tupleRelated mirrors the teacher's Tuple<->Tuple unification: a rest
// element in the target absorbs any number of trailing source elements;
// without one, arities must match exactly.
func (e *Engine) tupleRelated(s, t *type_system.TupleType, p Policy) Result {
	ti := 0
	best := Related
	for si := 0; si < len(s.Elems); si++ {
		if ti >= len(t.Elems) {
			return NotRelated
		}
		if rest, ok := t.Elems[ti].(*type_system.RestSpreadType); ok {
			switch e.IsSubtype(s.Elems[si], rest.Type, p) {
			case NotRelated:
				return NotRelated
			case Provisional:
				best = Provisional
			}
			continue // rest stays in place, absorbing remaining source elems
		}
		switch e.IsSubtype(s.Elems[si], t.Elems[ti], p) {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
		ti++
	}
	for ; ti < len(t.Elems); ti++ {
		if _, ok := t.Elems[ti].(*type_system.RestSpreadType); !ok {
			return NotRelated
		}
	}
	return best
}

// funcRelated applies standard contravariant-parameter, covariant-return
// variance, with ParamsBivariant relaxing parameters to either direction
// (§4.5 sound-mode "method bivariance" finding; grounded on the teacher's
// unifyFuncTypes).
func (e *Engine) funcRelated(s, t *type_system.FuncType, p Policy) Result {
	if len(t.Params) > len(s.Params) {
		return NotRelated
	}
	best := Related
	for i, tp := range t.Params {
		sp := s.Params[i]
		var r Result
		if p.ParamsBivariant {
			fwd := e.IsSubtype(tp.Type, sp.Type, p)
			bwd := e.IsSubtype(sp.Type, tp.Type, p)
			if fwd == Related || bwd == Related {
				r = Related
			} else if fwd == Provisional || bwd == Provisional {
				r = Provisional
			} else {
				r = NotRelated
			}
		} else {
			r = e.IsSubtype(tp.Type, sp.Type, p) // contravariant
		}
		switch r {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
	}
	if s.Return != nil && t.Return != nil {
		switch e.IsSubtype(s.Return, t.Return, p) {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
	}
	return best
}

// objectRelated is width-and-depth structural matching: every named
// element target requires must be present in source with a related type (§4.4 "Objects: every property
// target requires ..."). Grounded on the teacher's ObjectType<->ObjectType
// branch of Unify, simplified to a pure read (no residual-type synthesis,
// since nothing here needs to bind a rest pattern).
func (e *Engine) objectRelated(s, t *type_system.ObjectType, p Policy) Result {
	sIndex := indexProperties(s)
	best := Related
	for _, telem := range t.Elems {
		tp, ok := telem.(*type_system.PropertyElem)
		if !ok {
			continue // methods/getters/setters compared best-effort only
		}
		sp, found := sIndex[tp.Name.String()]
		if !found {
			if tp.Optional {
				continue
			}
			return NotRelated
		}
		if !p.IgnoreReadonly && sp.Readonly && !tp.Readonly {
			// a readonly source property may still back a mutable target
			// requirement only if Lawyer's freshness tracking allows it;
			// Judge treats this conservatively as unrelated.
			return NotRelated
		}
		switch e.IsSubtype(sp.Value, tp.Value, p) {
		case NotRelated:
			return NotRelated
		case Provisional:
			best = Provisional
		}
	}
	return best
}

func indexProperties(o *type_system.ObjectType) map[string]*type_system.PropertyElem {
	m := make(map[string]*type_system.PropertyElem, len(o.Elems))
	for _, elem := range o.Elems {
		if p, ok := elem.(*type_system.PropertyElem); ok {
			m[p.Name.String()] = p
		}
	}
	return m
}

func boolResult(b bool) Result {
	if b {
		return Related
	}
	return NotRelated
}

func isAny(t type_system.Type) bool     { _, ok := t.(*type_system.AnyType); return ok }
func isUnknown(t type_system.Type) bool { _, ok := t.(*type_system.UnknownType); return ok }
func isNever(t type_system.Type) bool   { _, ok := t.(*type_system.NeverType); return ok }

// litMatchesRegex checks a string literal against a RegexType (§4.4
// "literal-vs-pattern rule"). The pattern itself was already converted
// from JS syntax and compiled into a stdlib *regexp.Regexp by
// type_system.NewRegexTypeWithPatternString, so matching it needs nothing
// beyond what the type already carries.
func litMatchesRegex(l *type_system.LitType, rx *type_system.RegexType) bool {
	s, ok := l.Lit.(*type_system.StrLit)
	if !ok {
		return false
	}
	return rx.Regex.MatchString(s.Value)
}

// litMatchesTemplate subtype-checks a string literal against a deferred
// template-literal type (§4.3 "Template literal") by pattern match: each
// quasi is taken as literal text and each interpolated slot as a capture
// group, anchored start to end. Built on regexp2 rather than stdlib
// regexp/RE2 because a slot whose position corresponds to an `infer` in
// the template's surrounding conditional type needs a *named* capture
// group so the match can be attributed back to that slot — RE2 supports
// named groups but not the backreferences later template patterns (e.g.
// repeated `${infer X}` segments) would need, and regexp2 is already the
// pack's answer for .NET-style pattern matching (§2 DOMAIN STACK).
func litMatchesTemplate(l *type_system.LitType, t *type_system.TemplateLitType) bool {
	s, ok := l.Lit.(*type_system.StrLit)
	if !ok {
		return false
	}
	re, err := regexp2.Compile(templatePattern(t), regexp2.None)
	if err != nil {
		return false
	}
	matched, err := re.MatchString(s.Value)
	return err == nil && matched
}

// templatePattern renders a TemplateLitType as a regexp2 pattern: quasi
// text is escaped literally, and each interpolated slot becomes a named,
// non-greedy capture group (`slotN`) so a caller resolving `infer`
// bindings from the match can look the substring back up by slot index.
func templatePattern(t *type_system.TemplateLitType) string {
	var b strings.Builder
	b.WriteString("^")
	for i, q := range t.Quasis {
		b.WriteString(regexp.QuoteMeta(q.Value))
		if i < len(t.Types) {
			fmt.Fprintf(&b, "(?<slot%d>.*?)", i)
		}
	}
	b.WriteString("$")
	return b.String()
}

func litMatchesPrim(l *type_system.LitType, p *type_system.PrimType) bool {
	switch l.Lit.(type) {
	case *type_system.StrLit:
		return p.Prim == type_system.StrPrim
	case *type_system.NumLit:
		return p.Prim == type_system.NumPrim
	case *type_system.BoolLit:
		return p.Prim == type_system.BoolPrim
	case *type_system.BigIntLit:
		return p.Prim == type_system.BigIntPrim
	default:
		return false
	}
}
