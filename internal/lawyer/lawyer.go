// Package lawyer builds the Assignability and Identity relations on top of
// the pure Judge (§4.5). This is where options.Options-driven policy
// decisions live — bivariant method parameters, freshness-based excess
// property checking, sound-mode severity — so Judge itself never needs to
// know about compiler options.
package lawyer

import (
	"github.com/tscore-lang/tscore/internal/ast"
	"github.com/tscore-lang/tscore/internal/diagnostics"
	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/options"
	"github.com/tscore-lang/tscore/internal/provenance"
	"github.com/tscore-lang/tscore/internal/type_system"
)

// Lawyer answers assignability queries, the relation application code
// actually calls (§4.5): "can this value flow here", as distinct from
// Judge's raw structural subtype relation.
type Lawyer struct {
	engine *judge.Engine
	opts   *options.Options
}

func New(engine *judge.Engine, opts *options.Options) *Lawyer {
	return &Lawyer{engine: engine, opts: opts}
}

// methodPolicy picks the parameter variance for a comparison. Method-shaped
// positions (object properties holding a function, as opposed to a
// standalone function value) always compare parameters bivariantly,
// mirroring the unsound-but-pragmatic leniency TypeScript itself applies;
// other positions are contravariant under StrictFunctionTypes and
// bivariant without it (§4.5). SoundMode emits no diagnostic for method
// bivariance.
func (l *Lawyer) methodPolicy(isMethodPosition bool) judge.Policy {
	return judge.Policy{ParamsBivariant: isMethodPosition || !l.opts.StrictFunctionTypes}
}

// Assignable reports whether value can be assigned to target, and any
// diagnostics produced (an excess-property warning, or a sound-mode
// finding whenever value or target is `any`). fresh marks
// value as a just-written object literal rather than a widened variable
// reference (§4.5 "Freshness") — the binder, not this package, is in the
// position to know that, so it is passed in rather than inferred here.
func (l *Lawyer) Assignable(value, target type_system.Type, isMethodPosition, fresh bool) (bool, []diagnostics.Diagnostic) {
	var diags []diagnostics.Diagnostic
	policy := l.methodPolicy(isMethodPosition)

	if isAny(value) || isAny(target) {
		if l.opts.SoundMode {
			sev := diagnostics.SeverityWarning
			if l.opts.SoundModeDiagnosticsAreErrors {
				sev = diagnostics.SeverityError
			}
			diags = append(diags, diagnostics.SoundModeAnyEscape(spanOf(value), sev, value))
		}
		return true, diags
	}

	result := l.engine.IsSubtype(value, target, policy)
	if result == judge.NotRelated {
		diags = append(diags, diagnostics.CannotUnify(spanOf(value), value, target))
		return false, diags
	}

	if fresh {
		diags = append(diags, l.checkExcessProperties(value, target)...)
	}

	return true, diags
}

// Identical reports type identity: mutual assignability under a strict,
// non-bivariant policy (§4.5 "Identity").
func (l *Lawyer) Identical(a, b type_system.Type) bool {
	strict := judge.Policy{}
	return l.engine.IsSubtype(a, b, strict) == judge.Related &&
		l.engine.IsSubtype(b, a, strict) == judge.Related
}

// checkExcessProperties reports every property on a fresh object literal
// that target's shape does not declare (§4.5 "Freshness"). Judge's own
// objectRelated deliberately ignores unknown source properties (width
// subtyping), so this check only fires for literals Lawyer has been told
// are fresh.
func (l *Lawyer) checkExcessProperties(value, target type_system.Type) []diagnostics.Diagnostic {
	obj, ok := type_system.Prune(value).(*type_system.ObjectType)
	if !ok {
		return nil
	}
	tobj, ok := type_system.Prune(target).(*type_system.ObjectType)
	if !ok {
		return nil
	}
	allowed := map[string]bool{}
	for _, e := range tobj.Elems {
		if p, ok := e.(*type_system.PropertyElem); ok {
			allowed[p.Name.String()] = true
		}
	}
	var diags []diagnostics.Diagnostic
	for _, e := range obj.Elems {
		if p, ok := e.(*type_system.PropertyElem); ok && !allowed[p.Name.String()] {
			diags = append(diags, diagnostics.ExcessProperty(spanOf(value), p.Name.String()))
		}
	}
	return diags
}

func isAny(t type_system.Type) bool { _, ok := t.(*type_system.AnyType); return ok }

// spanOf resolves a type's originating span for diagnostics, falling back
// to the zero Span when its provenance isn't node-backed (e.g. a type
// the Evaluator derived rather than one read straight off syntax).
func spanOf(t type_system.Type) ast.Span {
	if np, ok := t.Provenance().(*provenance.NodeProvenance); ok {
		return np.SpanOf()
	}
	return ast.Span{}
}
