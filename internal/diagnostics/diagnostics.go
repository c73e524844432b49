// Package diagnostics is the structured error taxonomy shared by the Judge,
// Evaluator and Instantiator (§4.10, §7). Every relation query that can fail
// produces a Diagnostic here rather than a bare error string, so a caller
// can group, sort and deduplicate by Code without parsing message text.
package diagnostics

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tscore-lang/tscore/internal/ast"
)

// Code is a stable, numeric diagnostic identifier (§7 "stable numeric
// codes"). Values never get reassigned across releases; retiring a
// diagnostic retires its code with it rather than reusing the number.
type Code int

const (
	CodeCannotUnify Code = 1000 + iota
	CodeNotCallable
	CodeWrongArgCount
	CodeUnknownProperty
	CodeMissingProperty
	CodeCannotMutateImmutable
	CodeCyclicDependency
	CodeRecursiveRelation
	CodeOccursCheckFailed
	CodeConstraintViolation
	CodeDepthLimitExceeded
	CodeIterationCapExceeded
	CodeInvalidExtractor
	CodeMissingCustomMatcher
	CodeExtractorArityMismatch
	CodeNotEnoughElementsToUnpack
	CodeUnresolvedIdentifier
	CodeExcessProperty
	CodeSoundModeAnyEscape
	CodeSoundModeBivariance
)

// Severity mirrors the Error/Warning split §9 ties to sound-mode and strict
// knobs (options.Options.SoundModeDiagnosticsAreErrors).
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is one reported finding. Span is the zero value when the
// relation that produced it had no single originating node (e.g. a
// synthesized residual type) — callers fall back to the enclosing
// declaration's span.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Span     ast.Span
}

func (d Diagnostic) Error() string { return d.Message }

func unify(span ast.Span, from, to fmt.Stringer) Diagnostic {
	return Diagnostic{
		Code:     CodeCannotUnify,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s is not assignable to %s", from, to),
		Span:     span,
	}
}

// CannotUnify reports a failed Judge/Lawyer relation query between two
// types, mirroring the teacher's CannotUnifyTypesError.
func CannotUnify(span ast.Span, from, to fmt.Stringer) Diagnostic { return unify(span, from, to) }

func NotCallable(span ast.Span, t fmt.Stringer) Diagnostic {
	return Diagnostic{Code: CodeNotCallable, Severity: SeverityError, Span: span,
		Message: fmt.Sprintf("%s is not callable", t)}
}

func WrongArgCount(span ast.Span, want, got int) Diagnostic {
	return Diagnostic{Code: CodeWrongArgCount, Severity: SeverityError, Span: span,
		Message: "expected " + strconv.Itoa(want) + " arguments, got " + strconv.Itoa(got)}
}

func UnknownProperty(span ast.Span, obj fmt.Stringer, prop string) Diagnostic {
	return Diagnostic{Code: CodeUnknownProperty, Severity: SeverityError, Span: span,
		Message: fmt.Sprintf("property %q does not exist on %s", prop, obj)}
}

func MissingProperty(span ast.Span, obj fmt.Stringer, prop string) Diagnostic {
	return Diagnostic{Code: CodeMissingProperty, Severity: SeverityError, Span: span,
		Message: fmt.Sprintf("%s is missing property %q", obj, prop)}
}

func CyclicDependency(span ast.Span, chain []string) Diagnostic {
	return Diagnostic{Code: CodeCyclicDependency, Severity: SeverityError, Span: span,
		Message: "cyclic dependency: " + joinArrow(chain)}
}

func RecursiveRelation(span ast.Span, from, to fmt.Stringer) Diagnostic {
	return Diagnostic{Code: CodeRecursiveRelation, Severity: SeverityError, Span: span,
		Message: fmt.Sprintf("recursive relation query between %s and %s did not reach a fixed point", from, to)}
}

func ConstraintViolation(span ast.Span, param string, constraint, arg fmt.Stringer) Diagnostic {
	return Diagnostic{Code: CodeConstraintViolation, Severity: SeverityError, Span: span,
		Message: fmt.Sprintf("type %q does not satisfy constraint %s required by %s", arg, constraint, param)}
}

func DepthLimitExceeded(span ast.Span, limit int) Diagnostic {
	return Diagnostic{Code: CodeDepthLimitExceeded, Severity: SeverityError, Span: span,
		Message: "evaluation depth limit (" + strconv.Itoa(limit) + ") exceeded"}
}

func IterationCapExceeded(span ast.Span, cap int) Diagnostic {
	return Diagnostic{Code: CodeIterationCapExceeded, Severity: SeverityError, Span: span,
		Message: "flow fixed-point iteration cap (" + strconv.Itoa(cap) + ") exceeded"}
}

func ExcessProperty(span ast.Span, prop string) Diagnostic {
	return Diagnostic{Code: CodeExcessProperty, Severity: SeverityWarning, Span: span,
		Message: fmt.Sprintf("object literal has excess property %q", prop)}
}

func SoundModeAnyEscape(span ast.Span, sev Severity, t fmt.Stringer) Diagnostic {
	return Diagnostic{Code: CodeSoundModeAnyEscape, Severity: sev, Span: span,
		Message: fmt.Sprintf("%s escapes soundness via any", t)}
}

func joinArrow(chain []string) string {
	s := ""
	for i, c := range chain {
		if i > 0 {
			s += " -> "
		}
		s += c
	}
	return s
}

// Bag collects diagnostics for one compilation unit, keeping them in
// report order but exposing a stable sort for snapshot-friendly output
// (§5 determinism guarantee).
type Bag struct {
	items []Diagnostic
}

func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (b *Bag) Items() []Diagnostic { return b.items }

// Sorted returns the bag's contents ordered by span then code, so two runs
// over the same input always print diagnostics in the same order.
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Span, out[j].Span
		if si.Start.Line != sj.Start.Line {
			return si.Start.Line < sj.Start.Line
		}
		if si.Start.Column != sj.Start.Column {
			return si.Start.Column < sj.Start.Column
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Tracer records an explain-mode trace of the relation steps a query took
// (§4.10 "explain mode"). A nil *Tracer is always safe to call — Step is a
// no-op when tracing wasn't requested, so hot-path callers don't need a
// feature-flag check at every call site.
type Tracer struct {
	steps []string
}

func NewTracer() *Tracer { return &Tracer{} }

func (t *Tracer) Step(format string, args ...any) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, fmt.Sprintf(format, args...))
}

func (t *Tracer) Steps() []string {
	if t == nil {
		return nil
	}
	return t.steps
}
