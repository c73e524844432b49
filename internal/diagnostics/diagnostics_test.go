package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tscore-lang/tscore/internal/ast"
)

type stringer string

func (s stringer) String() string { return string(s) }

func TestBagHasErrors(t *testing.T) {
	var b Bag
	assert.False(t, b.HasErrors())

	b.Add(ExcessProperty(ast.Span{}, "extra"))
	assert.False(t, b.HasErrors(), "a warning alone should not trip HasErrors")

	b.Add(CannotUnify(ast.Span{}, stringer("string"), stringer("number")))
	assert.True(t, b.HasErrors())
}

func TestBagSortedOrdersBySpanThenCode(t *testing.T) {
	var b Bag
	late := ast.Span{Start: ast.Location{Line: 2, Column: 1}}
	early := ast.Span{Start: ast.Location{Line: 1, Column: 1}}

	b.Add(NotCallable(late, stringer("T")))
	b.Add(WrongArgCount(early, 1, 2))

	sorted := b.Sorted()
	assert.Equal(t, CodeWrongArgCount, sorted[0].Code)
	assert.Equal(t, CodeNotCallable, sorted[1].Code)
}

func TestCyclicDependencyJoinsChain(t *testing.T) {
	d := CyclicDependency(ast.Span{}, []string{"A", "B", "A"})
	assert.Equal(t, "cyclic dependency: A -> B -> A", d.Message)
}

func TestTracerNilIsSafe(t *testing.T) {
	var tr *Tracer
	assert.NotPanics(t, func() { tr.Step("step %d", 1) })
	assert.Nil(t, tr.Steps())
}

func TestTracerRecordsSteps(t *testing.T) {
	tr := NewTracer()
	tr.Step("checking %s against %s", "A", "B")
	tr.Step("related")
	assert.Equal(t, []string{"checking A against B", "related"}, tr.Steps())
}
