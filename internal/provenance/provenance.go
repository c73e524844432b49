// Package provenance records why a type value exists: which syntax node
// produced it, or which other type it was derived from (§4.3, §6), so
// diagnostics can point at a source span without the type graph itself
// holding AST pointers. Types that the Evaluator, Judge and Instantiator
// rebuild keep the provenance of the type they came from; none of them
// constructs a DerivedProvenance or SynthesizedProvenance.
package provenance

import "github.com/tscore-lang/tscore/internal/ast"

// Provenance is implemented by every provenance variant. It is deliberately
// closed (unexported marker method) so the type core's switch statements
// stay exhaustive.
type Provenance interface{ isProvenance() }

// NodeProvenance ties a type to the arena node that produced it.
type NodeProvenance struct {
	Arena *ast.Arena
	Node  ast.NodeIndex
}

func (*NodeProvenance) isProvenance() {}

// SpanOf resolves the node's span, or the zero Span if the node is missing.
func (p *NodeProvenance) SpanOf() ast.Span {
	if p == nil || p.Arena == nil {
		return ast.Span{}
	}
	if n, ok := p.Arena.At(p.Node); ok {
		return n.Span
	}
	return ast.Span{}
}

// DerivedProvenance marks a type constructed from another type rather than
// directly from syntax, e.g. the result of evaluating a conditional type or
// instantiating a generic. Reason is a short, stable tag ("cond-eval",
// "instantiate", "narrow") rather than a human-facing message; diagnostics
// formatting lives in the printer and diagnostics packages, not here.
type DerivedProvenance struct {
	Reason string
}

func (*DerivedProvenance) isProvenance() {}

// SynthesizedProvenance marks a type with no single originating node or
// parent type.
type SynthesizedProvenance struct {
	Reason string
}

func (*SynthesizedProvenance) isProvenance() {}
