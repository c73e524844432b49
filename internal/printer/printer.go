// Package printer renders a type_system.Type as source-like text (§6
// GLOSSARY "Printer"). Every concrete Type already implements String(), but
// that rendering never descends through a TypeRefType into its TypeAlias
// body (deliberately, to stay cheap and termination-safe for ordinary
// diagnostics). This package adds the one thing String() doesn't attempt:
// an *expanded* rendering that inlines alias bodies up to a bounded depth,
// tracking which alias names are already open on the current path so a
// recursive alias (`type List<T> = { head: T, tail: List<T> }`) prints its
// own name instead of recursing forever.
//
// Grounded on the teacher's printer.Options/Printer pairing (indent width,
// max line length) for the surface shape; the teacher's own printer.go
// formats source syntax (statements, JSX, classes), which is out of scope
// here — only the config/writer scaffolding survives from it.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tscore-lang/tscore/internal/type_system"
)

// Options controls rendering depth. Indent is not read by the renderer.
type Options struct {
	Indent   string // e.g. "  " or "\t"
	MaxDepth int    // bound on alias-expansion recursion (§5 termination)
}

func DefaultOptions() Options {
	return Options{Indent: "  ", MaxDepth: 8}
}

// Printer writes expanded type text to an io.Writer.
type Printer struct {
	w    io.Writer
	opts Options
}

func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// Print writes t's expanded rendering followed by a newline.
func (p *Printer) Print(t type_system.Type) error {
	s := Sprint(t, p.opts)
	_, err := io.WriteString(p.w, s+"\n")
	return err
}

// Sprint renders t to a string, expanding TypeRefType alias bodies up to
// opts.MaxDepth and breaking any cycle back to an alias name already open
// on the current path by printing just that name (§6 "avoiding cycles via
// occurrence tracking").
func Sprint(t type_system.Type, opts Options) string {
	r := &renderer{opts: opts, open: map[string]bool{}}
	return r.render(t, 0)
}

// String is a convenience entry point using DefaultOptions.
func String(t type_system.Type) string {
	return Sprint(t, DefaultOptions())
}

type renderer struct {
	opts Options
	open map[string]bool
}

func (r *renderer) render(t type_system.Type, depth int) string {
	ref, ok := t.(*type_system.TypeRefType)
	if !ok || ref.TypeAlias == nil {
		return t.String()
	}

	name := type_system.QualIdentToString(ref.Name)
	if r.open[name] || depth >= r.opts.MaxDepth {
		return t.String() // already expanding this alias, or too deep: just name it
	}

	r.open[name] = true
	expanded := r.render(ref.TypeAlias.Type, depth+1)
	delete(r.open, name)

	if len(ref.TypeArgs) == 0 {
		return fmt.Sprintf("%s /* = %s */", name, expanded)
	}
	args := make([]string, len(ref.TypeArgs))
	for i, a := range ref.TypeArgs {
		args[i] = r.render(a, depth+1)
	}
	return fmt.Sprintf("%s<%s> /* = %s */", name, strings.Join(args, ", "), expanded)
}
