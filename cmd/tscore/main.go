// Command tscore is a small demonstration front-end for the type core
// (cmd/tscore, per SPEC_FULL.md §0). It owns no scanner or parser — those
// are external collaborators this module deliberately doesn't implement —
// so instead of compiling source files it builds a handful of types
// directly through internal/type_system's constructors, then drives them
// through the same pipeline a real front-end would: intern, evaluate any
// meta-types, check assignability with internal/lawyer, print diagnostics
// through their Error() text, and render results with internal/printer.
//
// Grounded on cmd/escalier/main.go's subcommand-dispatch shape (flag.FlagSet
// per subcommand), with the build pipeline itself replaced end to end since
// the teacher's `build` subcommand reads .esc files through the parser and
// emits JS — both out of scope here.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tscore-lang/tscore/internal/evaluate"
	"github.com/tscore-lang/tscore/internal/judge"
	"github.com/tscore-lang/tscore/internal/lawyer"
	"github.com/tscore-lang/tscore/internal/options"
	"github.com/tscore-lang/tscore/internal/printer"
	"github.com/tscore-lang/tscore/internal/type_system"
)

func main() {
	demoCmd := flag.NewFlagSet("demo", flag.ExitOnError)
	strict := demoCmd.Bool("strict", false, "use the strict options profile")

	if len(os.Args) < 2 {
		fmt.Println("expected 'demo' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "demo":
		if err := demoCmd.Parse(os.Args[2:]); err != nil {
			fmt.Println("failed to parse demo command")
			os.Exit(1)
		}
		runDemo(os.Stdout, *strict)
	default:
		fmt.Println("expected 'demo' subcommand")
		os.Exit(1)
	}
}

// emptyEnv resolves no aliases; the demo below never constructs a named
// alias that needs one, so a Judge query never consults it.
type emptyEnv struct{}

func (emptyEnv) ResolveAlias(string) (type_system.Type, []*type_system.TypeParam, bool) {
	return nil, nil, false
}

func runDemo(out io.Writer, strict bool) {
	opts := options.Default()
	if strict {
		opts = options.Strict()
	}

	in := type_system.NewInterner()
	engine := judge.NewEngine(emptyEnv{})
	law := lawyer.New(engine, opts)
	ev := evaluate.New(in, engine, opts.EvaluationDepthLimit)

	// A small structural shape: { id: number, name: string }.
	person := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumPrimType(nil)),
		type_system.NewPropertyElem(type_system.NewStrKey("name"), type_system.NewStrPrimType(nil)),
	})
	// A fresh object literal with an extra field, checked against it.
	literal := type_system.NewObjectType(nil, []type_system.ObjTypeElem{
		type_system.NewPropertyElem(type_system.NewStrKey("id"), type_system.NewNumLitType(nil, 1)),
		type_system.NewPropertyElem(type_system.NewStrKey("name"), type_system.NewStrLitType(nil, "ada")),
		type_system.NewPropertyElem(type_system.NewStrKey("extra"), type_system.NewBoolLitType(nil, true)),
	})

	ok, diags := law.Assignable(literal, person, false, true)
	fmt.Fprintf(out, "literal assignable to Person: %v\n", ok)
	for _, d := range diags {
		fmt.Fprintf(out, "  %s\n", d.Error())
	}

	// A conditional type: T extends string ? "stringy" : "other", applied
	// to a literal string — exercises the Evaluator's reduceCond.
	cond := type_system.NewCondType(nil,
		type_system.NewStrLitType(nil, "hi"),
		type_system.NewStrPrimType(nil),
		type_system.NewStrLitType(nil, "stringy"),
		type_system.NewStrLitType(nil, "other"),
	)
	reduced := ev.Reduce(cond)
	fmt.Fprintf(out, "conditional reduces to: %s\n", printer.String(reduced))

	// A union, normalized through the Interner (duplicates and `never`
	// members collapse per §3).
	u := in.UnionOf(nil,
		type_system.NewStrPrimType(nil),
		type_system.NewNeverType(nil),
		type_system.NewStrPrimType(nil),
		type_system.NewNumPrimType(nil),
	)
	fmt.Fprintf(out, "normalized union: %s\n", printer.String(u))
}
