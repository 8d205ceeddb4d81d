// Package chef implements the runtime data model for the Chef esoteric
// programming language: ingredients, the stack-like ingredient containers
// used for mixing bowls and baking dishes, and the instruction set that the
// parser produces and the evaluator consumes.
//
// # Basic usage
//
//	p := parser.New()
//	res, err := p.ParseReader(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ev := runtime.New(res.Recipe, os.Stdin, os.Stdout, nil)
//	if err := ev.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Flavor
//
// Every ingredient carries a tri-state dry/liquid flavor, not a pair of
// independent booleans: an ingredient declared with an ambiguous measure
// ("2 cups sugar") is neither known to be dry nor known to be liquid until
// Liquefy is applied to it.
package chef
