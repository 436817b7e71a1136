// Package lawful validates that concrete types satisfy behavioral contracts.
//
// # Overview
//
// A contract (a type class) is a named bundle of algebraic laws plus the
// prerequisite contracts it extends. A candidate type is checked
// empirically: the engine draws random sample values from the candidate's
// own generator and verifies each law across many trials. A passing run
// raises confidence but is not proof: finite trials cannot cover all
// counterexamples, and no compile-time guarantee is involved.
//
// # Architecture
//
// The package components:
//
//   - Result      - aggregable check outcome with a Conjoin monoid
//   - Obey / All  - the validator algebra: one empirical law, or all of them
//   - Class       - a contract: prerequisites plus its own laws; Validate
//   - Registry    - records which instances satisfied which classes
//   - Assert      - testing.T helpers for contract checks in test suites
//
// # Quick Start
//
// Declare a contract and its laws:
//
//	var eq = lawful.NewClass(lawful.ClassConfig{
//	    Name: "Eq",
//	    Laws: lawful.All(
//	        lawful.ObeyNamed("reflexivity", func(x Value) bool {
//	            return x.Equals(x)
//	        }),
//	    ),
//	})
//
// Describe the candidate type and register it:
//
//	instance := lawful.Instance{
//	    Name: "Value",
//	    Generate: func(hint int) any {
//	        return NewValue(rand.Intn(hint + 1))
//	    },
//	}
//
//	if err := lawful.Register(eq, instance); err != nil {
//	    log.Fatal(err) // err joins every failed law's diagnostics
//	}
//
// A contract can extend others; validation checks every prerequisite first
// and still runs the contract's own laws, so one report carries every
// violation:
//
//	var monoid = lawful.NewClass(lawful.ClassConfig{
//	    Name:    "Monoid",
//	    Extends: []*lawful.Class{semigroup},
//	    Laws:    lawful.All(leftIdentity, rightIdentity),
//	})
//
// # Checking Policy
//
// Within one law the first counterexample stops further trials; across laws
// and prerequisites everything is always checked, so a user fixing one
// broken law sees all broken laws at once. Failures travel as Result values
// and become errors only at the registration boundary.
package lawful
