/*
Package dsl provides a fluent builder for programmatically constructing
grove behavior trees.

It lets hosts define trees as readable chains instead of deeply nested
constructor calls, with IDE autocompletion and type checking along the
way. Chains read inside-out: the starting Leaf/Check/Wrap is the
innermost node and every chained decorator wraps what came before.

Example usage:

	package main

	import (
		"github.com/aretw0/grove/pkg/behavior"
		"github.com/aretw0/grove/pkg/dsl"
	)

	type world struct{ hp map[string]int }

	func buildPatrol() behavior.Behavior[string, *world] {
		alive := func(s string, w *world) bool { return w.hp[s] > 0 }

		return dsl.Sequence(
			dsl.Check[string, *world](alive),
			dsl.Leaf[string, *world](walk).Retry(3),
			dsl.Leaf[string, *world](rest).RunIf(alive),
		).Build()
		// ... pass the result to Engine.Create
	}
*/
package dsl
