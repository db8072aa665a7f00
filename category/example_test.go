package category_test

import (
	"fmt"

	"github.com/katalvlaran/catobj/category"
)

// ExampleJoin builds a tiny lattice fragment and shows how Join reduces to
// the most specific common refinement.
func ExampleJoin() {
	category.Reset()
	rings := category.MustNew("Rings")
	fields := category.MustNew("Fields", category.WithSupers(rings))
	metric := category.MustNew("MetricSpaces")

	// Fields already implies Rings, so the pair collapses.
	fmt.Println(category.Join(rings, fields).Name())
	// Incomparable inputs form a composite.
	fmt.Println(category.Join(fields, metric).Name())
	// Output:
	// Fields
	// Join of Fields and MetricSpaces
}

// ExampleCategory_AllSupers shows the linearized super chain of a category:
// most specific first, ending at the top category Objects.
func ExampleCategory_AllSupers() {
	category.Reset()
	sets := category.MustNew("Sets")
	monoids := category.MustNew("Monoids", category.WithSupers(sets))
	groups := category.MustNew("Groups", category.WithSupers(monoids))

	for _, c := range groups.AllSupers() {
		fmt.Println(c.Name())
	}
	// Output:
	// Monoids
	// Sets
	// Objects
}
