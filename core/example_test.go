package core_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/catobj/category"
	"github.com/katalvlaran/catobj/core"
	"github.com/katalvlaran/catobj/names"
)

// polyRing is a minimal concrete structure: it embeds the kernel and
// supplies its generators through WithGens.
type polyRing struct {
	*core.CategoryObject
	vars []string
}

func newPolyRing(cat category.Category, spec string) (*polyRing, error) {
	r := &polyRing{}
	kernel, err := core.New(
		core.WithCategory(cat),
		core.WithOwner(r),
		core.WithNames(names.UnknownCount, spec),
		core.WithGens(r.generators),
	)
	if err != nil {
		return nil, err
	}
	r.CategoryObject = kernel
	r.vars, _ = kernel.VariableNames()

	return r, nil
}

// generators models ring variables as plain strings for the example.
func (r *polyRing) generators() []any {
	out := make([]any, len(r.vars))
	for i, v := range r.vars {
		out[i] = v
	}

	return out
}

// Example demonstrates the whole kernel lifecycle: declare a category with
// a behavior table, build a structure in it, resolve category-contributed
// behavior dynamically, and inject the generators into a namespace.
func Example() {
	category.Reset()
	rings := category.MustNew("Rings", category.WithTable(
		category.NewTable().Set("is_commutative", category.Method(
			func(receiver any, args ...any) (any, error) {
				return true, nil
			}))))

	r, err := newPolyRing(rings, "x,y")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The static type of polyRing knows nothing about is_commutative; the
	// category contributes it at lookup time.
	attr, _ := r.Resolve("is_commutative")
	commutative, _ := attr.(category.Bound)()
	fmt.Println("commutative:", commutative)

	// Bulk-bind the generators into an explicit namespace.
	ns := make(map[string]any)
	_ = r.InjectVariables(ns)
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("namespace:", keys)

	// Output:
	// commutative: true
	// namespace: [x y]
}

// ExampleCategoryObject_RefineCategory shows monotone narrowing: each
// refinement joins the current category with the new one and clears the
// attribute cache.
func ExampleCategoryObject_RefineCategory() {
	category.Reset()
	rings := category.MustNew("Rings")
	fields := category.MustNew("Fields", category.WithSupers(rings))

	obj, _ := core.New(core.WithCategory(rings))
	fmt.Println(obj.Category().Name())

	obj.RefineCategory(fields)
	fmt.Println(obj.Category().Name())

	// Refining back to the broader category is a no-op.
	obj.RefineCategory(rings)
	fmt.Println(obj.Category().Name())

	// Output:
	// Rings
	// Fields
	// Fields
}
