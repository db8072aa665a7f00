// SPDX-License-Identifier: MIT
// Package: catobj/core
//
// refine.go — the category refinement state machine.
//
// States: uninitialized → initialized(category) → refined(category') → …
// Narrowing is monotone: every transition replaces the category with the
// join of the old value and the inputs, and the join is a subcategory of
// both (a precondition on the lattice, not re-verified here). Each
// refinement clears the attribute cache so bindings from a broader category
// never leak into a narrower one.

package core

import "github.com/katalvlaran/catobj/category"

// Category returns this object's category. Reading an uninitialized
// category initializes it to the top category Objects, so the accessor is
// total and never returns nil.
func (o *CategoryObject) Category() category.Category {
	if o.cat == nil {
		o.cat = category.Objects()
	}

	return o.cat
}

// Categories returns this object's category followed by its full super
// chain, most specific first.
func (o *CategoryObject) Categories() []category.Category {
	own := o.Category()
	chain := own.AllSupers()

	out := make([]category.Category, 0, len(chain)+1)
	out = append(out, own)
	out = append(out, chain...)

	return out
}

// RefineCategory narrows this object's category to the join of the current
// value and the given categories. With no category set yet it behaves as
// initialization. The attribute cache is invalidated: bindings resolved
// against the broader category must not survive the narrowing.
func (o *CategoryObject) RefineCategory(cats ...category.Category) {
	if o.cat == nil {
		o.cat = category.Join(cats...)
	} else {
		joined := make([]category.Category, 0, len(cats)+1)
		joined = append(joined, o.cat)
		joined = append(joined, cats...)
		o.cat = category.Join(joined...)
	}

	o.attrCache = nil
}
