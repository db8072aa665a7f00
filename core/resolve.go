// SPDX-License-Identifier: MIT
// Package: catobj/core
//
// resolve.go — the dynamic attribute resolver.
//
// An object's own (static) method set deliberately does not include the
// behavior its category implies; Resolve fills the gap at lookup time. The
// search walks the category's behavior table and every table along the
// linearized super chain, first hit wins, and the resolved binding is
// memoized per instance. Cache hits are served unconditionally — stale
// bindings persist until the cache is explicitly cleared by a category
// refinement or a state restore.

package core

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/katalvlaran/catobj/category"
)

// Resolve locates the attribute the object's category contributes under
// name. Resolution semantics, in order:
//
//  1. Cache hit: return the memoized value, unconditionally.
//  2. No category set: fail (an uninitialized category contributes no
//     behavior; Resolve does not trigger lazy initialization).
//  3. Chain search via Category.Attr: a category.Method is bound to the
//     owner by closure, a category.Binder has Bind(owner) invoked, any
//     other value is served verbatim.
//  4. The resolved value is cached before returning.
//
// Failure surfaces as ErrNoAttribute, the missing-attribute condition, so
// capability probes ("does this object support X?") branch on errors.Is.
// Complexity: O(len(chain)) on first resolution, O(1) afterwards.
func (o *CategoryObject) Resolve(name string) (any, error) {
	if v, hit := o.attrCache[name]; hit {
		return v, nil
	}

	if o.cat == nil {
		return nil, fmt.Errorf("core: Resolve: no attribute %q: %w", name, ErrNoAttribute)
	}

	attr, found := o.cat.Attr(name)
	if !found {
		return nil, fmt.Errorf("core: Resolve: no attribute %q: %w", name, ErrNoAttribute)
	}

	resolved, err := o.bind(attr)
	if err != nil {
		return nil, fmt.Errorf("core: Resolve(%q): %w", name, err)
	}

	if o.attrCache == nil {
		o.attrCache = make(map[string]any)
	}
	o.attrCache[name] = resolved

	return resolved, nil
}

// bind applies the binding protocol to a raw table attribute.
func (o *CategoryObject) bind(attr category.Attribute) (any, error) {
	switch a := attr.(type) {
	case category.Method:
		recv := o.receiver()

		return category.Bound(func(args ...any) (any, error) {
			return a(recv, args...)
		}), nil
	case category.Binder:
		return a.Bind(o.receiver())
	default:
		return attr, nil
	}
}

// Knows reports whether Resolve would succeed for name, without caching
// anything: a capability probe.
func (o *CategoryObject) Knows(name string) bool {
	if _, hit := o.attrCache[name]; hit {
		return true
	}
	if o.cat == nil {
		return false
	}
	_, found := o.cat.Attr(name)

	return found
}

// Dir returns the merged attribute directory: the owner's static method set
// (via reflection) united with every behavior-table name along the category
// chain, deduplicated and sorted. Recomputed on every call, never cached —
// this is a tooling/discoverability aid, not a hot path.
func (o *CategoryObject) Dir() []string {
	seen := make(map[string]struct{})

	// Static methods of the receiver type.
	rt := reflect.TypeOf(o.receiver())
	for i := 0; i < rt.NumMethod(); i++ {
		seen[rt.Method(i).Name] = struct{}{}
	}

	// Dynamic attributes contributed by the category chain.
	if o.cat != nil {
		for _, n := range o.cat.Table().Names() {
			seen[n] = struct{}{}
		}
		for _, sup := range o.cat.AllSupers() {
			for _, n := range sup.Table().Names() {
				seen[n] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
