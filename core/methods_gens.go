// Package core: generator access for CategoryObject.
//
// Generators are supplied by the embedding structure through WithGens; this
// file provides the dictionary views over them (name → generator), the
// recursive union with the base object's dictionary, and the namespace
// injection convenience.
package core

import (
	"fmt"
	"reflect"
)

// RecursiveGens is implemented by base objects that expose their own
// recursive generator dictionary (any structure embedding a CategoryObject
// does). Bases without it simply contribute no entries.
type RecursiveGens interface {
	GensDictRecursive() (map[string]any, error)
}

// Gens returns the ordered defining elements of the owning structure.
// Fails with ErrNoGenerators when no source was supplied.
func (o *CategoryObject) Gens() ([]any, error) {
	if o.gens == nil {
		return nil, fmt.Errorf("core: Gens: %w", ErrNoGenerators)
	}

	return o.gens(), nil
}

// Ngens returns the number of generators.
func (o *CategoryObject) Ngens() (int, error) {
	gs, err := o.Gens()
	if err != nil {
		return 0, err
	}

	return len(gs), nil
}

// Gen returns the i-th generator.
func (o *CategoryObject) Gen(i int) (any, error) {
	gs, err := o.Gens()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(gs) {
		return nil, fmt.Errorf("core: Gen(%d) of %d: %w", i, len(gs), ErrIndexOutOfRange)
	}

	return gs[i], nil
}

// ObjGens returns the owner together with its generators.
func (o *CategoryObject) ObjGens() (any, []any, error) {
	gs, err := o.Gens()
	if err != nil {
		return nil, nil, err
	}

	return o.receiver(), gs, nil
}

// ObjGen returns the owner together with its i-th generator.
func (o *CategoryObject) ObjGen(i int) (any, any, error) {
	g, err := o.Gen(i)
	if err != nil {
		return nil, nil, err
	}

	return o.receiver(), g, nil
}

// GensDict returns the mapping from each defining name to its generator,
// zipping DefiningNames with Gens pairwise. Keys are unique because names
// are certified unique at assignment.
// Complexity: O(n).
func (o *CategoryObject) GensDict() (map[string]any, error) {
	ds, err := o.DefiningNames()
	if err != nil {
		return nil, fmt.Errorf("core: GensDict: %w", err)
	}
	gs, err := o.Gens()
	if err != nil {
		return nil, fmt.Errorf("core: GensDict: %w", err)
	}

	n := len(ds)
	if len(gs) < n {
		n = len(gs)
	}
	dict := make(map[string]any, n)
	for i := 0; i < n; i++ {
		dict[ds[i]] = gs[i]
	}

	return dict, nil
}

// GensDictRecursive returns the union of this object's GensDict with the
// recursive dictionary of its base. Own entries take precedence on key
// collision. An object that is its own base terminates the recursion with
// an empty mapping.
func (o *CategoryObject) GensDictRecursive() (map[string]any, error) {
	// Recursion terminator: self-based objects contribute nothing.
	if sameObject(o.base, o.receiver()) || sameObject(o.base, o) {
		return map[string]any{}, nil
	}

	dict := make(map[string]any)
	if rg, ok := o.base.(RecursiveGens); ok {
		fromBase, err := rg.GensDictRecursive()
		if err != nil {
			return nil, fmt.Errorf("core: GensDictRecursive: base: %w", err)
		}
		for k, v := range fromBase {
			dict[k] = v
		}
	}

	own, err := o.GensDict()
	if err != nil {
		return nil, err
	}
	// Own entries win over base entries.
	for k, v := range own {
		dict[k] = v
	}

	return dict, nil
}

// InjectVariables binds every defining name to its generator inside the
// caller-provided namespace. Existing entries under the same keys are
// overwritten. The namespace is an explicit mutable map; nothing ambient is
// touched.
func (o *CategoryObject) InjectVariables(ns map[string]any) error {
	if ns == nil {
		return fmt.Errorf("core: InjectVariables: %w", ErrNilNamespace)
	}

	dict, err := o.GensDict()
	if err != nil {
		return fmt.Errorf("core: InjectVariables: %w", err)
	}
	for k, v := range dict {
		ns[k] = v
	}

	return nil
}

// receiver returns the value category methods bind to: the declared owner,
// or the CategoryObject itself when none was set.
func (o *CategoryObject) receiver() any {
	if o.owner != nil {
		return o.owner
	}

	return o
}

// sameObject reports whether a and b are the same heap object. Only pointer
// identity counts; value types are never "the same object".
func sameObject(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != reflect.Pointer || rb.Kind() != reflect.Pointer {
		return false
	}

	return ra.Pointer() == rb.Pointer()
}
