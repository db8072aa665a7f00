// Package core: naming contract of CategoryObject.
//
// Names are write-once: the first successful assignment fixes the value for
// the lifetime of the object, and any later assignment must match it exactly.
// LaTeX forms and defining names derive from the assigned names lazily and
// are cached alongside them.
package core

import (
	"fmt"

	"github.com/katalvlaran/catobj/names"
)

// AssignNames normalizes spec (any shape accepted by names.Normalize) and
// assigns the result as this object's variable names.
// A nil spec is a no-op. Assigning the value already set is a silent
// success; assigning a different value fails with ErrNamesMismatch.
// Complexity: O(total name length).
func (o *CategoryObject) AssignNames(count int, spec any) error {
	if spec == nil {
		return nil
	}

	normalized, err := names.Normalize(count, spec)
	if err != nil {
		return fmt.Errorf("core: AssignNames: %w", err)
	}

	// First assignment fixes the value.
	if o.names == nil {
		o.names = normalized

		return nil
	}

	// Reassignment must match exactly.
	if !equalNames(o.names, normalized) {
		return fmt.Errorf("core: AssignNames: have %q, got %q: %w",
			o.names, normalized, ErrNamesMismatch)
	}

	return nil
}

// VariableNames returns the assigned variable names, or ErrNamesNotSet if
// AssignNames never succeeded. The returned slice is a copy.
func (o *CategoryObject) VariableNames() ([]string, error) {
	if o.names == nil {
		return nil, fmt.Errorf("core: VariableNames: %w", ErrNamesNotSet)
	}

	return append([]string(nil), o.names...), nil
}

// VariableName returns the first variable name; the conventional accessor
// for single-generator structures.
func (o *CategoryObject) VariableName() (string, error) {
	vs, err := o.VariableNames()
	if err != nil {
		return "", err
	}
	if len(vs) == 0 {
		return "", fmt.Errorf("core: VariableName: %w", ErrIndexOutOfRange)
	}

	return vs[0], nil
}

// LatexVariableNames returns the LaTeX forms of the variable names, with
// underscore subscripts braced recursively. Derived lazily and cached; the
// cache stays consistent because names are write-once.
func (o *CategoryObject) LatexVariableNames() ([]string, error) {
	if o.names == nil {
		return nil, fmt.Errorf("core: LatexVariableNames: %w", ErrNamesNotSet)
	}
	if o.latexNames == nil {
		o.latexNames = names.LatexAll(o.names)
	}

	return append([]string(nil), o.latexNames...), nil
}

// LatexName returns the LaTeX form of the first variable name.
func (o *CategoryObject) LatexName() (string, error) {
	ls, err := o.LatexVariableNames()
	if err != nil {
		return "", err
	}
	if len(ls) == 0 {
		return "", fmt.Errorf("core: LatexName: %w", ErrIndexOutOfRange)
	}

	return ls[0], nil
}

// DefiningNames returns the names of the defining elements: the explicit
// override when one was supplied, otherwise the variable names. The default
// is memoized after first computation.
func (o *CategoryObject) DefiningNames() ([]string, error) {
	if o.defNames == nil {
		vs, err := o.VariableNames()
		if err != nil {
			return nil, fmt.Errorf("core: DefiningNames: %w", err)
		}
		o.defNames = vs
	}

	return append([]string(nil), o.defNames...), nil
}

// FirstNDefiningNames returns the first n defining names.
// Fails with ErrIndexOutOfRange when n is negative or exceeds the count.
func (o *CategoryObject) FirstNDefiningNames(n int) ([]string, error) {
	ds, err := o.DefiningNames()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(ds) {
		return nil, fmt.Errorf("core: FirstNDefiningNames(%d) of %d: %w",
			n, len(ds), ErrIndexOutOfRange)
	}

	return ds[:n], nil
}

// certifyDefiningNames validates an explicit defining-name override.
func certifyDefiningNames(ns []string) error {
	return names.Certify(ns...)
}

// equalNames reports element-wise equality of two name lists.
func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
