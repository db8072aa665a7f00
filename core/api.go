// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: read-only accessors and the memoized hash.
// Policy:
//   - No algorithms or hidden state transitions here.
//   - The hash is computed once from the display form and is stable
//     afterwards, even if the display form later changes.

package core

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Base returns the base object, or nil when none was set. The reference is
// non-owning; lifetime is governed externally.
func (o *CategoryObject) Base() any { return o.base }

// Owner returns the receiver bound methods see: the embedding structure, or
// the CategoryObject itself when none was declared.
func (o *CategoryObject) Owner() any { return o.receiver() }

// Display returns the canonical display form: the supplied DisplayFunc when
// one was set, otherwise a form derived from the category name and the
// variable names.
func (o *CategoryObject) Display() string {
	if o.display != nil {
		return o.display()
	}

	var b strings.Builder
	b.WriteString("Object in ")
	b.WriteString(o.Category().Name())
	if len(o.names) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(o.names, ", "))
		b.WriteString(")")
	}

	return b.String()
}

// String implements fmt.Stringer via the display form.
func (o *CategoryObject) String() string { return o.Display() }

// Hash returns the xxhash64 digest of the display form, memoized on first
// call. The memo survives later display changes: object hashes must stay
// stable for the lifetime of the instance (state restore resets the memo).
// Complexity: O(len(display)) once, O(1) afterwards.
func (o *CategoryObject) Hash() uint64 {
	if !o.hashSet {
		o.hash = xxhash.Sum64String(o.Display())
		o.hashSet = true
	}

	return o.hash
}
