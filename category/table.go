// SPDX-License-Identifier: MIT
// Package: catobj/category
//
// table.go — behavior tables: the methods and values a category contributes
// to objects that are members of it.
//
// Resolution semantics (consumed by core's dynamic resolver):
//   • Method entries are plain functions; the resolver binds them to the
//     receiving object by closure at resolve time.
//   • Binder entries follow a descriptor protocol; the resolver invokes
//     Bind(receiver) and caches what it returns.
//   • Any other Attribute value is served verbatim.

package category

// Attribute is a value contributed by a behavior table. Plain values are
// served as-is; Method and Binder receive special binding treatment.
type Attribute any

// Method is a category-supplied function attribute. At resolve time it is
// bound to the receiving object: the object arrives as receiver, further
// call arguments pass through args.
type Method func(receiver any, args ...any) (any, error)

// Bound is a Method after binding: the receiver is captured, only the call
// arguments remain.
type Bound func(args ...any) (any, error)

// Binder is the descriptor protocol for attributes that compute their value
// per receiver (properties, lazily built helpers). Bind is invoked once per
// object; the result is cached by the resolver.
type Binder interface {
	Bind(receiver any) (any, error)
}

// Table is an insertion-ordered mapping from attribute name to Attribute.
// Tables are built once, before the owning category is registered, and must
// not be mutated afterwards.
type Table struct {
	attrs map[string]Attribute
	order []string
}

// NewTable returns an empty behavior table.
func NewTable() *Table {
	return &Table{attrs: make(map[string]Attribute)}
}

// Set stores attr under name, replacing any previous entry while keeping the
// original insertion position. Returns the table for chaining.
func (t *Table) Set(name string, attr Attribute) *Table {
	if _, exists := t.attrs[name]; !exists {
		t.order = append(t.order, name)
	}
	t.attrs[name] = attr

	return t
}

// Get returns the attribute stored under name, if any.
// Complexity: O(1).
func (t *Table) Get(name string) (Attribute, bool) {
	if t == nil {
		return nil, false
	}
	attr, ok := t.attrs[name]

	return attr, ok
}

// Names returns the attribute names in insertion order.
// The returned slice is a copy; mutating it does not affect the table.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Len reports the number of entries in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.attrs)
}
