// Package category: category values and their super-chain linearization.
//
// This file declares the Category interface, the named-category
// implementation, construction options, and the depth-first linearization of
// the transitive super chain. The chain is computed once at construction;
// categories are immutable afterwards, so the memo never goes stale.
package category

// Category is an immutable classification value for algebra objects.
//
// Name uniquely identifies the category in the process-wide registry
// (join composites carry a derived, unregistered name). Supers lists the
// direct super-categories declared at construction; AllSupers is the
// self-exclusive transitive chain, most-specific first, depth-first,
// without duplicates, always ending at Objects. Table is the behavior
// table this category contributes to its members (nil when it has none).
type Category interface {
	// Name returns the display/registry name of the category.
	Name() string

	// Supers returns the direct super-categories, in declaration order.
	Supers() []Category

	// AllSupers returns the full linearized super chain, excluding the
	// category itself: direct supers first (each followed by its own chain),
	// deduplicated keep-first, terminated by Objects.
	AllSupers() []Category

	// Table returns the behavior table of this category, or nil.
	Table() *Table

	// Attr searches this category's table and then every table along
	// AllSupers, in order, for the named attribute. First hit wins.
	Attr(name string) (Attribute, bool)
}

// named is the registered Category implementation. Identity is pointer
// identity: the registry hands out the same *named for the same name.
type named struct {
	name      string
	supers    []Category
	allSupers []Category
	table     *Table
}

// Option configures a category prior to registration.
type Option func(*config)

type config struct {
	supers []Category
	table  *Table
}

// WithSupers declares the direct super-categories. Supers are passed as
// values, so the declaration graph is acyclic by construction.
func WithSupers(supers ...Category) Option {
	return func(c *config) { c.supers = append(c.supers, supers...) }
}

// WithTable attaches a behavior table. The table must not be mutated after
// the category is registered.
func WithTable(t *Table) Option {
	return func(c *config) { c.table = t }
}

func (n *named) Name() string          { return n.name }
func (n *named) Table() *Table         { return n.table }
func (n *named) AllSupers() []Category { return n.allSupers }

// Supers returns a copy of the direct super list.
func (n *named) Supers() []Category {
	out := make([]Category, len(n.supers))
	copy(out, n.supers)

	return out
}

// Attr implements chain lookup for a named category.
// Complexity: O(len(chain)) table probes, O(1) each.
func (n *named) Attr(name string) (Attribute, bool) {
	return chainAttr(n, name)
}

// chainAttr searches c's own table, then each super table along the chain.
func chainAttr(c Category, name string) (Attribute, bool) {
	if attr, ok := c.Table().Get(name); ok {
		return attr, true
	}
	for _, sup := range c.AllSupers() {
		if attr, ok := sup.Table().Get(name); ok {
			return attr, true
		}
	}

	return nil, false
}

// linearize computes the self-exclusive transitive super chain for a node
// with the given direct supers: depth-first, most-specific first, keep-first
// deduplication. The top category is appended last so every chain
// terminates at Objects.
func linearize(supers []Category, top Category) []Category {
	seen := make(map[Category]struct{}, len(supers)+1)
	chain := make([]Category, 0, len(supers)+1)

	// Depth-first order: each direct super contributes itself, then its own
	// already-linearized chain. Keep-first preserves specificity order; the
	// top category is held back so it always lands last, never mid-chain.
	push := func(c Category) {
		if c == top {
			return
		}
		if _, dup := seen[c]; !dup {
			seen[c] = struct{}{}
			chain = append(chain, c)
		}
	}
	for _, sup := range supers {
		push(sup)
		for _, anc := range sup.AllSupers() {
			push(anc)
		}
	}

	// Every category sits below the top of the lattice.
	if top != nil {
		chain = append(chain, top)
	}

	return chain
}
