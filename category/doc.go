// Package category models the lattice of algebraic categories that classify
// computer-algebra objects, together with the behavior tables those
// categories contribute to their member objects.
//
// A Category is an immutable value with a unique registered name, an ordered
// list of direct super-categories, and an optional behavior Table. The
// transitive super chain (AllSupers) is linearized depth-first, most-specific
// first, without duplicates, and always terminates at the top category
// Objects — the same search order a prototype chain uses for slot lookup.
//
// Categories combine through Join, which produces the most specific common
// refinement of its inputs: a flattened, deduplicated, reduced composite that
// is a subcategory of every input. Join is associative and idempotent, so a
// sequence of refinements commutes with a single joined refinement.
//
// The package keeps a process-wide registry so persisted objects can encode
// their category by name and resolve it again on restore.
//
// Errors:
//
//	ErrEmptyCategoryName - a category was declared with an empty name.
//	ErrDuplicateCategory - the name is already registered.
//	ErrNotRegistered     - a name lookup found no registered category.
package category
