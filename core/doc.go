// Package core provides CategoryObject, the kernel every algebra object
// carries: its category membership, its named generators, and the dynamic
// attribute resolver that pulls category-contributed behavior in on demand.
//
// A concrete structure (a ring, a module, a polynomial ring) embeds a
// *CategoryObject and wires itself in through functional options:
//
//	ring := &PolyRing{}
//	kernel, err := core.New(
//		core.WithCategory(commRings),
//		core.WithOwner(ring),
//		core.WithBase(coefficients),
//		core.WithNames(2, "x,y"),
//		core.WithGens(ring.generators),
//	)
//
// The category may be refined (narrowed through the lattice join) any number
// of times, but never widened; names are write-once; the attribute cache is
// instance-scoped and is cleared on every refinement and on state restore.
//
// All operations are synchronous, in-memory and single-threaded; the only
// mutable state is per-instance.
//
// Errors:
//
//	ErrNamesNotSet     - variable names requested before assignment.
//	ErrNamesMismatch   - conflicting reassignment of already-set names.
//	ErrNoGenerators    - generator access without a generator source.
//	ErrNoAttribute     - dynamic resolution found no matching capability.
//	ErrBadStateVersion - unknown version tag in a persisted state record.
//	ErrIndexOutOfRange - generator or defining-name index out of range.
//	ErrNilNamespace    - InjectVariables called with a nil namespace.
package core
