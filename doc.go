// Package catobj is the object-model kernel of a computer-algebra system:
// category membership, named generators, and dynamically resolved,
// category-contributed behavior for every algebraic structure.
//
// 🚀 What is catobj?
//
//	A small, deterministic, in-memory library that brings together:
//		• Name handling: normalize any name spec (list, comma string,
//		  character run, indexed prefix) into certified identifiers
//		• A category lattice: registered categories, super-chain
//		  linearization, and a reducing Join operation
//		• Behavior tables: the methods a category contributes to its
//		  member objects, with a method/descriptor binding protocol
//		• CategoryObject: the kernel a concrete structure embeds — dynamic
//		  attribute resolution with per-instance memoization, monotone
//		  category refinement, write-once names, versioned state records
//
// ✨ Why choose catobj?
//
//   - Single-class mixins – one runtime type behaves as a member of many
//     categories chosen at construction time, no static inheritance
//   - Rock-solid guarantees – write-once names, monotone refinement,
//     cache invalidation on refine and restore
//   - Pure Go – no cgo, deterministic, synchronous, in-process
//   - Extensible – declare categories and tables at init, refine at runtime
//
// Everything is organized under three subpackages:
//
//	names/    — name-spec normalization, certification, LaTeX derivation
//	category/ — categories, the registry, Join, behavior tables
//	core/     — CategoryObject: resolver, refinement, naming, persistence
//
// Quick start:
//
//	rings := category.MustNew("Rings", category.WithTable(
//		category.NewTable().Set("is_commutative", category.Method(
//			func(receiver any, args ...any) (any, error) { return true, nil }))))
//
//	obj, err := core.New(
//		core.WithCategory(rings),
//		core.WithNames(2, "x,y"),
//	)
//	if err != nil { ... }
//	attr, err := obj.Resolve("is_commutative") // contributed by the category
package catobj
