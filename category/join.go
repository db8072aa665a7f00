// SPDX-License-Identifier: MIT
// Package: catobj/category
//
// join.go — the lattice-join operation: most specific common refinement.
//
// Join flattens nested joins, deduplicates, and reduces away any input that
// is already implied by another (a super of it). The result is a subcategory
// of every input; the operation is associative and idempotent, so chained
// refinements produce the same composite as a single joined refinement.

package category

import "strings"

// join is the composite Category produced by Join. Its members are always
// named categories (nested joins are flattened at construction) and there
// are always at least two of them; smaller inputs collapse to a member.
type join struct {
	members   []Category
	allSupers []Category
}

// Join combines categories into their most specific common refinement.
//
// Reduction rules, applied in order:
//   - nested join inputs are flattened into their members;
//   - duplicates are dropped, keep-first;
//   - a member that is a super of (or equal to) another member is dropped,
//     since the finer member already implies it.
//
// Join() of nothing is Objects; Join of a single surviving member is that
// member itself.
// Complexity: O(m² · len(chain)) for m surviving members; m is tiny in
// practice.
func Join(cats ...Category) Category {
	// Stage 1: flatten nested joins and drop duplicates, keep-first.
	flat := make([]Category, 0, len(cats))
	seen := make(map[Category]struct{}, len(cats))
	for _, c := range cats {
		if c == nil {
			continue
		}
		parts := []Category{c}
		if j, composite := c.(*join); composite {
			parts = j.members
		}
		for _, p := range parts {
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				flat = append(flat, p)
			}
		}
	}

	// Stage 2: reduce — drop any member implied by a finer sibling.
	reduced := make([]Category, 0, len(flat))
	for i, m := range flat {
		implied := false
		for k, other := range flat {
			if k != i && isStrictlyFiner(other, m) {
				implied = true
				break
			}
		}
		if !implied {
			reduced = append(reduced, m)
		}
	}

	switch len(reduced) {
	case 0:
		return Objects()
	case 1:
		return reduced[0]
	}

	j := &join{members: reduced}
	// The composite is finer than each member, so its chain is the ordered
	// union of the members and their chains (members themselves included).
	j.allSupers = linearize(reduced, Objects())

	return j
}

// isStrictlyFiner reports whether a is a proper subcategory of b, i.e.
// b appears in a's super chain. Equal categories are not "finer": Stage 1
// deduplication already removed exact duplicates, and treating equals as
// mutually implied here would erase both.
func isStrictlyFiner(a, b Category) bool {
	for _, sup := range a.AllSupers() {
		if sup == b {
			return true
		}
	}

	return false
}

// IsSubcategory reports whether sub is equal to, or a subcategory of, super.
func IsSubcategory(sub, super Category) bool {
	if sub == nil || super == nil {
		return false
	}
	if Equal(sub, super) {
		return true
	}
	for _, sup := range sub.AllSupers() {
		if Equal(sup, super) {
			return true
		}
	}

	return false
}

// Equal reports whether two categories denote the same classification:
// identical named categories, or joins over the same member sequence.
func Equal(a, b Category) bool {
	if a == b {
		return true
	}
	ja, aOK := a.(*join)
	jb, bOK := b.(*join)
	if !aOK || !bOK || len(ja.members) != len(jb.members) {
		return false
	}
	for i := range ja.members {
		if ja.members[i] != jb.members[i] {
			return false
		}
	}

	return true
}

// Members returns the atomic categories a value denotes: a join yields its
// member list, anything else yields itself. Used by persistence layers to
// encode a category as registry names.
func Members(c Category) []Category {
	if j, composite := c.(*join); composite {
		out := make([]Category, len(j.members))
		copy(out, j.members)

		return out
	}

	return []Category{c}
}

// Name derives a display name from the member names: "Join of A and B".
func (j *join) Name() string {
	parts := make([]string, len(j.members))
	for i, m := range j.members {
		parts[i] = m.Name()
	}

	return "Join of " + strings.Join(parts, " and ")
}

// Supers of a join are its members: the composite refines exactly them.
func (j *join) Supers() []Category {
	out := make([]Category, len(j.members))
	copy(out, j.members)

	return out
}

func (j *join) AllSupers() []Category { return j.allSupers }

// Table returns nil: a join contributes no behavior of its own, it only
// aggregates its members' tables through the chain.
func (j *join) Table() *Table { return nil }

// Attr implements chain lookup across all member tables, members first.
func (j *join) Attr(name string) (Attribute, bool) {
	return chainAttr(j, name)
}
