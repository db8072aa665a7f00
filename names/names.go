// Package names turns user-supplied variable-name specifications into a
// canonical ordered list of unique, well-formed identifiers, and derives
// LaTeX-renderable forms from them.
//
// A specification may be a []string, a comma-separated string, a run of
// single-character names, or a bare prefix expanded with indices. All paths
// funnel through Certify, which enforces the structural contract: nonempty,
// alphanumeric-or-underscore, leading letter, unique within the batch.
//
// Errors:
//
//	ErrEmptyName        - a candidate name is "".
//	ErrNotAlphanumeric  - a candidate contains a forbidden character.
//	ErrLeadingNonLetter - a candidate starts with a digit or underscore.
//	ErrDuplicateName    - the same name occurs twice in one batch.
//	ErrCountMismatch    - result length disagrees with the expected count.
package names

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// UnknownCount is the sentinel expected-count meaning "infer from the spec".
const UnknownCount = -1

// Normalize converts spec into a canonical ordered list of exactly count
// unique identifiers (or any number of them when count is UnknownCount).
//
// Accepted spec shapes, tried in order:
//   - []string: each element trimmed of surrounding whitespace.
//   - string containing a comma: split on commas, each segment trimmed.
//   - string whose length equals count and whose characters are each
//     independently valid one-character names: split into runes.
//   - any other string: used as a common prefix, expanded to count names by
//     suffixing indices 0..count-1.
//   - anything else: converted to its display string first, then the string
//     rules above apply.
//
// Returns ErrCountMismatch when the result disagrees with a known count, and
// delegates structural/uniqueness checks to Certify.
// Complexity: O(total name length).
func Normalize(count int, spec any) ([]string, error) {
	// The only accepted negative count is the UnknownCount sentinel.
	if count < UnknownCount {
		return nil, fmt.Errorf("names: Normalize: count %d: %w", count, ErrCountMismatch)
	}

	// Stage 1: reduce the spec to a flat []string candidate list.
	var candidates []string
	switch v := spec.(type) {
	case []string:
		candidates = trimAll(v)
	case string:
		candidates = splitString(count, v)
	case fmt.Stringer:
		candidates = splitString(count, v.String())
	default:
		// Last resort: the display form of the value, then the string rules.
		candidates = splitString(count, fmt.Sprint(v))
	}

	// Stage 2: enforce the expected count, when known.
	if count != UnknownCount && len(candidates) != count {
		return nil, fmt.Errorf("names: Normalize: expected %d names, got %d (%q): %w",
			count, len(candidates), candidates, ErrCountMismatch)
	}

	// Stage 3: structural and uniqueness certification of the whole batch.
	if err := Certify(candidates...); err != nil {
		return nil, err
	}

	return candidates, nil
}

// splitString applies the string-shaped normalization rules:
// comma list, single-character run, or indexed prefix expansion.
func splitString(count int, s string) []string {
	s = strings.TrimSpace(s)

	// Comma list: "x, y, z" → {"x","y","z"}.
	if strings.Contains(s, ",") {
		return trimAll(strings.Split(s, ","))
	}

	// Character run: "ab" with count 2 → {"a","b"}, but only when every rune
	// is itself a valid one-character name.
	if runes := []rune(s); count >= 0 && len(runes) == count && count != 1 {
		parts := make([]string, len(runes))
		for i, r := range runes {
			if !unicode.IsLetter(r) {
				parts = nil
				break
			}
			parts[i] = string(r)
		}
		if parts != nil {
			return parts
		}
	}

	// Unknown count: a single bare string denotes a single name.
	if count == UnknownCount || count == 1 {
		return []string{s}
	}

	// Indexed prefix: "x" with count 3 → {"x0","x1","x2"}.
	parts := make([]string, count)
	for i := 0; i < count; i++ {
		parts[i] = s + strconv.Itoa(i)
	}

	return parts
}

// trimAll returns a copy of ss with surrounding whitespace removed from
// every element. The input slice is never mutated.
func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}

	return out
}

// Certify validates a batch of candidate variable names, in order:
// each must be nonempty, consist of letters/digits/underscores only, start
// with a letter, and be unique within this call. The first violation is
// reported; no partial success.
// Complexity: O(total name length).
func Certify(candidates ...string) error {
	seen := make(map[string]struct{}, len(candidates))
	for _, name := range candidates {
		if name == "" {
			return fmt.Errorf("names: Certify: %w", ErrEmptyName)
		}
		for _, r := range name {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return fmt.Errorf("names: Certify: %q: %w", name, ErrNotAlphanumeric)
			}
		}
		if r := []rune(name)[0]; !unicode.IsLetter(r) {
			return fmt.Errorf("names: Certify: %q: %w", name, ErrLeadingNonLetter)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("names: Certify: %q: %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
	}

	return nil
}
