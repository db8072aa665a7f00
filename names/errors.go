// SPDX-License-Identifier: MIT
// Package: catobj/names
//
// errors.go — sentinel errors for the names package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach the offending value using `%w` wrapping.

package names

import "errors"

// ErrEmptyName indicates a candidate variable name is the empty string.
// Usage: if errors.Is(err, ErrEmptyName) { /* supply a nonempty name */ }.
var ErrEmptyName = errors.New("names: variable name must be nonempty")

// ErrNotAlphanumeric indicates a candidate name contains a character outside
// letters, digits and underscore.
// Usage: if errors.Is(err, ErrNotAlphanumeric) { /* strip punctuation */ }.
var ErrNotAlphanumeric = errors.New("names: variable name is not alphanumeric")

// ErrLeadingNonLetter indicates a candidate name does not start with a letter
// (digits and underscores are valid only past the first character).
// Usage: if errors.Is(err, ErrLeadingNonLetter) { /* rename, e.g. x_1 not _x1 */ }.
var ErrLeadingNonLetter = errors.New("names: variable name does not start with a letter")

// ErrDuplicateName indicates the same name appears more than once in a single
// normalization or certification batch.
// Usage: if errors.Is(err, ErrDuplicateName) { /* deduplicate the spec */ }.
var ErrDuplicateName = errors.New("names: variable name appears more than once")

// ErrCountMismatch indicates the normalized name list disagrees with the
// expected generator count supplied by the caller.
// Usage: if errors.Is(err, ErrCountMismatch) { /* fix n or the spec */ }.
var ErrCountMismatch = errors.New("names: wrong number of variable names")
