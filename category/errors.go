// SPDX-License-Identifier: MIT
// Package: catobj/category
//
// errors.go — sentinel errors for the category package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.

package category

import "errors"

// ErrEmptyCategoryName indicates New was called with an empty name.
// Usage: if errors.Is(err, ErrEmptyCategoryName) { /* supply a name */ }.
var ErrEmptyCategoryName = errors.New("category: name is empty")

// ErrDuplicateCategory indicates the requested name is already registered;
// registration is first-writer-wins and never silently replaces.
// Usage: if errors.Is(err, ErrDuplicateCategory) { /* Lookup the existing one */ }.
var ErrDuplicateCategory = errors.New("category: name already registered")

// ErrNotRegistered indicates a name lookup (typically during state restore)
// found no registered category under that name.
// Usage: if errors.Is(err, ErrNotRegistered) { /* register categories before restoring */ }.
var ErrNotRegistered = errors.New("category: name not registered")
