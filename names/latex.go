// SPDX-License-Identifier: MIT
// Package: catobj/names
//
// latex.go — LaTeX derivation for validated variable names.
//
// A name like "x_2" renders poorly in LaTeX unless the subscript is braced;
// nested subscripts need nested braces. Latex rewrites "a_rest" into
// "a_{REST}" where REST is itself the LaTeX form of rest, so "x_2_3"
// becomes "x_{2_{3}}".

package names

import "strings"

// Latex returns the LaTeX-renderable form of a single variable name,
// bracing each underscore-introduced subscript recursively.
// Names without underscores are returned unchanged.
// Complexity: O(len(name)) per nesting level.
func Latex(name string) string {
	head, rest, found := strings.Cut(name, "_")
	if !found {
		return name
	}

	return head + "_{" + Latex(rest) + "}"
}

// LatexAll maps Latex over a list of names, preserving order.
func LatexAll(list []string) []string {
	out := make([]string, len(list))
	for i, name := range list {
		out[i] = Latex(name)
	}

	return out
}
