// Package core defines the central CategoryObject type, its construction
// options, and the sentinel errors shared by all core operations.
//
// This file declares CategoryObject, Option, the sentinel errors, and the
// New constructor. Method implementations live in methods_names.go,
// methods_gens.go, resolve.go, refine.go and state.go.
//
// Errors:
//
//	ErrNamesNotSet     - names were never assigned.
//	ErrNamesMismatch   - a second, different name assignment was attempted.
//	ErrNoGenerators    - no generator source was supplied.
//	ErrNoAttribute     - the category contributes no such attribute.
//	ErrBadStateVersion - persisted record carries an unknown version tag.
//	ErrIndexOutOfRange - a positional generator/name access is out of range.
//	ErrNilNamespace    - namespace injection received a nil map.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/catobj/category"
)

// Sentinel errors for core category-object operations.
var (
	// ErrNamesNotSet indicates variable names were requested before any
	// assignment took place.
	ErrNamesNotSet = errors.New("core: variable names not yet assigned")

	// ErrNamesMismatch indicates an attempt to reassign names to a value
	// different from the one already set (names are write-once).
	ErrNamesMismatch = errors.New("core: variable names already assigned differently")

	// ErrNoGenerators indicates generator access on an object without a
	// generator source.
	ErrNoGenerators = errors.New("core: object has no generators")

	// ErrNoAttribute indicates the dynamic resolver found no matching
	// capability in the category's behavior tables.
	ErrNoAttribute = errors.New("core: no such attribute")

	// ErrBadStateVersion indicates a persisted state record with an
	// unrecognized version tag.
	ErrBadStateVersion = errors.New("core: unknown state record version")

	// ErrIndexOutOfRange indicates a positional access past the available
	// generators or defining names.
	ErrIndexOutOfRange = errors.New("core: index out of range")

	// ErrNilNamespace indicates InjectVariables received a nil map.
	ErrNilNamespace = errors.New("core: namespace map is nil")
)

// GensFunc supplies the ordered defining elements of the owning structure.
// It stands in for the abstract gens() of a concrete subclass: the embedding
// structure provides it at construction time.
type GensFunc func() []any

// DisplayFunc supplies the canonical display form of the owning structure,
// used for hashing and diagnostics.
type DisplayFunc func() string

// CategoryObject ties together a category, an optional base object, a
// write-once name list, and the per-instance attribute cache.
//
// The zero value is usable: category reads lazily initialize to the top
// category, and every other field starts unset.
type CategoryObject struct {
	cat   category.Category // nil until initialized or first read
	owner any               // receiver for bound category methods; defaults to self
	base  any               // non-owning reference, lifetime governed externally

	names      []string // nil = unset; write-once afterwards
	latexNames []string // lazy, derived from names

	gens        GensFunc
	defNames    []string // explicit override, or memoized default
	defExplicit bool     // defNames was supplied at construction

	attrCache map[string]any // resolved category attributes, instance-scoped

	hash    uint64 // memoized hash of the display form
	hashSet bool

	display DisplayFunc

	// pending name spec captured by WithNames, applied during New.
	pendingCount int
	pendingSpec  any
	pendingNames bool
}

// Option configures a CategoryObject during New.
type Option func(*CategoryObject)

// WithCategory sets the initial category.
func WithCategory(c category.Category) Option {
	return func(o *CategoryObject) { o.cat = c }
}

// WithCategories sets the initial category to the join of several.
func WithCategories(cats ...category.Category) Option {
	return func(o *CategoryObject) { o.cat = category.Join(cats...) }
}

// WithBase sets the base object (e.g. the coefficient ring of a polynomial
// ring). The reference is non-owning.
func WithBase(b any) Option {
	return func(o *CategoryObject) { o.base = b }
}

// WithOwner sets the receiver that category-contributed methods are bound
// to. An embedding structure passes itself; default is the CategoryObject.
func WithOwner(owner any) Option {
	return func(o *CategoryObject) { o.owner = owner }
}

// WithGens supplies the generator source of the owning structure.
func WithGens(f GensFunc) Option {
	return func(o *CategoryObject) { o.gens = f }
}

// WithDefiningNames overrides the defining-name list (by default the
// variable names), e.g. a module basis distinct from the given generators.
// The list is certified during New.
func WithDefiningNames(ns ...string) Option {
	return func(o *CategoryObject) {
		o.defNames = append([]string(nil), ns...)
		o.defExplicit = true
	}
}

// WithDisplay supplies the canonical display form used for hashing.
func WithDisplay(f DisplayFunc) Option {
	return func(o *CategoryObject) { o.display = f }
}

// WithNames records a name specification (any shape accepted by
// names.Normalize) to be assigned during New. Use names.UnknownCount to
// infer the count from the spec.
func WithNames(count int, spec any) Option {
	return func(o *CategoryObject) {
		o.pendingCount = count
		o.pendingSpec = spec
		o.pendingNames = true
	}
}

// New constructs a CategoryObject, applying options left-to-right, then
// normalizes and assigns any pending name specification and certifies any
// explicit defining names.
// Complexity: O(len(opts)) plus name normalization.
func New(opts ...Option) (*CategoryObject, error) {
	o := &CategoryObject{}
	for _, opt := range opts {
		opt(o)
	}

	if o.pendingNames {
		if err := o.AssignNames(o.pendingCount, o.pendingSpec); err != nil {
			return nil, fmt.Errorf("core: New: %w", err)
		}
		o.pendingSpec = nil
		o.pendingNames = false
	}

	if o.defExplicit {
		if err := certifyDefiningNames(o.defNames); err != nil {
			return nil, fmt.Errorf("core: New: %w", err)
		}
	}

	return o, nil
}
