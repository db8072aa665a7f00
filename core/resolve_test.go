package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/catobj/category"
	"github.com/katalvlaran/catobj/core"
)

// countingBinder instruments the descriptor protocol: every Bind call is
// counted, so tests can observe how often resolution actually derives a
// value versus serving the cache.
type countingBinder struct {
	calls int
	value any
}

func (b *countingBinder) Bind(receiver any) (any, error) {
	b.calls++

	return b.value, nil
}

func TestResolve_NoCategorySet(t *testing.T) {
	o := newObject(t)

	_, err := o.Resolve("anything")
	assert.ErrorIs(t, err, core.ErrNoAttribute)
}

func TestResolve_MissingAttribute(t *testing.T) {
	category.Reset()
	rings := category.MustNew("Rings", category.WithTable(
		category.NewTable().Set("one", 1)))
	o := newObject(t, core.WithCategory(rings))

	_, err := o.Resolve("zero")
	assert.ErrorIs(t, err, core.ErrNoAttribute)
}

func TestResolve_PlainValue(t *testing.T) {
	category.Reset()
	rings := category.MustNew("Rings", category.WithTable(
		category.NewTable().Set("characteristic", 0)))
	o := newObject(t, core.WithCategory(rings))

	got, err := o.Resolve("characteristic")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestResolve_MethodBindsToOwner(t *testing.T) {
	category.Reset()
	table := category.NewTable().Set("describe", category.Method(
		func(receiver any, args ...any) (any, error) {
			return receiver, nil
		}))
	rings := category.MustNew("Rings", category.WithTable(table))

	owner := &struct{ tag string }{tag: "ring"}
	o := newObject(t, core.WithCategory(rings), core.WithOwner(owner))

	got, err := o.Resolve("describe")
	require.NoError(t, err)

	bound, ok := got.(category.Bound)
	require.True(t, ok)

	recv, err := bound()
	require.NoError(t, err)
	assert.Same(t, owner, recv)
}

func TestResolve_BinderInvokedExactlyOnce(t *testing.T) {
	category.Reset()
	binder := &countingBinder{value: "derived"}
	rings := category.MustNew("Rings", category.WithTable(
		category.NewTable().Set("unit", binder)))
	o := newObject(t, core.WithCategory(rings))

	first, err := o.Resolve("unit")
	require.NoError(t, err)
	assert.Equal(t, "derived", first)
	assert.Equal(t, 1, binder.calls)

	// Second access serves the cache; the binder is not consulted again.
	second, err := o.Resolve("unit")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, binder.calls)
}

func TestResolve_SearchesSuperChain(t *testing.T) {
	category.Reset()
	sets := category.MustNew("Sets", category.WithTable(
		category.NewTable().Set("cardinality", "unknown")))
	rings := category.MustNew("Rings", category.WithSupers(sets))
	o := newObject(t, core.WithCategory(rings))

	got, err := o.Resolve("cardinality")
	require.NoError(t, err)
	assert.Equal(t, "unknown", got)
}

func TestResolve_CacheSurvivesBroaderHit(t *testing.T) {
	category.Reset()
	rings := category.MustNew("Rings", category.WithTable(
		category.NewTable().Set("capability", "ring-level")))
	fields := category.MustNew("Fields",
		category.WithSupers(rings),
		category.WithTable(category.NewTable().Set("capability", "field-level")))

	o := newObject(t, core.WithCategory(rings))

	got, err := o.Resolve("capability")
	require.NoError(t, err)
	assert.Equal(t, "ring-level", got)

	// Refinement clears the cache: the narrower category's binding wins on
	// the next lookup instead of the stale ring-level one.
	o.RefineCategory(fields)

	got, err = o.Resolve("capability")
	require.NoError(t, err)
	assert.Equal(t, "field-level", got)
}

func TestKnows_ProbesWithoutCaching(t *testing.T) {
	category.Reset()
	binder := &countingBinder{value: "v"}
	rings := category.MustNew("Rings", category.WithTable(
		category.NewTable().Set("unit", binder)))
	o := newObject(t, core.WithCategory(rings))

	assert.True(t, o.Knows("unit"))
	assert.False(t, o.Knows("absent"))
	// Probing must not run the binding protocol.
	assert.Equal(t, 0, binder.calls)
}

func TestDir_MergesStaticAndDynamic(t *testing.T) {
	category.Reset()
	sets := category.MustNew("Sets", category.WithTable(
		category.NewTable().Set("Cardinality", nil)))
	rings := category.MustNew("Rings",
		category.WithSupers(sets),
		category.WithTable(category.NewTable().Set("Characteristic", nil)))

	o := newObject(t, core.WithCategory(rings))
	dir := o.Dir()

	// Dynamic names from the whole chain.
	assert.Contains(t, dir, "Characteristic")
	assert.Contains(t, dir, "Cardinality")
	// Static methods of the receiver (the CategoryObject itself here).
	assert.Contains(t, dir, "Resolve")
	assert.Contains(t, dir, "VariableNames")

	// Sorted and duplicate-free.
	seen := make(map[string]struct{}, len(dir))
	for i, n := range dir {
		if i > 0 {
			assert.Less(t, dir[i-1], n)
		}
		_, dup := seen[n]
		assert.False(t, dup)
		seen[n] = struct{}{}
	}
}

func TestDir_RecomputedAfterRefinement(t *testing.T) {
	category.Reset()
	rings := category.MustNew("Rings")
	fields := category.MustNew("Fields",
		category.WithSupers(rings),
		category.WithTable(category.NewTable().Set("Inverse", nil)))

	o := newObject(t, core.WithCategory(rings))
	assert.NotContains(t, o.Dir(), "Inverse")

	o.RefineCategory(fields)
	assert.Contains(t, o.Dir(), "Inverse")
}
