// SPDX-License-Identifier: MIT
// Package: catobj/core
//
// state.go — versioned capture/restore of the authoritative fields.
//
// Exactly three fields are authoritative: category, base, names. Everything
// else (attribute cache, hash memo, latex memo, defining-name memo) is
// derived and is discarded on restore. The record carries an integer
// version tag; decoding dispatches on it and hard-fails on unknown tags.
//
// The JSON form encodes the category by registered name (a join by its
// member names). The base is a non-owning reference to an externally owned
// object and is not part of the JSON form; owners re-attach it after
// UnmarshalState.

package core

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/catobj/category"
)

// State record versions.
const (
	// StateVersionLegacy records carry only base and names.
	StateVersionLegacy = 0

	// StateVersion is the current format: category, base and names.
	StateVersion = 1
)

// State is the persisted form of a CategoryObject's authoritative fields.
type State struct {
	Version  int
	Category category.Category
	Base     any
	Names    []string
}

// CaptureState emits the three authoritative fields under the current
// format version. Transient caches are never captured.
func (o *CategoryObject) CaptureState() State {
	var ns []string
	if o.names != nil {
		ns = append([]string(nil), o.names...)
	}

	return State{
		Version:  StateVersion,
		Category: o.cat,
		Base:     o.base,
		Names:    ns,
	}
}

// RestoreState dispatches on the record's version tag:
//
//   - StateVersion (1): if the record carries a category and the object has
//     none, adopt it; if both exist, keep the join — category information
//     is never discarded. Base and names restore verbatim.
//   - StateVersionLegacy (0): base and names only; anything else in the
//     record is ignored.
//   - anything else: ErrBadStateVersion.
//
// After a successful restore every derived cache (attributes, hash, latex
// forms, memoized defining names) is reset: it depended on pre-restore
// category identity.
func (o *CategoryObject) RestoreState(s State) error {
	switch s.Version {
	case StateVersion:
		if s.Category != nil {
			if o.cat == nil {
				o.cat = s.Category
			} else {
				o.cat = category.Join(o.cat, s.Category)
			}
		}
		o.restoreBaseAndNames(s)
	case StateVersionLegacy:
		o.restoreBaseAndNames(s)
	default:
		return fmt.Errorf("core: RestoreState: version %d: %w", s.Version, ErrBadStateVersion)
	}

	// Derived state is stale now.
	o.attrCache = nil
	o.hashSet = false
	o.hash = 0
	o.latexNames = nil
	if !o.defExplicit {
		o.defNames = nil
	}

	return nil
}

func (o *CategoryObject) restoreBaseAndNames(s State) {
	o.base = s.Base
	if s.Names != nil {
		o.names = append([]string(nil), s.Names...)
	} else {
		o.names = nil
	}
}

// stateJSON is the wire form of State. The base is deliberately absent; see
// the file header.
type stateJSON struct {
	Version  int      `json:"version"`
	Category []string `json:"category,omitempty"`
	Names    []string `json:"names,omitempty"`
}

// MarshalState encodes the captured state as JSON, the category by its
// registered member names.
func (o *CategoryObject) MarshalState() ([]byte, error) {
	s := o.CaptureState()

	wire := stateJSON{Version: s.Version, Names: s.Names}
	if s.Category != nil {
		for _, m := range category.Members(s.Category) {
			wire.Category = append(wire.Category, m.Name())
		}
	}

	out, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("core: MarshalState: %w", err)
	}

	return out, nil
}

// UnmarshalState decodes a JSON state record and restores it. Category
// names resolve through the process-wide registry; an unregistered name
// fails with category.ErrNotRegistered, so categories must be declared
// before objects are restored.
func (o *CategoryObject) UnmarshalState(data []byte) error {
	var wire stateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("core: UnmarshalState: %w", err)
	}

	s := State{Version: wire.Version, Names: wire.Names}
	if len(wire.Category) > 0 {
		members := make([]category.Category, 0, len(wire.Category))
		for _, name := range wire.Category {
			m, ok := category.Lookup(name)
			if !ok {
				return fmt.Errorf("core: UnmarshalState: category %q: %w",
					name, category.ErrNotRegistered)
			}
			members = append(members, m)
		}
		s.Category = category.Join(members...)
	}

	return o.RestoreState(s)
}
