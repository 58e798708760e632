package transit

import (
	"strings"

	"golang.org/x/text/cases"
)

// RouteName pairs a pattern headsign with the short name of its route
type RouteName struct {
	Headsign  string
	ShortName string
}

// RouteNames is an insertion-ordered headsign -> route short name mapping.
// Upstream headsigns of a departure rarely match pattern headsigns exactly,
// so lookups go through Match.
type RouteNames struct {
	entries []RouteName
	index   map[string]int
}

// NewRouteNames returns an empty mapping
func NewRouteNames() *RouteNames {
	return &RouteNames{index: make(map[string]int)}
}

// Set stores shortName for headsign. Setting an existing headsign replaces
// its short name but keeps its original position.
func (r *RouteNames) Set(headsign, shortName string) {
	if i, ok := r.index[headsign]; ok {
		r.entries[i].ShortName = shortName
		return
	}
	r.index[headsign] = len(r.entries)
	r.entries = append(r.entries, RouteName{Headsign: headsign, ShortName: shortName})
}

// Get returns the short name stored for an exact headsign
func (r *RouteNames) Get(headsign string) (string, bool) {
	if r == nil {
		return "", false
	}
	i, ok := r.index[headsign]
	if !ok {
		return "", false
	}
	return r.entries[i].ShortName, true
}

// Len returns the number of stored headsigns
func (r *RouteNames) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns the mapping in insertion order
func (r *RouteNames) Entries() []RouteName {
	if r == nil {
		return nil
	}
	out := make([]RouteName, len(r.entries))
	copy(out, r.entries)
	return out
}

// Match returns the first entry whose headsign contains, or is contained in,
// the given headsign, ignoring case.
func (r *RouteNames) Match(headsign string) (RouteName, bool) {
	if r == nil || headsign == "" {
		return RouteName{}, false
	}

	fold := cases.Fold()
	needle := fold.String(headsign)

	for _, e := range r.entries {
		key := fold.String(e.Headsign)
		if key == "" {
			continue
		}
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return e, true
		}
	}
	return RouteName{}, false
}
