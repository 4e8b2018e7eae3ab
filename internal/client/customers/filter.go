package customers

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/partsadmin/internal/client/models"
)

// Criteria are the four client-side predicates. Empty fields match
// everything.
type Criteria struct {
	SearchTerm string
	State      string
	City       string
	Pincode    string
}

// IsZero reports whether no predicate is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Match applies all predicates, AND-combined.
func (c Criteria) Match(cu models.Customer) bool {
	if !cu.Matches(c.SearchTerm) {
		return false
	}
	if c.State != "" && cu.State != c.State {
		return false
	}
	if c.City != "" && cu.City != c.City {
		return false
	}
	if c.Pincode != "" && cu.Pincode.String() != c.Pincode {
		return false
	}
	return true
}

// Apply returns the matching subset of list in input order. The
// result never aliases list.
func Apply(list []models.Customer, c Criteria) []models.Customer {
	out := make([]models.Customer, 0, len(list))
	for _, cu := range list {
		if c.Match(cu) {
			out = append(out, cu)
		}
	}
	return out
}

// Options are the distinct selectable values of a loaded set.
type Options struct {
	States   []string
	Cities   []string
	Pincodes []string
}

// OptionsOf collects sorted unique non-empty states, cities and pincodes.
func OptionsOf(list []models.Customer) Options {
	states := map[string]struct{}{}
	cities := map[string]struct{}{}
	pins := map[string]struct{}{}
	for _, cu := range list {
		add(states, cu.State)
		add(cities, cu.City)
		add(pins, cu.Pincode.String())
	}
	return Options{States: sorted(states), Cities: sorted(cities), Pincodes: sorted(pins)}
}

// ResolveState returns the loaded state equal to v ignoring case, or v
// itself when there is none.
func (o Options) ResolveState(v string) string {
	return resolve(o.States, v)
}

// ResolveCity is ResolveState for cities.
func (o Options) ResolveCity(v string) string {
	return resolve(o.Cities, v)
}

func resolve(values []string, v string) string {
	for _, known := range values {
		if known == v {
			return known
		}
	}
	for _, known := range values {
		if strings.EqualFold(known, v) {
			return known
		}
	}
	return v
}

func add(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
