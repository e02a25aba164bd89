package gazetteer

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Forward cascading queries: state → districts → cities. Results are derived
// straight from the index; lookups are hash-keyed, so nothing here caches.

// Districts returns the districts of state, sorted. Unknown or empty state,
// or an uninitialized engine, yields an empty result — never an error.
func (ix *Index) Districts(state string) []string {
	if !ix.Ready() || state == "" {
		return nil
	}
	names, ok := ix.districts[toLower(state)]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Cities returns the cities of the (state, district) pair, sorted. Empty when
// either key is unrecognized.
func (ix *Index) Cities(state, district string) []string {
	if !ix.Ready() || state == "" || district == "" {
		return nil
	}
	names, ok := ix.cities[pairKey(state, district)]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// hasDistrict reports whether district is reachable from state, ignoring case.
func (ix *Index) hasDistrict(state, district string) (string, bool) {
	return matchName(ix.Districts(state), district)
}

// hasCity reports whether city is reachable from (state, district).
func (ix *Index) hasCity(state, district, city string) (string, bool) {
	return matchName(ix.Cities(state, district), city)
}

// matchName finds the canonical entry equal to q ignoring case.
func matchName(names []string, q string) (string, bool) {
	for _, n := range names {
		if strings.EqualFold(n, q) {
			return n, true
		}
	}
	return "", false
}

// ResolveState matches free-text input against the known states and returns
// the canonical name: exact case-insensitive match first, then the closest
// name within the configured edit distance. Used by forms that accept pasted
// addresses rather than dropdown picks.
func (ix *Index) ResolveState(q string) (string, bool) {
	return ix.resolveName(ix.States(), q)
}

// ResolveDistrict is ResolveState for the districts of a given state.
func (ix *Index) ResolveDistrict(state, q string) (string, bool) {
	return ix.resolveName(ix.Districts(state), q)
}

func (ix *Index) resolveName(names []string, q string) (string, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", false
	}
	if name, ok := matchName(names, q); ok {
		return name, ok
	}
	if ix.cfg.FuzzyDistance == 0 {
		return "", false
	}

	// Closest name wins; names is sorted, so equal distances resolve to the
	// lexicographically first candidate.
	best := ""
	bestDist := ix.cfg.FuzzyDistance + 1
	for _, n := range names {
		if !fuzzyMatch(q, n, bestDist-1) {
			continue
		}
		d := levenshtein.ComputeDistance(toLower(q), toLower(n))
		if d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best, best != ""
}

// fuzzyMatch compares two strings with Levenshtein distance tolerance.
// maxDist 0 degrades to an exact case-insensitive match.
func fuzzyMatch(query, candidate string, maxDist int) bool {
	if maxDist == 0 {
		return strings.EqualFold(query, candidate)
	}
	dist := levenshtein.ComputeDistance(
		strings.ToLower(query),
		strings.ToLower(candidate),
	)
	return dist <= maxDist
}
