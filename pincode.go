package gazetteer

import (
	"sort"
	"strings"
)

// Search resolves a full or partial pincode to ranked location suggestions.
//
// A query of 1–5 digits returns every record whose code starts with the
// query, ordered by code ascending and capped at the configured suggestion
// limit. A 6-digit query returns all records sharing that exact code (a code
// can cover several localities), ordered by city then locality so that
// picking the first suggestion is deterministic.
//
// An unknown code yields an empty result, not an error: callers leave the
// dependent form fields untouched. Malformed input — empty, non-digit, or
// longer than six characters — fails with *InvalidQueryError instead of
// being silently truncated.
func (ix *Index) Search(query string) ([]Record, error) {
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	if !ix.Ready() {
		return nil, nil
	}

	if len(query) == pincodeLen {
		group := ix.byPincode[query]
		out := make([]Record, len(group))
		copy(out, group)
		return out, nil
	}

	// Prefix scan over the sorted code list: binary-search the start of the
	// range, walk forward while the prefix holds.
	var out []Record
	i := sort.SearchStrings(ix.pincodes, query)
	for ; i < len(ix.pincodes) && strings.HasPrefix(ix.pincodes[i], query); i++ {
		for _, r := range ix.byPincode[ix.pincodes[i]] {
			if len(out) == ix.cfg.MaxSuggestions {
				return out, nil
			}
			out = append(out, r)
		}
	}
	return out, nil
}

func validateQuery(query string) error {
	switch {
	case query == "":
		return &InvalidQueryError{Query: query, Reason: "empty query"}
	case len(query) > pincodeLen:
		return &InvalidQueryError{Query: query, Reason: "longer than six digits"}
	case !allDigits(query):
		return &InvalidQueryError{Query: query, Reason: "contains non-digit characters"}
	}
	return nil
}
