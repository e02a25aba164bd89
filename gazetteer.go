// Package gazetteer implements the location resolution engine used by the
// gharfinder address forms: a process-local, read-only index over a flat
// state/district/city/pincode dataset that supports forward cascading
// selection (state → districts → cities), reverse resolution from a full or
// partial pincode, and a selection coordinator that keeps an in-progress
// address consistent across both paths.
//
// The dataset is loaded once via Init and is immutable afterwards. An Index
// is safe for concurrent reads after a successful Init; a Coordinator is
// bound to a single form and is not safe for concurrent mutation.
package gazetteer

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// pincodeLen is the length of a full Indian postal code.
const pincodeLen = 6

// Record is one flat row of the geographic dataset and the unit returned by
// pincode search: the (state, district, city) tuple a code belongs to plus an
// optional free-text locality label. A single pincode may map to several
// Records (multiple localities sharing a code); the engine never collapses
// them.
type Record struct {
	State    string
	District string
	City     string
	Pincode  string
	Locality string
}

// valid reports whether a source row carries everything the index needs.
// Rows failing this are skipped during load, the same way malformed dataset
// rows are skipped at parse time.
func (r Record) valid() bool {
	return r.State != "" && r.District != "" && r.City != "" && isPincode(r.Pincode)
}

func isPincode(s string) bool {
	if len(s) != pincodeLen {
		return false
	}
	return allDigits(s)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Config contains configuration options for Index initialization.
type Config struct {
	MaxSuggestions int // cap on pincode prefix-search results (default 25)
	FuzzyDistance  int // max edit distance for ResolveState/ResolveDistrict (default 1)
}

// Option is a functional option for configuring an Index.
type Option func(*Config)

// WithMaxSuggestions caps the number of records a partial pincode search may
// return. Values below 1 are ignored.
func WithMaxSuggestions(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.MaxSuggestions = n
		}
	}
}

// WithFuzzyDistance sets the maximum Levenshtein distance for the free-text
// name resolvers. 0 disables fuzzy matching (exact case-insensitive only).
func WithFuzzyDistance(d int) Option {
	return func(c *Config) {
		if d >= 0 {
			c.FuzzyDistance = d
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		MaxSuggestions: 25,
		FuzzyDistance:  1,
	}
}

// maxFuzzyDistance caps FuzzyDistance to prevent expensive scans across the
// whole name list with high edit distances.
const maxFuzzyDistance = 3

// Index is the dataset index: the owner of all loaded records and of the
// lookup structures the resolvers query. Zero value is unusable; construct
// with New and call Init before querying. Queries on an Index whose Init has
// not yet succeeded return empty results.
type Index struct {
	src Source
	cfg *Config

	// initMu guards the load so that two racing Init calls cannot build the
	// indices twice. Queries read without locking: ready flips to true only
	// after the structures below are fully built and never flips back.
	initMu sync.Mutex
	ready  bool

	states    []string            // canonical state names, sorted
	districts map[string][]string // lower(state) -> sorted canonical district names
	cities    map[string][]string // lower(state)\tlower(district) -> sorted canonical city names
	pincodes  []string            // sorted unique pincodes
	byPincode map[string][]Record // pincode -> records, city asc / locality asc
}

// New creates an Index over the given record source. No I/O happens here;
// call Init to load the dataset.
func New(src Source, opts ...Option) *Index {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.FuzzyDistance > maxFuzzyDistance {
		cfg.FuzzyDistance = maxFuzzyDistance
	}
	return &Index{src: src, cfg: cfg}
}

// Singleton pattern for a shared default Index.
var (
	defaultIndex     *Index
	defaultIndexOnce sync.Once
)

// Default returns a shared Index over src, creating and initializing it on
// the first call. Later calls ignore their arguments and return the same
// instance, so every form in the process queries one copy of the dataset.
func Default(ctx context.Context, src Source, opts ...Option) (*Index, error) {
	defaultIndexOnce.Do(func() {
		defaultIndex = New(src, opts...)
	})
	if err := defaultIndex.Init(ctx); err != nil {
		return nil, err
	}
	return defaultIndex, nil
}

// Init loads the dataset and builds the lookup indices. It is idempotent: a
// second call on a loaded Index is a no-op returning nil. A failed call
// leaves the Index unloaded and may be retried. Fails with *DatasetLoadError
// when the source is unreachable or yields no usable records.
func (ix *Index) Init(ctx context.Context) error {
	ix.initMu.Lock()
	defer ix.initMu.Unlock()
	if ix.ready {
		return nil
	}
	if ix.src == nil {
		return &DatasetLoadError{Err: errors.New("no record source configured")}
	}

	recs, err := ix.src.Records(ctx)
	if err != nil {
		return &DatasetLoadError{Source: sourceName(ix.src), Err: err}
	}

	if err := ix.build(recs); err != nil {
		return &DatasetLoadError{Source: sourceName(ix.src), Err: err}
	}
	ix.ready = true
	return nil
}

// Ready reports whether a successful Init has completed. Callers keep the
// engine out of their forms until this is true; queries before then return
// empty results rather than failing.
func (ix *Index) Ready() bool {
	ix.initMu.Lock()
	defer ix.initMu.Unlock()
	return ix.ready
}

// build constructs all three indices in a single pass over the records.
// Sorting happens once at the end, not per insert.
func (ix *Index) build(recs []Record) error {
	// lower-cased key -> canonical (first seen) display casing
	stateNames := make(map[string]string)
	districtNames := make(map[string]map[string]string) // lower state -> lower district -> canonical
	cityNames := make(map[string]map[string]string)     // pair key -> lower city -> canonical

	byPincode := make(map[string][]Record)

	loaded := 0
	for _, r := range recs {
		if !r.valid() {
			continue
		}
		loaded++

		stLower := toLower(r.State)
		dLower := toLower(r.District)
		if _, ok := stateNames[stLower]; !ok {
			stateNames[stLower] = r.State
		}
		if districtNames[stLower] == nil {
			districtNames[stLower] = make(map[string]string)
		}
		if _, ok := districtNames[stLower][dLower]; !ok {
			districtNames[stLower][dLower] = r.District
		}
		pk := pairKey(r.State, r.District)
		if cityNames[pk] == nil {
			cityNames[pk] = make(map[string]string)
		}
		if _, ok := cityNames[pk][toLower(r.City)]; !ok {
			cityNames[pk][toLower(r.City)] = r.City
		}
		byPincode[r.Pincode] = append(byPincode[r.Pincode], r)
	}

	if loaded == 0 {
		return errors.New("dataset contains no usable records")
	}

	ix.states = sortedValues(stateNames)
	ix.districts = make(map[string][]string, len(districtNames))
	for st, names := range districtNames {
		ix.districts[st] = sortedValues(names)
	}
	ix.cities = make(map[string][]string, len(cityNames))
	for pk, names := range cityNames {
		ix.cities[pk] = sortedValues(names)
	}

	ix.byPincode = byPincode
	ix.pincodes = make([]string, 0, len(byPincode))
	for code, group := range byPincode {
		ix.pincodes = append(ix.pincodes, code)
		// Deterministic order inside a shared code so "best single
		// suggestion" selection is stable: city asc, then locality asc.
		sort.SliceStable(group, func(i, j int) bool {
			if c := compareCaseInsensitive(group[i].City, group[j].City); c != 0 {
				return c < 0
			}
			return compareCaseInsensitive(group[i].Locality, group[j].Locality) < 0
		})
	}
	sort.Strings(ix.pincodes)
	return nil
}

// States returns all state names, lexicographically sorted. Empty before a
// successful Init.
func (ix *Index) States() []string {
	if !ix.Ready() {
		return nil
	}
	out := make([]string, len(ix.states))
	copy(out, ix.states)
	return out
}

// pairKey builds the (state, district) lookup key. The dataset is
// tab-separated at the source, so a tab can never appear inside a name.
func pairKey(state, district string) string {
	return toLower(state) + "\t" + toLower(district)
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return compareCaseInsensitive(out[i], out[j]) < 0
	})
	return out
}

// compareCaseInsensitive compares two strings case-insensitively.
// Returns negative if a < b, positive if a > b, zero if equal.
// strings.ToLower keeps the comparison correct for non-ASCII place names.
func compareCaseInsensitive(a, b string) int {
	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)
	if aLower < bLower {
		return -1
	}
	if aLower > bLower {
		return 1
	}
	return 0
}

func toLower(s string) string {
	return strings.ToLower(s)
}
