package gazetteer

import (
	"testing"
)

// Properties that must hold for any dataset: every value a forward query
// returns traces back to at least one source record, reverse resolution
// round-trips through the coordinator, and no coordinator sequence can leave
// an inconsistent selection observable.
func TestProperties(t *testing.T) {
	ix := newTestIndex(t)
	src := testRecords()

	t.Run("DistrictsDeriveFromSource", func(t *testing.T) {
		for _, state := range ix.States() {
			for _, district := range ix.Districts(state) {
				found := false
				for _, r := range src {
					if r.State == state && r.District == district {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("district %q of %q has no source record", district, state)
				}
			}
		}
	})

	t.Run("CitiesDeriveFromSource", func(t *testing.T) {
		for _, state := range ix.States() {
			for _, district := range ix.Districts(state) {
				for _, city := range ix.Cities(state, district) {
					found := false
					for _, r := range src {
						if r.State == state && r.District == district && r.City == city {
							found = true
							break
						}
					}
					if !found {
						t.Errorf("city %q of (%q, %q) has no source record", city, state, district)
					}
				}
			}
		}
	})

	t.Run("SearchThenSetFromPincodeRoundTrips", func(t *testing.T) {
		for _, r := range src {
			recs, err := ix.Search(r.Pincode)
			if err != nil {
				t.Fatalf("Search(%q): %v", r.Pincode, err)
			}
			for _, got := range recs {
				co := NewCoordinator(ix)
				co.SetFromPincode(got)
				sel := co.Selection()
				if sel.State != got.State || sel.District != got.District || sel.City != got.City || sel.Pincode != got.Pincode {
					t.Errorf("round-trip mismatch for %q: selection %+v, record %+v", r.Pincode, sel, got)
				}
			}
		}
	})

	t.Run("SelectionStaysConsistent", func(t *testing.T) {
		// Walk a handful of realistic edit sequences; after every successful
		// call the selection's children must stay reachable from their parents.
		type step struct {
			field string
			value string
		}
		sequences := [][]step{
			{{"state", "Karnataka"}, {"district", "Bengaluru Urban"}, {"city", "Bengaluru"}},
			{{"state", "Karnataka"}, {"district", "Mysuru"}, {"state", "Maharashtra"}, {"district", "Pune"}},
			{{"state", "Maharashtra"}, {"district", "Aurangabad"}, {"city", "Aurangabad"}, {"district", "Pune"}},
			{{"state", "Bihar"}, {"district", "Aurangabad"}, {"city", "Rafiganj"}, {"state", "Delhi"}},
		}

		for _, seq := range sequences {
			co := NewCoordinator(ix)
			for _, st := range seq {
				switch st.field {
				case "state":
					co.SetState(st.value)
				case "district":
					if err := co.SetDistrict(st.value); err != nil {
						t.Fatalf("SetDistrict(%q): %v", st.value, err)
					}
				case "city":
					if err := co.SetCity(st.value); err != nil {
						t.Fatalf("SetCity(%q): %v", st.value, err)
					}
				}
				assertConsistent(t, ix, co.Selection())
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		ix2 := newTestIndex(t)
		for _, q := range []string{"5", "56", "5600", "560001", "411001"} {
			a, err := ix.Search(q)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ix2.Search(q)
			if err != nil {
				t.Fatal(err)
			}
			if len(a) != len(b) {
				t.Fatalf("Search(%q): %d vs %d results across identical indices", q, len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Errorf("Search(%q)[%d]: %+v vs %+v", q, i, a[i], b[i])
				}
			}
		}
	})
}

func assertConsistent(t *testing.T, ix *Index, sel Selection) {
	t.Helper()
	if sel.District != "" {
		if _, ok := matchName(ix.Districts(sel.State), sel.District); !ok {
			t.Errorf("inconsistent selection: district %q not in Districts(%q)", sel.District, sel.State)
		}
	}
	if sel.City != "" {
		if _, ok := matchName(ix.Cities(sel.State, sel.District), sel.City); !ok {
			t.Errorf("inconsistent selection: city %q not in Cities(%q, %q)", sel.City, sel.State, sel.District)
		}
	}
}
