package gazetteer

import (
	"context"
	"testing"
)

// testRecords is a small but representative dataset: a pincode shared by two
// localities (411001), the same district name in two states (Aurangabad), and
// several districts per state.
func testRecords() []Record {
	return []Record{
		{State: "Karnataka", District: "Bengaluru Urban", City: "Bengaluru", Pincode: "560001"},
		{State: "Karnataka", District: "Bengaluru Urban", City: "Bengaluru", Pincode: "560100", Locality: "Electronic City"},
		{State: "Karnataka", District: "Bengaluru Urban", City: "Yelahanka", Pincode: "560064"},
		{State: "Karnataka", District: "Mysuru", City: "Mysuru", Pincode: "570001"},
		{State: "Maharashtra", District: "Pune", City: "Pune", Pincode: "411001", Locality: "Shivajinagar"},
		{State: "Maharashtra", District: "Pune", City: "Pune", Pincode: "411001", Locality: "Camp"},
		{State: "Maharashtra", District: "Aurangabad", City: "Aurangabad", Pincode: "431001"},
		{State: "Bihar", District: "Aurangabad", City: "Rafiganj", Pincode: "824125"},
		{State: "Delhi", District: "New Delhi", City: "New Delhi", Pincode: "110001", Locality: "Connaught Place"},
	}
}

func newTestIndex(tb testing.TB, opts ...Option) *Index {
	tb.Helper()
	ix := New(SliceSource(testRecords()), opts...)
	if err := ix.Init(context.Background()); err != nil {
		tb.Fatalf("Init: %v", err)
	}
	return ix
}
