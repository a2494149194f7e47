package params

import "testing"

func TestLookupByIDRoundTrip(t *testing.T) {
	for _, want := range All() {
		got, ok := LookupByID(want.ID)
		if !ok {
			t.Fatalf("LookupByID(%v): not found", want.ID)
		}
		if got != want {
			t.Fatalf("LookupByID(%v) = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestLookupByOIDAndDERID(t *testing.T) {
	for _, want := range All() {
		byOID, ok := LookupByOID(want.OID)
		if !ok || byOID.ID != want.ID {
			t.Fatalf("LookupByOID(%v) = %+v, ok=%v, want id %v", want.OID, byOID, ok, want.ID)
		}
		byDER, ok := LookupByDERID(want.DERID)
		if !ok || byDER.ID != want.ID {
			t.Fatalf("LookupByDERID(0x%02x) = %+v, ok=%v, want id %v", want.DERID, byDER, ok, want.ID)
		}
	}
}

func TestDFCountsNonProductForm(t *testing.T) {
	rec, ok := LookupByID(NTRU_EES401EP1)
	if !ok {
		t.Fatal("missing catalog entry")
	}
	d1, d2, d3 := rec.DFCounts()
	if d1 != rec.DF1 || d2 != 0 || d3 != 0 {
		t.Fatalf("DFCounts() = (%d, %d, %d), want (%d, 0, 0)", d1, d2, d3, rec.DF1)
	}
}

func TestDFCountsProductForm(t *testing.T) {
	rec, ok := LookupByID(NTRU_EES401EP2)
	if !ok {
		t.Fatal("missing catalog entry")
	}
	d1, d2, d3 := rec.DFCounts()
	if d1 != rec.DF1 || d2 != rec.DF2 || d3 != rec.DF3 {
		t.Fatalf("DFCounts() = (%d, %d, %d), want (%d, %d, %d)", d1, d2, d3, rec.DF1, rec.DF2, rec.DF3)
	}
}

func TestChecksumIsDeterministic(t *testing.T) {
	if Checksum() != Checksum() {
		t.Fatal("Checksum is not deterministic across calls")
	}
}

func TestStringFallsBackForUnknownID(t *testing.T) {
	if got := ID(9999).String(); got != "params.ID(9999)" {
		t.Fatalf("String() = %q, want params.ID(9999)", got)
	}
}

func TestAllReturnsACopy(t *testing.T) {
	got := All()
	got[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Fatal("All() returned a slice sharing storage with the catalog")
	}
}
