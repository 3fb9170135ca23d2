package flashid

import "testing"

func TestLookupVendor(t *testing.T) {
	known := map[byte]bool{}
	for _, v := range Vendors {
		known[v.ID] = true
		if got := LookupVendor(Vendors, v.ID); got != v.Name {
			t.Errorf("LookupVendor(%#02x) = %q, want %q", v.ID, got, v.Name)
		}
	}
	for c := 0; c < 256; c++ {
		if known[byte(c)] {
			continue
		}
		if got := LookupVendor(Vendors, byte(c)); got != UnknownVendor {
			t.Errorf("LookupVendor(%#02x) = %q, want %q", c, got, UnknownVendor)
		}
	}
}

func TestLookupVendorFirstMatchWins(t *testing.T) {
	table := []Vendor{{0xEF, "Winbond"}, {0xC8, "GigaDevice"}, {0xEF, "Other"}}
	if got := LookupVendor(table, 0xEF); got != "Winbond" {
		t.Errorf("LookupVendor = %q, want the earliest entry", got)
	}
	if got := LookupVendor(nil, 0xEF); got != UnknownVendor {
		t.Errorf("LookupVendor on empty table = %q", got)
	}
}
