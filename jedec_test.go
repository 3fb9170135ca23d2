package flashid

import "testing"

func TestJEDECID(t *testing.T) {
	tests := []struct {
		id   JEDECID
		str  string
		size int64
	}{
		{JEDECID{0xC8, 0x40, 0x18}, "C84018", 16 << 20},
		{JEDECID{0x20, 0xBA, 0x16}, "20BA16", 4 << 20},
		{JEDECID{0x1F, 0x85, 0x01}, "1F8501", 0},
		{JEDECID{0x0A, 0x0B, 0x0C}, "0A0B0C", 0},
		{JEDECID{0xFF, 0xFF, 0xFF}, "FFFFFF", 0},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.str {
			t.Errorf("String = %q, want %q", got, tt.str)
		}
		if got := tt.id.Size(); got != tt.size {
			t.Errorf("%s: Size = %d, want %d", tt.str, got, tt.size)
		}
	}
}

func TestReportString(t *testing.T) {
	r := Report{ID: JEDECID{0x00, 0x00, 0x00}, Vendor: UnknownVendor}
	if got := r.String(); got != "Unknown[000000]" {
		t.Errorf("String = %q", got)
	}
}

func TestLookupPart(t *testing.T) {
	p, ok := LookupPart(JEDECID{0xEF, 0x70, 0x18})
	if !ok || p.Name != "Winbond W25Q 128Mb" {
		t.Errorf("LookupPart = %+v, %v", p, ok)
	}
	if _, ok := LookupPart(JEDECID{}); ok {
		t.Error("LookupPart found an all-zero ID")
	}
	if maxResetRecovery() < p.ResetRecovery() {
		t.Errorf("maxResetRecovery %s below %s", maxResetRecovery(), p.ResetRecovery())
	}
	if maxResetRecovery() > DefaultSettle {
		t.Errorf("settle delay %s shorter than a known part's reset %s", DefaultSettle, maxResetRecovery())
	}
}
