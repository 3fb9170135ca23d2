package flashid

import "time"

// Part describes a flash device known by its full JEDEC ID.
type Part struct {
	Name string

	// tRST: Reset Device to ready
	tRST time.Duration
}

var (
	partMicronN25Q32     = JEDECID{0x20, 0xBA, 0x16}
	partWinbondW25Q128   = JEDECID{0xEF, 0x70, 0x18}
	partWinbondW25Q128JV = JEDECID{0xEF, 0x40, 0x18}
	partGigaDeviceGD25Q  = JEDECID{0xC8, 0x40, 0x18}
	partMacronixMX25L128 = JEDECID{0xC2, 0x20, 0x18}
)

var knownParts = map[JEDECID]Part{
	// [N25Q32|Table 38] reset is not timed separately; use the W25Q figure
	partMicronN25Q32: {Name: "Micron N25Q 32Mb", tRST: 30 * time.Microsecond},
	// [W25Q128|9.6 AC Electrical Characteristics] tRST
	partWinbondW25Q128:   {Name: "Winbond W25Q 128Mb", tRST: 30 * time.Microsecond},
	partWinbondW25Q128JV: {Name: "Winbond W25Q128JV", tRST: 30 * time.Microsecond},
	// [GD25Q128|AC Characteristics] tRST
	partGigaDeviceGD25Q: {Name: "GigaDevice GD25Q128", tRST: 30 * time.Microsecond},
	// [MX25L128|AC Characteristics] tREADY2 from software reset
	partMacronixMX25L128: {Name: "Macronix MX25L128", tRST: 40 * time.Microsecond},
}

// LookupPart returns the known part for id.
func LookupPart(id JEDECID) (Part, bool) {
	p, ok := knownParts[id]
	return p, ok
}

// ResetRecovery is the time the part needs after Reset Device.
func (p Part) ResetRecovery() time.Duration { return p.tRST }

// maxResetRecovery is the longest tRST of all known parts, used when the part
// is not known yet.
func maxResetRecovery() time.Duration {
	var tmax time.Duration
	for _, p := range knownParts {
		tmax = max(tmax, p.tRST)
	}
	return tmax
}
