package flashid

import "fmt"

// JEDECID is the response to the Read JEDEC ID command: manufacturer code,
// memory type and capacity code. The extended device string is not read.
type JEDECID [3]byte

func (id JEDECID) Manufacturer() byte { return id[0] }
func (id JEDECID) MemoryType() byte   { return id[1] }
func (id JEDECID) CapacityCode() byte { return id[2] }

// Size decodes the capacity code as 2^code bytes. It returns 0 for codes
// outside 0x10 (64KB) .. 0x20 (4GB).
func (id JEDECID) Size() int64 {
	c := id.CapacityCode()
	if c < 0x10 || c > 0x20 {
		return 0
	}
	return 1 << c
}

func (id JEDECID) String() string {
	return fmt.Sprintf("%02X%02X%02X", id[0], id[1], id[2])
}

// Report is the outcome of a successful identification.
type Report struct {
	ID     JEDECID
	Vendor string
}

func (r Report) String() string {
	return fmt.Sprintf("%s[%s]", r.Vendor, r.ID)
}
