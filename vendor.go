package flashid

// UnknownVendor is reported for manufacturer codes missing from the table.
const UnknownVendor = "Unknown"

// Vendor maps a JEDEC manufacturer code to a name.
type Vendor struct {
	ID   byte
	Name string
}

// Vendors is the manufacturer table used by default.
var Vendors = []Vendor{
	{0x1F, "Atmel"}, {0xC8, "GigaDevice"}, {0x2C, "Micron"},
	{0xBF, "SST"}, {0xC2, "Macronix"}, {0xEF, "Winbond"},
	{0xDA, "Winbond"}, {0x20, "XMC"},
}

// LookupVendor returns the name of the first entry matching id, or
// UnknownVendor.
func LookupVendor(table []Vendor, id byte) string {
	for _, v := range table {
		if v.ID == id {
			return v.Name
		}
	}
	return UnknownVendor
}
