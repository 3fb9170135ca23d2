package flashid

// Flash commands:
//   - [W25Q128|8.1.2 Instruction Set Table 1]
//   - [GD25Q128|Commands Table]
const (
	flashCmdEnableReset = 0x66
	flashCmdResetDevice = 0x99
	flashCmdReadID      = 0x9F
)

// xfer is one transfer clocked while chip-select is held.
type xfer struct {
	w, r []byte
	n    int
}

// tx wraps transfers with CS assertion. CS stays asserted across all of
// them and is deasserted even if a transfer fails.
func tx(bus *Bus, cs ChipSelect, xs ...xfer) (err error) {
	if err = cs.Assert(); err != nil {
		return err
	}
	defer func() {
		if csErr := cs.Deassert(); csErr != nil && err == nil {
			err = csErr
		}
	}()
	for _, x := range xs {
		if err = bus.Transfer(x.w, x.r, x.n); err != nil {
			return err
		}
	}
	return nil
}

func enableReset(bus *Bus, cs ChipSelect, buf *[4]byte) error {
	buf[0] = flashCmdEnableReset
	return tx(bus, cs, xfer{w: buf[:1], n: 1})
}

func resetDevice(bus *Bus, cs ChipSelect, buf *[4]byte) error {
	buf[0] = flashCmdResetDevice
	return tx(bus, cs, xfer{w: buf[:1], n: 1})
}

// readID sends the opcode and reads the 3 ID bytes back into buf[0:3]. The
// device drops the command if CS goes high between the two.
func readID(bus *Bus, cs ChipSelect, buf *[4]byte) (JEDECID, error) {
	buf[0] = flashCmdReadID
	if err := tx(bus, cs,
		xfer{w: buf[:1], n: 1},
		xfer{r: buf[:3], n: 3},
	); err != nil {
		return JEDECID{}, err
	}
	return JEDECID(buf[:3]), nil
}
