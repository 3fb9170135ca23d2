package flashid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultSettle is the wait after Reset Device before the next command.
const DefaultSettle = 100 * time.Millisecond

// Identifier reads and reports the JEDEC ID of the flash on Bus.
type Identifier struct {
	Bus     *Bus
	CS      ChipSelectConfig
	Vendors []Vendor      // defaults to Vendors
	Settle  time.Duration // defaults to DefaultSettle
	Out     io.Writer     // report lines; defaults to os.Stdout
	Log     *zap.Logger

	sleep func(time.Duration)
}

func (id *Identifier) defaults() {
	if id.Vendors == nil {
		id.Vendors = Vendors
	}
	if id.Settle == 0 {
		id.Settle = DefaultSettle
	}
	// never shorter than any known part needs
	id.Settle = max(id.Settle, maxResetRecovery())
	if id.Out == nil {
		id.Out = os.Stdout
	}
	if id.Log == nil {
		id.Log = zap.NewNop()
	}
	if id.sleep == nil {
		id.sleep = time.Sleep
	}
}

// Run brings up the bus, resets the flash and reads its ID. Bus and
// chip-select are always released before Run returns.
func (id *Identifier) Run() (rep Report, err error) {
	id.defaults()
	log := id.Log.With(zap.Stringer("bus", id.Bus))

	var cs ChipSelect
	defer func() {
		var terr error
		if cs != nil {
			terr = multierr.Append(terr, cs.Release())
		}
		terr = multierr.Append(terr, id.Bus.Release())
		if terr != nil {
			log.Warn("teardown", zap.Error(terr))
		}
	}()

	code := 0
	if err = id.Bus.Init(); err != nil {
		code = BusErrUnavailable
		var ie *BusInitError
		if errors.As(err, &ie) {
			code = ie.Code
		}
	}
	fmt.Fprintf(id.Out, "SPI Init: %d\n", code)
	if err != nil {
		log.Error("spi init failed", zap.Error(err))
		return rep, err
	}

	cs, err = id.CS.Acquire(id.Bus)
	if r, ok := id.CS.(RequestReporter); ok {
		r.ReportRequest(id.Out, cs)
	}
	if err != nil {
		log.Error("chip-select request failed", zap.Error(err))
		return rep, err
	}

	var buf [4]byte
	if err = enableReset(id.Bus, cs, &buf); err != nil {
		return rep, fmt.Errorf("enable reset: %w", err)
	}
	if err = resetDevice(id.Bus, cs, &buf); err != nil {
		return rep, fmt.Errorf("reset device: %w", err)
	}
	id.sleep(id.Settle)

	jid, err := readID(id.Bus, cs, &buf)
	if err != nil {
		return rep, fmt.Errorf("read JEDEC ID: %w", err)
	}
	rep = Report{ID: jid, Vendor: LookupVendor(id.Vendors, jid.Manufacturer())}
	fmt.Fprintf(id.Out, "SPI Flash ID: %s\n", rep)

	fields := []zap.Field{zap.Stringer("id", jid), zap.String("vendor", rep.Vendor)}
	if p, ok := LookupPart(jid); ok {
		fields = append(fields, zap.String("part", p.Name))
	}
	if size := jid.Size(); size > 0 {
		fields = append(fields, zap.Int64("size", size))
	}
	log.Debug("flash identified", fields...)
	return rep, nil
}
