package flashid

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var ErrNoSuchLine = errors.New("no such gpio line")

// ChipSelect is exclusive ownership of the flash chip-select line.
type ChipSelect interface {
	Assert() error
	Deassert() error
	Release() error
}

// ChipSelectConfig is the board's chip-select strategy, fixed when the
// target is built.
type ChipSelectConfig interface {
	Acquire(b *Bus) (ChipSelect, error)
}

// RequestReporter is implemented by strategies that print the outcome of
// their line request. cs is nil when Acquire failed.
type RequestReporter interface {
	ReportRequest(out io.Writer, cs ChipSelect)
}

// ChipSelectError reports a chip-select line that could not be acquired.
type ChipSelectError struct {
	Line string
	Err  error
}

func (e *ChipSelectError) Error() string {
	return fmt.Sprintf("chip-select %s: %v", e.Line, e.Err)
}

func (e *ChipSelectError) Unwrap() error { return e.Err }

// GPIOChipSelect drives CS from a general purpose output line.
type GPIOChipSelect struct {
	Name       string
	ActiveHigh bool
	Lookup     func(name string) gpio.PinIO // defaults to gpioreg.ByName
}

func (c GPIOChipSelect) Acquire(*Bus) (ChipSelect, error) {
	lookup := c.Lookup
	if lookup == nil {
		lookup = gpioreg.ByName
	}
	pin := lookup(c.Name)
	if pin == nil || pin == gpio.INVALID {
		return nil, &ChipSelectError{Line: c.Name, Err: ErrNoSuchLine}
	}

	cs := &GPIOLine{pin: pin, active: gpio.Low}
	if c.ActiveHigh {
		cs.active = gpio.High
	}
	// output, deasserted by default
	if err := pin.Out(!cs.active); err != nil {
		pin.Halt()
		return nil, &ChipSelectError{Line: c.Name, Err: err}
	}
	return cs, nil
}

// ReportRequest prints "GPIO request: <hex handle>", with 0 for a failed
// request.
func (c GPIOChipSelect) ReportRequest(out io.Writer, cs ChipSelect) {
	handle := 0
	if l, ok := cs.(*GPIOLine); ok {
		handle = l.Handle()
	}
	fmt.Fprintf(out, "GPIO request: %x\n", handle)
}

// GPIOLine is an acquired GPIO chip-select.
type GPIOLine struct {
	pin      gpio.PinIO
	active   gpio.Level
	released bool
}

// Handle identifies the requested line. It is never 0, so line 0 does not
// read as a failed request. Lines without a number report -1.
func (l *GPIOLine) Handle() int {
	n := l.pin.Number()
	if n < 0 {
		return -1
	}
	return n + 1
}

func (l *GPIOLine) Assert() error   { return l.pin.Out(l.active) }
func (l *GPIOLine) Deassert() error { return l.pin.Out(!l.active) }

// Release leaves the line deasserted and frees it.
func (l *GPIOLine) Release() error {
	if l.released {
		return nil
	}
	l.released = true
	if err := l.pin.Out(!l.active); err != nil {
		return err
	}
	return l.pin.Halt()
}

func (l *GPIOLine) String() string { return l.pin.String() }

// NativeChipSelect uses the SPI controller's own chip-select control.
type NativeChipSelect struct{}

func (NativeChipSelect) Acquire(b *Bus) (ChipSelect, error) {
	if b == nil {
		return nil, &ChipSelectError{Line: "native", Err: ErrBusNotInitialized}
	}
	return nativeCS{b}, nil
}

type nativeCS struct{ b *Bus }

func (c nativeCS) Assert() error   { return c.b.SetCS(true) }
func (c nativeCS) Deassert() error { return c.b.SetCS(false) }
func (nativeCS) Release() error    { return nil }
