package flashid

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Bus init failure codes, as printed on the "SPI Init" line.
const (
	BusErrUnavailable = -1 // port missing or could not be opened
	BusErrParams      = -2 // electrical parameters rejected
	BusErrOwned       = -3 // port already owned by this Bus
)

var ErrBusNotInitialized = errors.New("spi bus not initialized")

// BusInitError reports why a Bus could not be brought up.
type BusInitError struct {
	Port string
	Code int
	Err  error
}

func (e *BusInitError) Error() string {
	return fmt.Sprintf("spi init %s (%d): %v", e.Port, e.Code, e.Err)
}

func (e *BusInitError) Unwrap() error { return e.Err }

// PortOpener opens an SPI port by registry name.
type PortOpener func(name string) (spi.PortCloser, error)

// BusConfig holds the electrical parameters applied by Init.
type BusConfig struct {
	Port         string
	HalfDuplex   bool
	Clock        physic.Frequency
	Mode         spi.Mode
	CSActiveHigh bool
	NoCS         bool // chip-select is driven outside the controller
}

// DefaultBusConfig is full duplex, 10kHz, mode 0 with an active-low CS.
func DefaultBusConfig(port string) BusConfig {
	return BusConfig{
		Port:  port,
		Clock: 10 * physic.KiloHertz,
		Mode:  spi.Mode0,
	}
}

// Bus owns one SPI port for the duration of an identification run.
type Bus struct {
	cfg  BusConfig
	open PortOpener

	port spi.PortCloser
	conn spi.Conn

	// native CS state; frames are clocked as one TxPackets when CS drops
	held    bool
	pending []frame
}

type frame struct {
	pkt spi.Packet
	dst []byte
}

// NewBus returns an uninitialized Bus. A nil opener means spireg.Open.
func NewBus(open PortOpener, cfg BusConfig) *Bus {
	if open == nil {
		open = spireg.Open
	}
	return &Bus{cfg: cfg, open: open}
}

func (b *Bus) Config() BusConfig { return b.cfg }

// Init opens and configures the port.
func (b *Bus) Init() error {
	if b.port != nil {
		return &BusInitError{Port: b.cfg.Port, Code: BusErrOwned, Err: errors.New("already owned")}
	}
	if b.cfg.CSActiveHigh && !b.cfg.NoCS {
		// periph controllers only drive an active-low native CS
		return &BusInitError{Port: b.cfg.Port, Code: BusErrParams, Err: errors.New("active-high native chip-select not supported")}
	}

	port, err := b.open(b.cfg.Port)
	if err != nil {
		return &BusInitError{Port: b.cfg.Port, Code: BusErrUnavailable, Err: err}
	}

	mode := b.cfg.Mode
	if b.cfg.HalfDuplex {
		mode |= spi.HalfDuplex
	}
	if b.cfg.NoCS {
		mode |= spi.NoCS
	}
	conn, err := port.Connect(b.cfg.Clock, mode, 8)
	if err != nil {
		port.Close()
		return &BusInitError{Port: b.cfg.Port, Code: BusErrParams, Err: err}
	}

	b.port = port
	b.conn = conn
	return nil
}

// Transfer clocks exactly n bytes. w is sent (zero padded) when non-nil and
// received bytes are copied into r when non-nil.
//
// While the native chip-select is held the frame is queued and r is filled in
// once SetCS(false) returns.
func (b *Bus) Transfer(w, r []byte, n int) error {
	if b.conn == nil {
		return ErrBusNotInitialized
	}
	if n <= 0 {
		return nil
	}

	tx := make([]byte, n)
	copy(tx, w)
	rx := make([]byte, n)

	if b.held {
		b.pending = append(b.pending, frame{
			pkt: spi.Packet{W: tx, R: rx, KeepCS: true},
			dst: r,
		})
		return nil
	}

	if err := b.conn.Tx(tx, rx); err != nil {
		return err
	}
	copy(r, rx)
	return nil
}

// SetCS drives the controller's own chip-select line.
func (b *Bus) SetCS(asserted bool) error {
	if b.conn == nil {
		return ErrBusNotInitialized
	}
	if asserted {
		b.held = true
		b.pending = b.pending[:0]
		return nil
	}
	if !b.held {
		return nil
	}
	return b.flush()
}

func (b *Bus) flush() error {
	frames := b.pending
	b.held = false
	b.pending = nil
	if len(frames) == 0 {
		return nil
	}

	pkts := make([]spi.Packet, len(frames))
	for i, f := range frames {
		pkts[i] = f.pkt
	}
	pkts[len(pkts)-1].KeepCS = false

	if err := b.conn.TxPackets(pkts); err != nil {
		return err
	}
	for _, f := range frames {
		copy(f.dst, f.pkt.R)
	}
	return nil
}

// Release closes the port. It is safe to call on a Bus that was never
// initialized, failed to initialize, or was already released.
func (b *Bus) Release() error {
	b.held = false
	b.pending = nil
	b.conn = nil
	if b.port == nil {
		return nil
	}
	port := b.port
	b.port = nil
	return port.Close()
}

func (b *Bus) String() string {
	return fmt.Sprintf("%s@%s", b.cfg.Port, b.cfg.Clock)
}
