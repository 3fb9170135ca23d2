package flashid

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// recorder is a shared event log so the order of bus and chip-select
// activity can be compared in one place.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, a ...any) {
	r.events = append(r.events, fmt.Sprintf(format, a...))
}

// fakeConn answers Read JEDEC ID with id on the transfer following the
// opcode.
type fakeConn struct {
	rec   *recorder
	id    []byte
	last  byte
	txErr map[byte]error // fail the exchange starting with this byte
}

func (c *fakeConn) String() string      { return "fake" }
func (c *fakeConn) Duplex() conn.Duplex { return conn.Full }

func (c *fakeConn) exchange(w, r []byte) {
	if c.last == flashCmdReadID && r != nil {
		copy(r, c.id)
	}
	if len(w) > 0 {
		c.last = w[0]
	}
}

func (c *fakeConn) Tx(w, r []byte) error {
	c.rec.add("tx %X", w)
	if len(w) > 0 {
		if err := c.txErr[w[0]]; err != nil {
			return err
		}
	}
	c.exchange(w, r)
	return nil
}

func (c *fakeConn) TxPackets(pkts []spi.Packet) error {
	for _, p := range pkts {
		c.rec.add("pkt %X keep=%t", p.W, p.KeepCS)
		if len(p.W) > 0 {
			if err := c.txErr[p.W[0]]; err != nil {
				return err
			}
		}
		c.exchange(p.W, p.R)
	}
	return nil
}

type fakePort struct {
	rec  *recorder
	conn *fakeConn

	connectErr error
	freq       physic.Frequency
	mode       spi.Mode
	bits       int
	closed     int
}

func (p *fakePort) String() string                      { return "fakeport" }
func (p *fakePort) LimitSpeed(f physic.Frequency) error { return nil }

func (p *fakePort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.rec.add("connect")
	if p.connectErr != nil {
		return nil, p.connectErr
	}
	p.freq, p.mode, p.bits = f, mode, bits
	return p.conn, nil
}

func (p *fakePort) Close() error {
	p.rec.add("close")
	p.closed++
	return nil
}

var errNoPort = errors.New("no such port")

// fakeBus returns a Bus backed by a fake port that reports id on Read JEDEC
// ID.
func fakeBus(rec *recorder, cfg BusConfig, id []byte) (*Bus, *fakePort) {
	port := &fakePort{rec: rec, conn: &fakeConn{rec: rec, id: id}}
	open := func(name string) (spi.PortCloser, error) {
		rec.add("open %s", name)
		return port, nil
	}
	return NewBus(open, cfg), port
}

// recPin is a gpiotest pin that logs its output level. A non-nil outErr
// fails every Out.
type recPin struct {
	*gpiotest.Pin
	rec    *recorder
	outErr error
}

func (p *recPin) Out(l gpio.Level) error {
	p.rec.add("cs %s", l)
	if p.outErr != nil {
		return p.outErr
	}
	return p.Pin.Out(l)
}

func (p *recPin) Halt() error {
	p.rec.add("cs halt")
	return p.Pin.Halt()
}

func gpioCS(rec *recorder, name string, num int) GPIOChipSelect {
	pin := &recPin{Pin: &gpiotest.Pin{N: name, Num: num}, rec: rec}
	return GPIOChipSelect{
		Name: name,
		Lookup: func(n string) gpio.PinIO {
			if n != name {
				return nil
			}
			return pin
		},
	}
}
