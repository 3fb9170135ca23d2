//go:build !logicrom && !spark

package main

import (
	"errors"
	"fmt"

	"github.com/gentam/flashid"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/ftdi"
)

// ftdiBoard is an FT2232H adapter wired to the flash over MPSSE.
//
// [EB82|Appendix A. Sheet 2 of 5 (USB to SPI/RS232)] / [icebreaker-sch.pdf]
// ADBUS0 | SCK
// ADBUS1 | FLASH_MOSI
// ADBUS2 | FLASH_MISO
// ADBUS4 | FLASH_SS_B (GPIO chip-select)
type ftdiBoard struct {
	ft  *ftdi.FT232H
	log *zap.Logger
}

func newTarget(log *zap.Logger) target {
	b := &ftdiBoard{log: log}
	// [FTDI AN_114|1.2] > FTDI device can only support mode 0 and mode 2 due to the limitation of MPSSE engine
	// ADBUS3 stays idle; CS is driven on ADBUS4.
	return target{
		name: "ft2232h",
		bus:  gpioCSBus("FT2232H"),
		open: b.openSPI,
		cs:   flashid.GPIOChipSelect{Name: "D4", Lookup: b.pin},
	}
}

func (b *ftdiBoard) findFT2232H() error {
	const (
		vendorID  = 0x0403 // FTDI
		productID = 0x6010 // FT2232H
	)

	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != vendorID || info.DevID != productID {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			b.ft = ft
			b.describe(info)
			return nil
		}
	}

	return errors.New("FT2232H device not found")
}

func (b *ftdiBoard) openSPI(string) (spi.PortCloser, error) {
	if b.ft == nil {
		if err := b.findFT2232H(); err != nil {
			return nil, err
		}
	}
	port, err := b.ft.SPI()
	if err != nil {
		return nil, fmt.Errorf("failed to get SPI port: %w", err)
	}
	return port, nil
}

// pin resolves an ADBUS line by name. It returns nil before the adapter is
// found.
func (b *ftdiBoard) pin(name string) gpio.PinIO {
	if b.ft == nil {
		return nil
	}
	switch name {
	case "D4":
		return b.ft.D4
	case "D5":
		return b.ft.D5
	case "D6":
		return b.ft.D6
	case "D7":
		return b.ft.D7
	}
	return nil
}

// describe logs the adapter identity.
// Reference: https://github.com/periph/cmd/tree/main/ftdi-list
func (b *ftdiBoard) describe(info ftdi.Info) {
	fields := []zap.Field{
		zap.String("type", info.Type),
		zap.Uint16("vendor", info.VenID),
		zap.Uint16("device", info.DevID),
	}
	ee := ftdi.EEPROM{}
	if err := b.ft.EEPROM(&ee); err == nil {
		fields = append(fields,
			zap.String("manufacturer", ee.Manufacturer),
			zap.String("desc", ee.Desc),
			zap.String("serial", ee.Serial))
	}
	b.log.Debug("ftdi adapter", fields...)
}
