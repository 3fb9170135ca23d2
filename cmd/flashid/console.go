package main

import (
	"io"
	"os"

	"github.com/tarm/serial"
	"go.uber.org/zap"
)

const consoleBaud = 115200

// openConsole opens the board's stdio port. It falls back to stdout.
func openConsole(dev string, log *zap.Logger) (io.Writer, func()) {
	if dev == "" {
		return os.Stdout, func() {}
	}
	p, err := serial.OpenPort(&serial.Config{Name: dev, Baud: consoleBaud})
	if err != nil {
		log.Warn("console unavailable, using stdout", zap.String("port", dev), zap.Error(err))
		return os.Stdout, func() {}
	}
	return p, func() {
		if err := p.Close(); err != nil {
			log.Warn("console close", zap.Error(err))
		}
	}
}
