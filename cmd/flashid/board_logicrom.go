//go:build logicrom && !spark

package main

import (
	"github.com/gentam/flashid"
	"go.uber.org/zap"
)

func newTarget(*zap.Logger) target {
	return target{
		name:    "logicrom",
		console: "/dev/ttyS0",
		bus:     gpioCSBus("SPI0.0"),
		cs:      flashid.GPIOChipSelect{Name: "GPIO0"},
	}
}
