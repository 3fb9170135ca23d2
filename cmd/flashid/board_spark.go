//go:build spark && !nativecs

package main

import (
	"github.com/gentam/flashid"
	"go.uber.org/zap"
)

func newTarget(*zap.Logger) target {
	return target{
		name:    "spark",
		console: "/dev/ttyS0",
		bus:     gpioCSBus("SPI1.0"),
		cs:      flashid.GPIOChipSelect{Name: "GPIO23"},
	}
}
