//go:build spark && nativecs

package main

import (
	"github.com/gentam/flashid"
	"go.uber.org/zap"
)

// The controller's CS line is not a GPIO but can be held across transfers.
func newTarget(*zap.Logger) target {
	return target{
		name:    "spark-nativecs",
		console: "/dev/ttyS0",
		bus:     flashid.DefaultBusConfig("SPI1.0"),
		cs:      flashid.NativeChipSelect{},
	}
}
