package main

import "github.com/gentam/flashid"

// target is the board wiring chosen by build tags.
type target struct {
	name    string
	console string // stdio serial device; empty for stdout
	bus     flashid.BusConfig
	open    flashid.PortOpener // nil for spireg
	cs      flashid.ChipSelectConfig
}

// gpioCSBus keeps the controller off its own CS line while a GPIO drives it.
func gpioCSBus(port string) flashid.BusConfig {
	cfg := flashid.DefaultBusConfig(port)
	cfg.NoCS = true
	return cfg
}
