// Command flashid resets the SPI flash on the board's SPI bus, prints its
// JEDEC ID and vendor, then idles. The board is selected at build time:
//
//	go build ./cmd/flashid                      # FT2232H adapter, GPIO CS on ADBUS4
//	go build -tags logicrom ./cmd/flashid       # SPI0.0, GPIO CS on GPIO0
//	go build -tags spark ./cmd/flashid          # SPI1.0, GPIO CS on GPIO23
//	go build -tags spark,nativecs ./cmd/flashid # SPI1.0, controller CS
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gentam/flashid"
	"github.com/gentam/flashid/urc"
	"go.uber.org/zap"
	"periph.io/x/host/v3"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		log = zap.NewNop()
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := urc.Register(urc.NewLogHandler(log)); err != nil {
		log.Warn("urc handler", zap.Error(err))
	}
	if _, err := host.Init(); err != nil {
		log.Error("host initialization failed", zap.Error(err))
	}

	t := newTarget(log)
	out, closeConsole := openConsole(t.console, log)
	defer closeConsole()

	run(t, out, log)
	idle(ctx, time.Second)
}

// run prints the banner and identifies the flash once. Failures are reported
// on out and the log; they never stop the process.
func run(t target, out io.Writer, log *zap.Logger) {
	fmt.Fprintln(out, "System Ready")

	id := flashid.Identifier{
		Bus: flashid.NewBus(t.open, t.bus),
		CS:  t.cs,
		Out: out,
		Log: log.With(zap.String("target", t.name)),
	}
	if _, err := id.Run(); err != nil {
		log.Info("flash identification aborted", zap.Error(err))
	}
}

func idle(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
