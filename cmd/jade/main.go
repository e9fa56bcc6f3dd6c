package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/jade/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	capacity := flag.Int("capacity", 0, "number of log messages to keep (optional, defaults to 32)")
	tickMillis := flag.Int("tick", 0, "heartbeat interval in milliseconds (optional, defaults to 500)")
	logsOnly := flag.Bool("logs-only", false, "show only the log panel")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		LogsOnly:   *logsOnly,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "capacity" {
			opts.Capacity = capacity
		}
	})
	if tick := *tickMillis; tick > 0 {
		opts.TickMillis = tick
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "jade: %v\n", err)
		return 1
	}
	return 0
}
