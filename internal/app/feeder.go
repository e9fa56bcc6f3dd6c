package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/jade/internal/logs"
)

const (
	defaultFeedInterval = 500 * time.Millisecond
	heartbeatCycle      = 10
)

// StartFeeder launches a background goroutine that sends a heartbeat message
// to out at a fixed cadence. It returns immediately. The goroutine closes out
// once ctx is done, so the receiver can tell the feed has stopped.
func StartFeeder(ctx context.Context, interval time.Duration, out chan<- logs.Message) {
	if interval <= 0 {
		interval = defaultFeedInterval
	}
	go func() {
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for cnt := 0; ; cnt = (cnt + 1) % heartbeatCycle {
			select {
			case <-ctx.Done():
				return
			case out <- heartbeat(cnt):
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func heartbeat(cnt int) logs.Message {
	return logs.NewMessage(logs.Info, fmt.Sprintf("Heartbeat, %d", cnt))
}
