package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/five82/jade/internal/logs"
)

func receive(t *testing.T, feed <-chan logs.Message) (logs.Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-feed:
		return msg, ok
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the feed")
		return logs.Message{}, false
	}
}

func TestStartFeeder_HeartbeatCycles(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := make(chan logs.Message)
	StartFeeder(ctx, time.Millisecond, feed)

	for i := range 2*heartbeatCycle + 3 {
		msg, ok := receive(t, feed)
		if !ok {
			t.Fatalf("feed closed after %d messages", i)
		}
		want := fmt.Sprintf("Heartbeat, %d", i%heartbeatCycle)
		if msg.Level() != logs.Info || msg.Text() != want {
			t.Fatalf("message %d = %v %q, want Info %q", i, msg.Level(), msg.Text(), want)
		}
	}
}

func TestStartFeeder_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	feed := make(chan logs.Message)
	StartFeeder(ctx, time.Hour, feed)

	if _, ok := receive(t, feed); !ok {
		t.Fatalf("first heartbeat should arrive before the first tick")
	}
	cancel()

	for {
		if _, ok := receive(t, feed); !ok {
			return
		}
	}
}

func TestStartFeeder_DefaultInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := make(chan logs.Message, 1)
	StartFeeder(ctx, 0, feed)

	first, ok := receive(t, feed)
	if !ok || first.Text() != "Heartbeat, 0" {
		t.Fatalf("got %q (open=%v), want first heartbeat", first.Text(), ok)
	}
	start := time.Now()

	second, ok := receive(t, feed)
	if !ok || second.Text() != "Heartbeat, 1" {
		t.Fatalf("got %q (open=%v), want second heartbeat", second.Text(), ok)
	}
	if elapsed := time.Since(start); elapsed < defaultFeedInterval/2 {
		t.Fatalf("second heartbeat after %v, want about %v", elapsed, defaultFeedInterval)
	}
}

func TestHeartbeat(t *testing.T) {
	msg := heartbeat(7)
	line := logs.Line{Level: msg.Level(), Text: msg.Text()}
	if got := line.String(); got != "[Info]: Heartbeat, 7" {
		t.Fatalf("heartbeat(7) = %q", got)
	}
}
