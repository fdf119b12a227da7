package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/config/watcher"
)

type fakeSource struct {
	events chan watcher.Event
	errors chan error
}

func newFakeSource() *fakeSource {
	return &fakeSource{events: make(chan watcher.Event), errors: make(chan error)}
}

func (s *fakeSource) Events() <-chan watcher.Event { return s.events }
func (s *fakeSource) Errors() <-chan error { return s.errors }

func receive(t *testing.T, ch <-chan *config.Config) *config.Config {
	t.Helper()
	select {
	case cfg := <-ch:
		return cfg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a config")
		return nil
	}
}

func TestWatchConfig(t *testing.T) {
	src := newFakeSource()
	loads := 0
	load := func() (*config.Config, error) {
		loads++
		if loads == 1 {
			return nil, errors.New("bad toml")
		}
		cfg := config.Default()
		cfg.Input.FPS = float64(loads)
		return cfg, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := WatchConfig(ctx, src, load, slog.New(slog.DiscardHandler))

	src.events <- watcher.Event{Path: "config.toml", Op: watcher.OpWrite}
	src.events <- watcher.Event{Path: "config.toml", Op: watcher.OpRemove}
	src.errors <- errors.New("inotify overflow")
	src.events <- watcher.Event{Path: "config.toml", Op: watcher.OpWrite}

	if cfg := receive(t, out); cfg.Input.FPS != 2 {
		t.Errorf("FPS = %v, want the second load", cfg.Input.FPS)
	}
	if loads != 2 {
		t.Errorf("loads = %d, want 2", loads)
	}

	close(src.events)
	select {
	case _, ok := <-out:
		if ok {
			t.Error("received a config after the source closed")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after the source closed")
	}
}

func TestWatchConfigKeepsNewest(t *testing.T) {
	src := newFakeSource()
	n := 0
	load := func() (*config.Config, error) {
		n++
		cfg := config.Default()
		cfg.Input.FPS = float64(n)
		return cfg, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := WatchConfig(ctx, src, load, slog.New(slog.DiscardHandler))

	src.events <- watcher.Event{Op: watcher.OpWrite}
	src.events <- watcher.Event{Op: watcher.OpWrite}
	src.events <- watcher.Event{Op: watcher.OpWrite}
	// The unbuffered sends return once the goroutine has taken each event;
	// one more round trip makes sure the last load was delivered.
	src.errors <- errors.New("sync")

	if cfg := receive(t, out); cfg.Input.FPS != 3 {
		t.Errorf("FPS = %v, want 3", cfg.Input.FPS)
	}
}
