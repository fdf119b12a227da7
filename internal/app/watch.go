package app

import (
	"context"
	"log/slog"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/config/watcher"
)

// ChangeSource reports changes to the config file.
type ChangeSource interface {
	Events() <-chan watcher.Event
	Errors() <-chan error
}

// WatchConfig reloads the config with load each time src reports a change
// and delivers the result on the returned channel. A config the frame loop
// has not picked up yet is replaced by the newer one. The channel is closed
// when ctx is done or src stops.
func WatchConfig(ctx context.Context, src ChangeSource, load func() (*config.Config, error), logger *slog.Logger) <-chan *config.Config {
	out := make(chan *config.Config, 1)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-src.Events():
				if !ok {
					return
				}
				if ev.Op.Has(watcher.OpRemove) || ev.Op.Has(watcher.OpRename) {
					logger.Warn("config file removed, keeping current settings", "path", ev.Path)
					continue
				}
				cfg, err := load()
				if err != nil {
					logger.Warn("config reload failed", "path", ev.Path, "error", err)
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- cfg

			case err, ok := <-src.Errors():
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()

	return out
}
