package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/clekey/clekeyOVR/internal/app"
	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/config/watcher"
	"github.com/clekey/clekeyOVR/internal/device/sim"
	"github.com/clekey/clekeyOVR/internal/output"
	"github.com/clekey/clekeyOVR/internal/renderer/backend"
	"github.com/clekey/clekeyOVR/internal/renderer/grid"
)

// scriptPace is how many frames each scripted key is held apart.
const scriptPace = 3

type runOptions struct {
	configPath string
	logLevel   string
	fps        float64
	headless   bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the keyboard",
		Long: `Run the keyboard in the terminal simulator.

Without a terminal on stdout, or with --headless, keys are read from stdin
one per few frames and commits go to the log. End of input quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("headless") {
				opts.headless = !term.IsTerminal(int(os.Stdout.Fd()))
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runKeyboard(ctx, opts, cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.Float64Var(&opts.fps, "fps", 0, "frame rate override")
	flags.BoolVar(&opts.headless, "headless", false, "read keys from stdin and draw nothing")
	return cmd
}

// load reads the config at path and applies the command line overrides.
func (o runOptions) load(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.fps > 0 {
		cfg.Input.FPS = o.fps
	}
	if o.headless {
		cfg.Output.Mode = output.ModeLog
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runKeyboard(ctx context.Context, opts runOptions, stdin io.Reader, stderr io.Writer) error {
	path, err := config.ResolvePath(opts.configPath)
	if err != nil {
		return err
	}
	load := func() (*config.Config, error) { return opts.load(path) }

	cfg, err := load()
	if err != nil {
		return err
	}

	// The terminal owns the screen, so logs only go to the configured file.
	logOut := stderr
	if !opts.headless {
		logOut = io.Discard
	}
	logging, err := app.NewLogging(cfg.Logging, logOut)
	if err != nil {
		return err
	}
	defer logging.Close()
	logger := logging.Logger()

	var reloads <-chan *config.Config
	if w, err := watcher.New(path); err != nil {
		logger.Warn("config reload disabled", "path", path, "err", err)
	} else {
		defer w.Close()
		reloads = app.WatchConfig(ctx, w, load, logger)
	}

	dev := sim.New()
	appOpts := app.Options{
		Config:  cfg,
		Device:  dev,
		Logging: logging,
		Reloads: reloads,
	}

	if opts.headless {
		go feedScript(ctx, dev, stdin, scriptPace*cfg.FrameInterval())
	} else {
		screen, err := backend.NewTerminal()
		if err != nil {
			return app.NewOperationError("open", "terminal", err)
		}
		if err := screen.Init(); err != nil {
			return app.NewOperationError("init", "terminal", err)
		}
		defer screen.Shutdown()

		r, err := grid.New(screen, cfg.UI)
		if err != nil {
			return err
		}
		r.SetPulseSource(dev)
		appOpts.Renderer = r
		go dev.Pump(screen)
	}

	a, err := app.New(appOpts)
	if err != nil {
		return err
	}
	logger.Info("keyboard started", "config", path, "headless", opts.headless, "fps", cfg.Input.FPS)

	err = a.Run(ctx)
	m := a.Metrics().Snapshot()
	logger.Info("keyboard stopped", "frames", m.FramesTotal, "sessions", m.Sessions, "overruns", m.Overruns)
	return err
}

// scriptEvent maps a script character to a key event. Newlines and
// carriage returns are skipped.
func scriptEvent(r rune) (backend.Event, bool) {
	switch r {
	case '\n', '\r':
		return backend.Event{}, false
	case '\x1b':
		return backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}, true
	case '\t':
		return backend.Event{Type: backend.EventKey, Key: backend.KeyTab}, true
	case '\x03':
		return backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlC}, true
	default:
		return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}, true
	}
}

// feedScript sends one key from r every pace and quits at end of input.
func feedScript(ctx context.Context, dev *sim.Device, r io.Reader, pace time.Duration) {
	quit, _ := scriptEvent('\x03')
	in := bufio.NewReader(r)
	ticker := time.NewTicker(pace)
	defer ticker.Stop()

	for {
		ch, _, err := in.ReadRune()
		if err != nil {
			// A read error ends the script like EOF.
			dev.Send(quit)
			return
		}
		ev, ok := scriptEvent(ch)
		if !ok {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dev.Send(ev)
		}
	}
}
