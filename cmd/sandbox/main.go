package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/config"
	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/ui"
)

type options struct {
	configPath string
	width      int
	height     int
	vsync      bool
	debug      bool
	ready      bool
}

type App struct {
	opts    options
	input   config.Input
	log     *slog.Logger
	engine  *core.Engine
	win     *ui.Window
	shell   *shell
	watcher *config.Watcher
	stats   *debugOverlay
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 12)
	a.engine = e

	a.shell = newShell()
	a.win = ui.NewWindow(a.shell.main,
		ui.WithConfig(a.input),
		ui.WithLogger(a.log),
		ui.WithGlobalKeys(a.globalKey),
	)
	a.shell.attach(a.win)
	w, h := e.Window.FramebufferSize()
	a.win.Resize(float32(w), float32(h))
	a.win.SetReady(a.opts.ready)
	if !a.opts.ready {
		a.shell.notify(colors.Yellow, "press Ctrl+O to open a document")
	}

	if a.opts.configPath != "" {
		cw, err := config.Watch(a.opts.configPath, func(in config.Input) {
			a.win.Post(func() {
				a.win.SetConfig(in)
				a.log.Info("input config reloaded", "path", a.opts.configPath)
			})
		})
		if err != nil {
			a.log.Warn("config hot reload disabled", "err", err)
		} else {
			a.watcher = cw
		}
	}
	if a.opts.debug {
		a.stats = &debugOverlay{}
	}
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.win.Tick(dt)
	e.Window.SetCursor(int(a.win.Cursor()))
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	end := profiler.Start("App.OnRender")
	defer end()
	a.win.Draw(e.Renderer)
	if a.stats != nil {
		a.stats.frame(time.Now())
		if r, ok := e.Renderer.(*glbackend.RendererGL); ok {
			a.stats.draw(e.Renderer, r.Stats())
		}
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) { a.win.HandleEvent(ev) }

func (a *App) OnShutdown(e *core.Engine) {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("close config watcher", "err", err)
		}
	}
}

// globalKey handles shortcuts the main surface left unhandled.
func (a *App) globalKey(ev *ui.KeyEvent) {
	if !ev.Mods.Ctrl() {
		if ev.Key == core.KeyF1 && a.win.Gate().Ready() {
			a.shell.openDialog(a.win, 1)
			ev.Handled = true
		}
		return
	}
	switch ev.Key {
	case core.KeyO:
		a.win.SetReady(true)
		a.shell.notify(colors.Green, "document opened")
	case core.KeyW:
		a.win.SetReady(false)
		a.shell.notify(colors.Yellow, "document closed")
	case core.KeyP:
		go func() {
			path, err := profiler.Dump()
			a.win.Post(func() {
				if err != nil {
					a.log.Warn("profile dump failed", "err", err)
					a.shell.notify(colors.Red, "profile dump failed")
					return
				}
				a.log.Info("profile written", "path", path)
				a.shell.notify(colors.Cyan, "profile written")
			})
		}()
	case core.KeyQ:
		a.engine.Window.RequestClose()
	default:
		return
	}
	ev.Handled = true
}

// resolveConfig picks the explicit path, else an existing XDG file, else
// the XDG default location.
func resolveConfig(explicit string) (string, config.Input, error) {
	path := explicit
	if path == "" {
		found, err := config.FindPath()
		switch {
		case errors.Is(err, config.ErrNotFound):
			path = config.DefaultPath()
		case err != nil:
			return "", config.Default(), err
		default:
			path = found
		}
	}
	in, err := config.Load(path)
	return path, in, err
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "sandbox",
		Short:         "Interactive demo of the canopy input routing layer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			path, in, err := resolveConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("load input config: %w", err)
			}
			opts.configPath = path
			logger.Debug("input config", "path", path, "double_click", in.DoubleClickTime(), "delayed_click", in.DelayedClickTime())

			app := &App{opts: opts, input: in, log: logger}
			cfg := core.Config{
				Title:      "canopy sandbox",
				Width:      opts.width,
				Height:     opts.height,
				VSync:      opts.vsync,
				ClearColor: colors.DarkGray,
			}
			newWindow := func(cfg core.Config) (core.Window, error) {
				return platform.NewGLFWWindow(cfg, nil)
			}
			newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
				return glbackend.NewRendererGL(win, cfg)
			}
			start := time.Now()
			err = core.Run(app, cfg, newWindow, newRenderer)
			logger.Debug("sandbox finished", "elapsed", time.Since(start))
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "input config file (default: XDG config dir)")
	f.IntVar(&opts.width, "width", 1280, "window width")
	f.IntVar(&opts.height, "height", 720, "window height")
	f.BoolVar(&opts.vsync, "vsync", true, "enable vsync")
	f.BoolVar(&opts.debug, "debug", false, "debug logging and frame stats overlay")
	f.BoolVar(&opts.ready, "ready", true, "start with a document open")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}
