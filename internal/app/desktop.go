//go:build !android

// Package app wires the desktop demo together.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/gogpu/gg"

	"tridemo/internal/config"
	"tridemo/internal/cue"
	"tridemo/internal/cue/otosink"
	"tridemo/internal/logging"
	"tridemo/internal/render"
	"tridemo/internal/render/glrender"
	"tridemo/internal/render/raster"
	"tridemo/internal/scene"
	"tridemo/internal/window"
)

// cueVolume is the playback volume of the press/release tones.
const cueVolume = 0.58

// RunDesktop opens the window and blocks until it is closed or ctx is
// cancelled. Only startup failures are returned; once the loop runs,
// per-frame problems are handled inside the scene.
func RunDesktop(ctx context.Context, cfg config.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logging.Logger()
	gg.SetLogger(log)

	shell, err := window.New(window.DefaultOptions())
	if err != nil {
		return err
	}
	defer shell.Destroy()

	factory, presenter, err := newFactory(cfg.Backend, shell)
	if err != nil {
		return err
	}
	if presenter != nil {
		defer closeLogged(log, presenter, "blitter")
	}

	sc, err := scene.New(factory, shell, shell.Dispatcher())
	if err != nil {
		_ = factory.Close()
		return fmt.Errorf("scene: %w", err)
	}
	defer closeLogged(log, sc, "scene")

	if cfg.Sound {
		if sink, serr := otosink.New(); serr != nil {
			log.Warn("audio init failed, continuing without sound", "err", serr)
		} else {
			player := cue.NewPlayer(sink, cueVolume)
			shell.Dispatcher().Subscribe(player)
			defer shell.Dispatcher().Unsubscribe(player)
		}
	}

	log.Info("window ready", "backend", cfg.Backend, "size", shell.ClientSize())
	shell.Run(ctx)
	log.Info("event loop finished")
	return nil
}

// newFactory builds the render factory for backend. For the raster backend
// it also returns the GL blitter that presents its frames.
func newFactory(backend config.Backend, shell *window.Shell) (render.Factory, io.Closer, error) {
	switch backend {
	case config.BackendGL:
		f, err := glrender.NewFactory(shell.Window())
		if err != nil {
			return nil, nil, fmt.Errorf("render factory: %w", err)
		}
		return f, nil, nil
	case config.BackendRaster:
		b, err := glrender.NewBlitter(shell.Window())
		if err != nil {
			return nil, nil, fmt.Errorf("render factory: %w", err)
		}
		return raster.NewFactory(b), b, nil
	}
	return nil, nil, fmt.Errorf("render factory: unknown backend %q", backend)
}

// closeLogged releases c at shutdown. Teardown failures are logged only:
// a clean loop exit always ends the process successfully.
func closeLogged(log *slog.Logger, c io.Closer, what string) {
	if err := c.Close(); err != nil {
		log.Warn("close "+what, "err", err)
	}
}
