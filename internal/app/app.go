// Package app wires the editor components together and runs the main
// loop: render a frame, block for one keystroke, dispatch, repeat.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/minivi/internal/config"
	"github.com/dshills/minivi/internal/engine/buffer"
	"github.com/dshills/minivi/internal/engine/cursor"
	"github.com/dshills/minivi/internal/input/key"
	"github.com/dshills/minivi/internal/input/mode"
	"github.com/dshills/minivi/internal/renderer"
	"github.com/dshills/minivi/internal/renderer/backend"
	"github.com/dshills/minivi/internal/renderer/statusline"
	"github.com/dshills/minivi/internal/renderer/viewport"
)

// Options configures the application.
type Options struct {
	// Filename is the file to open; empty opens an empty buffer.
	Filename string

	// ConfigPath is an optional configuration file.
	ConfigPath string

	// Debug enables the debug log file.
	Debug bool
}

// Application coordinates the editor components. All state mutation
// happens on the single main-loop goroutine.
type Application struct {
	cfg config.Config
	log *Logger

	buf *buffer.Buffer
	cur cursor.Cursor
	vp  *viewport.Viewport

	modes       *mode.Manager
	commandMode *mode.CommandMode

	status *statusline.StatusLine
	rend   *renderer.Renderer
	term   *backend.Terminal
}

// New creates an application: loads configuration, opens the file if
// one was given, and registers the modes. The terminal is not touched
// until Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var logOut io.Writer
	if opts.Debug {
		f, err := os.OpenFile("minivi.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
	}
	level := LogLevelInfo
	if opts.Debug {
		level = LogLevelDebug
	}

	app := &Application{
		cfg:    cfg,
		log:    NewLogger(logOut, level),
		buf:    buffer.New(),
		status: statusline.New(cfg.MessageTimeout()),
	}

	if opts.Filename != "" {
		if err := app.buf.LoadFile(opts.Filename); err != nil {
			return nil, NewOperationError("open", opts.Filename, err)
		}
		app.log.Infof("opened %s (%d rows)", opts.Filename, app.buf.NumRows())
	}

	app.commandMode = mode.NewCommandMode()
	app.modes = mode.NewManager()
	app.modes.Register(mode.NewViewMode())
	app.modes.Register(mode.NewInsertMode())
	app.modes.Register(app.commandMode)
	if err := app.modes.SetInitialMode(mode.ModeView); err != nil {
		return nil, err
	}

	return app, nil
}

// Run enables raw mode and drives the render/read/dispatch loop until
// a quit is requested or a fatal error occurs. The terminal is
// restored on every return path.
func (app *Application) Run() (err error) {
	app.term = backend.NewTerminal()
	if err := app.term.EnableRaw(); err != nil {
		return err
	}
	defer func() {
		if restoreErr := app.term.Restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	rows, cols, err := app.term.Size()
	if err != nil {
		return fmt.Errorf("window size: %w", err)
	}
	// Two rows are reserved for the status and message bars.
	app.vp = viewport.New(rows-2, cols)
	app.rend = renderer.New(app.term, app.status, app.cfg.PlaceholderByte())

	app.log.Infof("session started: %dx%d", rows, cols)

	quit := notifyQuitSignals()
	defer stopQuitSignals(quit)

	for {
		app.cur.Clamp(app.buf)
		app.vp.Scroll(app.cur)
		app.syncStatus()
		if err := app.rend.Render(app.buf, app.cur, app.vp); err != nil {
			return err
		}

		select {
		case sig := <-quit:
			app.log.Infof("terminating on signal %v", sig)
			app.term.ClearScreen()
			return nil
		default:
		}

		ev, err := app.term.ReadKey()
		if err != nil {
			return err
		}
		if ev.Key == key.KeyNone {
			continue
		}

		if err := app.handleKey(ev); err != nil {
			if err == ErrQuit {
				app.term.ClearScreen()
				return nil
			}
			return err
		}
	}
}

// syncStatus pushes current editor state into the status line before
// a frame is drawn.
func (app *Application) syncStatus() {
	if current := app.modes.Current(); current != nil {
		app.status.SetMode(current.DisplayName())
	}
	app.status.SetFilename(app.buf.Filename())
	app.status.SetModified(app.buf.IsModified())
	app.status.SetPosition(app.cur.Line+1, app.cur.Col+1, app.buf.NumRows())
}
