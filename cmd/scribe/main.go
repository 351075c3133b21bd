package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JackWReid/scribe/internal/app"
	"github.com/JackWReid/scribe/internal/config"
	"github.com/JackWReid/scribe/internal/editor"
	"github.com/JackWReid/scribe/internal/terminal"
)

var Version = "dev"

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config.toml")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("scribe", Version)
		return
	}

	if err := run(*configPath, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, filename string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	buf, err := openBuffer(filename)
	if err != nil {
		return err
	}
	logger.Info("buffer loaded", slog.String("name", buf.Name()), slog.Int("lines", buf.LineCount()))

	a := app.New(buf, app.WithLogger(logger))

	// Set up terminal.
	t, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	defer t.Restore()

	renderer := terminal.NewRenderer(cfg.Editor.TabWidth)
	render := func() error {
		return t.Write(renderer.RenderFrame(a.View(), t.Width(), t.Height()))
	}

	// Initial render.
	if err := render(); err != nil {
		return err
	}

	// Main event loop.
	for !a.Done() {
		// Check for resize signal (non-blocking).
		select {
		case <-t.SigwinchChan():
			t.Resize()
			a.Handle(app.Simple(app.CmdResize))
			if err := render(); err != nil {
				return err
			}
			continue
		default:
		}

		key, err := t.ReadKey()
		if err != nil {
			return err
		}

		_, dialog := a.Mode().(*app.Dialog)
		cmd, ok := terminal.Translate(key, dialog)
		if !ok {
			logger.Debug("unbound key", slog.Int("type", key.Type), slog.String("rune", string(key.Rune)))
			continue
		}

		a.Handle(cmd)
		if !a.Done() {
			if err := render(); err != nil {
				return err
			}
		}
	}

	logger.Info("exit")
	return nil
}

// openBuffer reads filename, or returns an empty draft when none is given.
func openBuffer(filename string) (*editor.Buffer, error) {
	if filename == "" {
		return editor.NewBuffer(), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return editor.ReadBuffer(filename, f)
}

// newLogger opens the log file named in cfg. Logging is discarded when no
// path is set.
func newLogger(cfg config.Log) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
