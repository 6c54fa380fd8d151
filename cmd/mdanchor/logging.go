package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/iand/pontium/hlog"
	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
)

// logLevel maps verbosity flags to a slog level. Quiet wins over verbose.
func logLevel(f commonFlags) slog.Level {
	switch {
	case f.quiet:
		return slog.LevelError
	case f.debug:
		return slog.LevelDebug
	case f.verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// setupLogging installs the default slog logger for diagnostics.
// Conversion results are printed to Environment.Stdout, not logged.
func setupLogging(f commonFlags) {
	h := new(hlog.Handler)
	h = h.WithLevel(logLevel(f))
	slog.SetDefault(slog.New(h))
}

// dump pretty-prints v to w, with colors only when w is a terminal.
func dump(w io.Writer, v any) {
	pp.ColoringEnabled = isTerminal(w)
	_, _ = pp.Fprintln(w, v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
