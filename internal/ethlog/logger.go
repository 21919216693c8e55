// Package ethlog is a small leveled logger for the cmd/ demo tools. It
// mirrors go-ethereum's log package in spirit — slog's level values, a Trace
// level slog doesn't have natively, level-colored terminal output — but
// trades the upstream package's hand-rolled ANSI escapes for fatih/color
// and mattn/go-isatty, since a from-scratch codec library has no other
// natural home for that part of the example pack's dependency stack (see
// DESIGN.md).
package ethlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level mirrors go-ethereum's slog-based level set, adding Trace below
// slog's own Debug.
type Level slog.Level

const (
	LevelTrace Level = -8
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
	LevelCrit  Level = 12
)

func (l Level) String() string {
	switch {
	case l <= LevelTrace:
		return "TRACE"
	case l <= LevelDebug:
		return "DEBUG"
	case l <= LevelInfo:
		return "INFO"
	case l <= LevelWarn:
		return "WARN"
	case l <= LevelError:
		return "ERROR"
	default:
		return "CRIT"
	}
}

// Logger is the small interface cmd/rlpdump and cmd/eip712sum log through.
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Crit(msg string, ctx ...any) // Crit also terminates the process, matching go-ethereum's log.Crit.
}

type logger struct {
	out      io.Writer
	minLevel Level
	useColor bool
}

// New builds a Logger writing to w, colorizing output when w is a real
// terminal (detected via go-isatty) and writing plain text otherwise.
func New(w io.Writer, minLevel Level) Logger {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if useColor {
		w = colorable.NewColorable(w.(*os.File))
	}
	return &logger{out: w, minLevel: minLevel, useColor: useColor}
}

var levelColor = map[Level]*color.Color{
	LevelTrace: color.New(color.FgHiBlack),
	LevelDebug: color.New(color.FgBlue),
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
	LevelCrit:  color.New(color.FgHiRed, color.Bold),
}

func (l *logger) write(lvl Level, msg string, ctx []any) {
	if lvl < l.minLevel {
		return
	}
	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format("15:04:05.000"), lvl.String())
	if l.useColor {
		if c, ok := levelColor[lvl]; ok {
			prefix = c.Sprint(prefix)
		}
	}
	line := prefix + " " + msg + formatCtx(ctx)
	fmt.Fprintln(l.out, line)
}

func formatCtx(ctx []any) string {
	if len(ctx) == 0 {
		return ""
	}
	s := ""
	for i := 0; i+1 < len(ctx); i += 2 {
		s += fmt.Sprintf(" %v=%v", ctx[i], ctx[i+1])
	}
	if len(ctx)%2 == 1 {
		s += fmt.Sprintf(" %v=<missing>", ctx[len(ctx)-1])
	}
	return s
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...any) { l.write(LevelError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...any) {
	l.write(LevelCrit, msg, ctx)
	os.Exit(1)
}

// Discard returns a Logger that drops everything, for library code and
// tests that don't want a real logger.
func Discard() Logger { return &logger{out: io.Discard, minLevel: LevelCrit + 1} }
