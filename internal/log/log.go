// Package log provides context-aware leveled logging for ph.
//
// Diagnostics go to stderr; primary output belongs to the output package.
// A Logger is attached to the context at CLI startup and retrieved with
// [FromContext] anywhere below.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Level is the severity of a log line.
type Level int

// Severity levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelText = map[Level]string{
	LevelDebug: "DEBU",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERRO",
}

var levelStyle = map[Level]lipgloss.Style{
	LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

var tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Logger writes leveled diagnostics and verbose command echoes.
// Verbose enables DEBU lines and command echoes; quiet suppresses
// everything below ERRO and wins over verbose.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	color   bool
}

// New creates a logger writing to out. Colored level badges are enabled
// only when out is a terminal.
func New(out io.Writer, verbose, quiet bool) *Logger {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: out, verbose: verbose, quiet: quiet, color: color}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a discard logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debugf writes a DEBU line with a component tag in verbose mode.
func (l *Logger) Debugf(tag, format string, args ...any) {
	if !l.IsVerbose() {
		return
	}
	l.logf(LevelDebug, tag, format, args...)
}

// Infof writes an INFO line with a component tag.
func (l *Logger) Infof(tag, format string, args ...any) {
	if l.quiet {
		return
	}
	l.logf(LevelInfo, tag, format, args...)
}

// Warnf writes a WARN line with a component tag.
func (l *Logger) Warnf(tag, format string, args ...any) {
	if l.quiet {
		return
	}
	l.logf(LevelWarn, tag, format, args...)
}

// Errorf writes an ERRO line with a component tag. Never suppressed.
func (l *Logger) Errorf(tag, format string, args ...any) {
	l.logf(LevelError, tag, format, args...)
}

// Debug writes a debug message with key=value pairs in verbose mode.
// An unpaired trailing key is dropped.
func (l *Logger) Debug(msg string, keyvals ...string) {
	if !l.IsVerbose() {
		return
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		sb.WriteString(" ")
		sb.WriteString(keyvals[i])
		sb.WriteString("=")
		sb.WriteString(keyvals[i+1])
	}
	fmt.Fprintf(l.out, "%s %s\n", l.badge(LevelDebug), sb.String())
}

// Command echoes an external command in verbose mode and returns a
// completion func that appends the elapsed duration. The returned func
// is always safe to call.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	if dir != "" {
		fmt.Fprintf(l.out, "[%s] $ %s %s", dir, name, strings.Join(args, " "))
	} else {
		fmt.Fprintf(l.out, "$ %s %s", name, strings.Join(args, " "))
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, " (%s)\n", d)
	}
}

// IsVerbose reports whether debug output is enabled. Quiet wins.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func (l *Logger) logf(lv Level, tag, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if tag == "" {
		fmt.Fprintf(l.out, "%s %s\n", l.badge(lv), msg)
		return
	}
	label := "[" + tag + "]"
	if l.color {
		label = tagStyle.Render(label)
	}
	fmt.Fprintf(l.out, "%s %s %s\n", l.badge(lv), label, msg)
}

func (l *Logger) badge(lv Level) string {
	if l.color {
		return levelStyle[lv].Render(levelText[lv])
	}
	return levelText[lv]
}
