// Package logging adapts zerolog to the meigit log.Logger interface for the
// command line. Values that look like credentials never reach the output.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mei-friend/meigit/log"
)

// Redacted replaces sensitive values.
const Redacted = "[REDACTED]"

var sensitivePatterns = []*regexp.Regexp{
	// GitHub tokens (ghp_, gho_, ghu_, ghs_, ghr_, github_pat_)
	regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`),
	regexp.MustCompile(`github_pat_[a-zA-Z0-9_]{20,}`),
	regexp.MustCompile(`(?i)(bearer|token|basic)\s+[a-zA-Z0-9_\-.=+/]{16,}`),
}

var sensitiveKeys = []string{"token", "password", "secret", "authorization", "credential"}

// Options configures New.
type Options struct {
	Debug bool
	// LogFile, when set, receives a JSON copy of every line and is rotated
	// by size.
	LogFile string
	// Console receives the human facing output. It defaults to stderr.
	Console io.Writer
}

// Logger implements log.Logger on top of zerolog.
type Logger struct {
	zl zerolog.Logger
}

var _ log.Logger = (*Logger)(nil)

// New builds the command line logger. Close the returned closer to flush the
// log file; it is a no-op without one.
func New(opts Options) (*Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	console := opts.Console
	if console == nil {
		console = consoleWriter(os.Stderr)
	}

	writer := console
	var closer io.Closer = nopCloser{}
	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0o750); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		writer = zerolog.MultiLevelWriter(console, &filteringWriter{w: file})
		closer = file
	}

	return &Logger{zl: zerolog.New(writer).Level(level).With().Timestamp().Logger()}, closer, nil
}

// NewWithWriter logs JSON lines to w, for tests.
func NewWithWriter(w io.Writer, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return &Logger{zl: zerolog.New(w).Level(level)}
}

// consoleWriter pretty prints on a terminal and writes JSON otherwise.
func consoleWriter(f *os.File) io.Writer {
	if term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return f
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.log(l.zl.Debug(), msg, keysAndValues)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(l.zl.Info(), msg, keysAndValues)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(l.zl.Warn(), msg, keysAndValues)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log(l.zl.Error(), msg, keysAndValues)
}

func (l *Logger) log(e *zerolog.Event, msg string, keysAndValues []any) {
	if e == nil {
		return
	}
	e.Fields(redactFields(keysAndValues)).Msg(FilterValue(msg))
}

// redactFields copies key/value pairs, replacing the values of sensitive
// keys and filtering credentials out of string values. A trailing key
// without a value is kept with an empty value.
func redactFields(keysAndValues []any) []any {
	out := make([]any, 0, len(keysAndValues)+len(keysAndValues)%2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		var value any
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}

		switch v := value.(type) {
		case string:
			value = FilterValue(v)
		case error:
			value = FilterValue(v.Error())
		case fmt.Stringer:
			value = FilterValue(v.String())
		}
		if IsSensitiveKey(key) {
			value = Redacted
		}
		out = append(out, key, value)
	}
	return out
}

// IsSensitiveKey reports whether a field name names a credential.
func IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// FilterValue replaces anything that looks like a credential in s.
func FilterValue(s string) string {
	for _, p := range sensitivePatterns {
		s = p.ReplaceAllString(s, Redacted)
	}
	return s
}

// filteringWriter redacts credentials from whole lines before they reach
// the log file.
type filteringWriter struct {
	w io.Writer
}

func (f *filteringWriter) Write(p []byte) (int, error) {
	if _, err := f.w.Write([]byte(FilterValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
