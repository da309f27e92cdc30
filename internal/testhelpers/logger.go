// Package testhelpers holds helpers shared by the ginkgo suites.
package testhelpers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/onsi/ginkgo/v2"
)

// Entry is one recorded log line.
type Entry struct {
	Level string
	Msg   string
	KV    []any
}

// TestLogger implements log.Logger for ginkgo suites. Lines go to the
// GinkgoWriter, so they only show up for failing specs, and are recorded
// for assertions.
type TestLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger creates a new TestLogger for Ginkgo tests.
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.log("DEBUG", msg, keysAndValues)
}

func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.log("INFO", msg, keysAndValues)
}

func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.log("WARN", msg, keysAndValues)
}

func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.log("ERROR", msg, keysAndValues)
}

// Messages returns the messages logged at level, in order.
func (l *TestLogger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var msgs []string
	for _, e := range l.entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Reset forgets the recorded entries.
func (l *TestLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

var levelColors = map[string]*color.Color{
	"DEBUG": color.New(color.FgHiBlack),
	"INFO":  color.New(color.FgBlue),
	"WARN":  color.New(color.FgYellow),
	"ERROR": color.New(color.FgRed),
}

func (l *TestLogger) log(level, msg string, args []any) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, KV: args})
	l.mu.Unlock()

	formatted := msg
	if len(args) > 0 {
		var pairs []string
		for i := 0; i+1 < len(args); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", args[i], args[i+1]))
		}
		formatted = fmt.Sprintf("%s (%s)", msg, strings.Join(pairs, ", "))
	}

	ginkgo.GinkgoWriter.Println(levelColors[level].Sprintf("[%s] %s", level, formatted))
}
