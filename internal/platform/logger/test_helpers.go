package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Entry is one decoded JSON log record.
type Entry map[string]interface{}

// Message returns the record's msg attribute.
func (e Entry) Message() string {
	msg, _ := e[slog.MessageKey].(string)
	return msg
}

// Level returns the record's level attribute, e.g. "WARN".
func (e Entry) Level() string {
	level, _ := e[slog.LevelKey].(string)
	return level
}

// LogBuffer collects JSON log output. Handlers of concurrent runs may write
// to it while a test reads.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries decodes every record written so far, one per line.
func (b *LogBuffer) Entries() ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(strings.NewReader(b.String()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("log line %q: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// Find returns the first record whose message is msg.
func (b *LogBuffer) Find(msg string) (Entry, bool) {
	entries, err := b.Entries()
	if err != nil {
		return nil, false
	}
	for _, e := range entries {
		if e.Message() == msg {
			return e, true
		}
	}
	return nil, false
}

// NewTestLogger returns a debug-level JSON logger writing into a fresh buffer.
// Unlike Setup it leaves the default logger untouched, so it is safe in
// parallel tests.
func NewTestLogger(t *testing.T) (*slog.Logger, *LogBuffer) {
	t.Helper()

	buf := &LogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// AssertLogContains fails the test unless content appears in the raw output.
func AssertLogContains(t *testing.T, buf *LogBuffer, content string) {
	t.Helper()
	assert.Contains(t, buf.String(), content)
}

// AssertLogField fails the test unless some record has field set to expected.
// Numbers decode as float64.
func AssertLogField(t *testing.T, buf *LogBuffer, field string, expected interface{}) {
	t.Helper()

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.NotEmpty(t, entries, "no log records")

	for _, e := range entries {
		if value, ok := e[field]; ok && value == expected {
			return
		}
	}
	assert.Failf(t, "log field not found", "no record has %s=%v\n%s", field, expected, buf.String())
}
