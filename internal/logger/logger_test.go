package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeLines(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFieldsAndPairs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "engine"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"screen": "home", "pass": "abc"})
	log.Info("render complete", "nodes", 4)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "render complete", entries[0]["message"])
	require.Equal(t, "home", entries[0]["screen"])
	require.Equal(t, "abc", entries[0]["pass"])
	require.Equal(t, "engine", entries[0]["component"])
	require.EqualValues(t, 4, entries[0]["nodes"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	require.False(t, log.DebugEnabled())
	log.Debug("color fallback", "node", "c1")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	require.True(t, log.DebugEnabled())

	log.Error(errors.New("boom"), "render failed", "screen", "s1")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "boom", entries[0]["error"])
	require.Equal(t, "s1", entries[0]["screen"])
	require.Equal(t, "error", entries[0]["level"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.Warn("x")
		nilLogger.Debug("x")
		nilLogger.Error(errors.New("x"), "x")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	})

	require.NotPanics(t, func() {
		Nop().WithFields(map[string]any{"a": 1}).Info("discarded")
	})
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("document reload failed", "path", "home.yaml")
	require.Contains(t, buf.String(), "document reload failed")
	require.Contains(t, buf.String(), "home.yaml")
}
