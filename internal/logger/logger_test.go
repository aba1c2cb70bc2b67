//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "warning alias", level: "WARNING", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "invalid level defaults to info", level: "invalid", expected: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestForRequest(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	l := ForRequest("req-1", "sess-1")
	l.Info().Msg("line added")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "sess-1", entry["session_id"])
	assert.Equal(t, "bakery", entry["service"])
	assert.Equal(t, "line added", entry["message"])
}

func TestForRequest_OmitsEmptySession(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", false, &buf)
	defer Init("info", false)

	l := ForRequest("req-2", "")
	l.Info().Msg("home")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["session_id"]
	assert.False(t, ok)
}

func TestForSession(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", false, &buf)
	defer Init("info", false)

	l := ForSession("abc")
	l.Debug().Msg("evicted")

	assert.Contains(t, buf.String(), `"session_id":"abc"`)
}
