package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(NewJSONLogger(&buf, level))
	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestValidLevel(t *testing.T) {
	for _, l := range []string{"debug", "info", "warn", "error", "off", "disabled"} {
		assert.True(t, ValidLevel(l), l)
	}
	for _, l := range []string{"", "trace", "WARN", "verbose"} {
		assert.False(t, ValidLevel(l), l)
	}
}

func TestSetLogger_ComponentLoggers(t *testing.T) {
	buf := capture(t, "debug")

	Mnemonic.Info().Msg("one")
	Wordlist.Warn().Msg("two")
	Config.Debug().Msg("three")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "mnemonic", lines[0]["component"])
	assert.Equal(t, "wordlist", lines[1]["component"])
	assert.Equal(t, "config", lines[2]["component"])
	assert.Equal(t, "three", lines[2]["message"])
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, "warn")

	Logger.Debug().Msg("hidden")
	Mnemonic.Info().Msg("hidden")
	Wordlist.Warn().Msg("shown")
	Config.Error().Msg("shown")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "error", lines[1]["level"])
}

func TestWithLocale(t *testing.T) {
	buf := capture(t, "info")

	l := WithLocale("ja")
	l.Info().Msg("loaded")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ja", lines[0]["locale"])
	assert.Equal(t, "wordlist", lines[0]["component"])
}

func TestWithComponent(t *testing.T) {
	buf := capture(t, "info")

	l := WithComponent("codec")
	l.Info().Msg("ready")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "codec", lines[0]["component"])
}

func TestBenchmark(t *testing.T) {
	buf := capture(t, "debug")

	done := Benchmark("compute_seed")
	done()

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "compute_seed", lines[0]["operation"])
	assert.Equal(t, "benchmark", lines[0]["message"])
	assert.Contains(t, lines[0], "duration")
}

func TestInit_File(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	path := filepath.Join(t.TempDir(), "mnemonic.log")
	require.NoError(t, Init("info", true, path))

	Config.Info().Str("key", "wordlist").Msg("Config loaded")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "config", entry["component"])
	assert.Equal(t, "wordlist", entry["key"])
}

func TestInit_BadFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	err := Init("info", false, filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
