package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    slog.Level
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: slog.LevelInfo, wantErr: require.NoError},
		"debug":   {input: "debug", want: slog.LevelDebug, wantErr: require.NoError},
		"warn":    {input: "warn", want: slog.LevelWarn, wantErr: require.NoError},
		"error":   {input: "error", want: slog.LevelError, wantErr: require.NoError},
		"unknown": {input: "chatty", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The tests below replace the process-wide default logger, so they do not
// run in parallel.

func TestInitializeJSON(t *testing.T) {
	var buf bytes.Buffer
	_, err := Initialize(&buf, Config{Level: "debug", Format: "json"})
	require.NoError(t, err)

	Named("codec").Debug("figure.read", "path", "shape.txt")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "figure.read", rec["msg"])
	assert.Equal(t, "codec", rec["name"])
	assert.Equal(t, "shape.txt", rec["path"])
}

func TestInitializeFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := Initialize(&buf, Config{Level: "warn", Format: "text"})
	require.NoError(t, err)

	l.Info("quiet")
	l.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestInitializeUnknownFormat(t *testing.T) {
	_, err := Initialize(&bytes.Buffer{}, Config{Format: "xml"})
	assert.Error(t, err)
}
