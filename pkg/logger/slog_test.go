package logger

import (
	"bytes"
	"encoding/json"
	rawslog "log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromHandler(t *testing.T) {
	var buf bytes.Buffer
	l := New(rawslog.NewJSONHandler(&buf, &rawslog.HandlerOptions{Level: rawslog.LevelDebug}))

	for level, fn := range map[rawslog.Level]func(string, ...any){
		rawslog.LevelError: l.Error,
		rawslog.LevelWarn:  l.Warn,
		rawslog.LevelInfo:  l.Info,
		rawslog.LevelDebug: l.Debug,
	} {
		buf.Reset()
		fn("operation failed", "service", "Redshift", "status", 404)

		var line struct {
			Level   string `json:"level"`
			Msg     string `json:"msg"`
			Service string `json:"service"`
			Status  int    `json:"status"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, level.String(), line.Level)
		require.Equal(t, "operation failed", line.Msg)
		require.Equal(t, "Redshift", line.Service)
		require.Equal(t, 404, line.Status)
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	require.NotPanics(t, func() {
		l.Error("x", "k", 1)
		l.Debug("y")
	})
}
