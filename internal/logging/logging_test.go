package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLine struct {
	Level     string  `json:"level"`
	Timestamp string  `json:"ts"`
	Message   string  `json:"msg"`
	Nodes     int     `json:"nodes"`
	Duration  string  `json:"duration"`
	Total     float64 `json:"total_weight"`
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"info", zap.InfoLevel},
		{"warn", zap.WarnLevel},
		{"error", zap.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			lg, err := New(tt.level)
			require.NoError(t, err)
			assert.True(t, lg.Core().Enabled(tt.want))
			if tt.want > zap.DebugLevel {
				assert.False(t, lg.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("chatty")
	assert.Error(t, err)

	_, err = NewWithWriter("chatty", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewWithWriter_JSONLine(t *testing.T) {
	var buf bytes.Buffer
	lg, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	lg.Debug("hidden")
	lg.Info("computed",
		zap.Int("nodes", 4),
		zap.Duration("duration", 1500*time.Millisecond),
		zap.Float64("total_weight", 4),
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var got logLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, "info", got.Level)
	assert.Equal(t, "computed", got.Message)
	assert.Equal(t, 4, got.Nodes)
	assert.Equal(t, "1.5s", got.Duration)
	assert.Equal(t, 4.0, got.Total)
	assert.NotEmpty(t, got.Timestamp)
}
