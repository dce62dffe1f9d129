package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "text info", cfg: config.LogConfig{Level: "info", Format: "text"}, wantLevel: logrus.InfoLevel},
		{name: "json debug", cfg: config.LogConfig{Level: "debug", Format: "json"}, wantLevel: logrus.DebugLevel, wantJSON: true},
		{name: "unknown level falls back to info", cfg: config.LogConfig{Level: "loud", Format: "text"}, wantLevel: logrus.InfoLevel},
		{name: "empty level", cfg: config.LogConfig{}, wantLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.cfg)

			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	logger := New(config.LogConfig{Level: "info", Format: "json"})
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	logger.WithField("user_id", "u1").Info("plan adjusted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "plan adjusted", entry["msg"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "info", entry["level"])
}
