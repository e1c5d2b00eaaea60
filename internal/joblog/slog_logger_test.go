package joblog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	tests := []struct {
		name      string
		write     func(logger *SlogLogger) error
		wantLevel string
		wantMsg   string
	}{
		{
			name: "save is written as an error record",
			write: func(logger *SlogLogger) error {
				return logger.Save(context.Background(), "job-1", "error in requestPurgeAll")
			},
			wantLevel: "ERROR",
			wantMsg:   "error in requestPurgeAll",
		},
		{
			name: "info is written as an info record",
			write: func(logger *SlogLogger) error {
				logger.Info(context.Background(), "job-1", "Total urls purged 3")
				return nil
			},
			wantLevel: "INFO",
			wantMsg:   "Total urls purged 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

			require.NoError(t, tt.write(logger))

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, tt.wantMsg, record["msg"])
			assert.Equal(t, "job-1", record["jobID"])
		})
	}
}

func TestNewSlogLogger_DefaultsToSlogDefault(t *testing.T) {
	logger := NewSlogLogger(nil)
	assert.Same(t, slog.Default(), logger.logger)
}
