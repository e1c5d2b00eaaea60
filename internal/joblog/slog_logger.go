package joblog

import (
	"context"
	"log/slog"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
)

var _ cdn.JobLogger = (*SlogLogger)(nil)

// SlogLogger writes job messages as structured log records.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Save(ctx context.Context, jobID string, message string) error {
	l.logger.LogAttrs(ctx, slog.LevelError, message,
		slog.String("jobID", jobID),
		slog.String("kind", string(LevelDurable)),
	)
	return nil
}

func (l *SlogLogger) Info(ctx context.Context, jobID string, message string) {
	l.logger.LogAttrs(ctx, slog.LevelInfo, message,
		slog.String("jobID", jobID),
	)
}
