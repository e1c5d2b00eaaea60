package joblog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
)

var _ cdn.JobLogger = (*DBLogger)(nil)

// DBLogger stores job messages in the job_logs table.
// Info writes happen in the background; call Close to wait for them.
type DBLogger struct {
	db      *sqlx.DB
	pending sync.WaitGroup
}

func NewDBLogger(db *sqlx.DB) *DBLogger {
	return &DBLogger{db: db}
}

func (l *DBLogger) Save(ctx context.Context, jobID string, message string) error {
	if err := l.insert(ctx, jobID, LevelDurable, message); err != nil {
		return fmt.Errorf("save job log: %w", err)
	}
	return nil
}

func (l *DBLogger) Info(ctx context.Context, jobID string, message string) {
	ctx = context.WithoutCancel(ctx)
	l.pending.Add(1)
	go func() {
		defer l.pending.Done()
		if err := l.insert(ctx, jobID, LevelInfo, message); err != nil {
			slog.Default().Warn("failed to write the job log",
				"jobID", jobID,
				"message", message,
				"error", err,
			)
		}
	}()
}

func (l *DBLogger) insert(ctx context.Context, jobID string, level Level, message string) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO job_logs (job_id, level, message) VALUES (?, ?, ?)",
		jobID, string(level), message,
	)
	if err != nil {
		return fmt.Errorf("insert job log: %w", err)
	}
	return nil
}

// FindByJobID returns the entries of a job in insertion order.
func (l *DBLogger) FindByJobID(ctx context.Context, jobID string) ([]Entry, error) {
	var entries []Entry
	if err := l.db.SelectContext(ctx, &entries,
		"SELECT id, job_id, level, message, created_at FROM job_logs WHERE job_id = ? ORDER BY id",
		jobID,
	); err != nil {
		return nil, fmt.Errorf("load job logs of %s: %w", jobID, err)
	}
	return entries, nil
}

// Close waits for background writes to finish.
func (l *DBLogger) Close() error {
	l.pending.Wait()
	return nil
}
