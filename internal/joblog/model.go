// Package joblog provides JobLogger backends.
package joblog

import (
	"time"
)

type Level string

const (
	// LevelDurable marks entries written through Save.
	LevelDurable Level = "durable"
	LevelInfo    Level = "info"
)

// Entry is one stored job log line.
type Entry struct {
	ID        int64     `db:"id"`
	JobID     string    `db:"job_id"`
	Level     Level     `db:"level"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
