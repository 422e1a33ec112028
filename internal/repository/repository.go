package repository

import (
	"context"
	"time"
)

// Run is one recorded conversion: which topology was read, where the
// result went, and how big the output graph came out.
type Run struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Name      string    `json:"name"`
	Nodes     int       `json:"nodes"`
	Links     int       `json:"links"`
	Warnings  []string  `json:"warnings,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository defines the interface for conversion run history
type Repository interface {
	// RecordRun persists a completed conversion run
	RecordRun(ctx context.Context, run *Run) error

	// GetRun fetches a single run by id
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// Close releases resources
	Close() error
}
