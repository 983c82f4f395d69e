package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImportStatus represents the lifecycle state of an import job.
type ImportStatus string

const (
	ImportStatusProcessing         ImportStatus = "PROCESSING"
	ImportStatusCompleted          ImportStatus = "COMPLETED"
	ImportStatusPartiallyCompleted ImportStatus = "PARTIALLY_COMPLETED"
	ImportStatusFailed             ImportStatus = "FAILED"
)

// IsTerminal returns true if no further transitions can occur.
func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusCompleted ||
		s == ImportStatusPartiallyCompleted ||
		s == ImportStatusFailed
}

// ImportJob is the durable record of one import run's lifecycle. It is
// created as PROCESSING at upload time and overwritten once with a terminal
// status when the async run finishes.
type ImportJob struct {
	ID             uuid.UUID    `json:"id"`
	FileName       string       `json:"file_name"`
	Status         ImportStatus `json:"status"`
	TotalRows      int          `json:"total_rows"`
	SuccessfulRows int          `json:"successful_rows"`
	Errors         []string     `json:"errors"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ImportStatusUpdate is the notification an import run emits exactly once at
// the end. Applying it to the job record is idempotent: it overwrites
// status, counters and errors wholesale.
type ImportStatusUpdate struct {
	ImportID       uuid.UUID
	Status         ImportStatus
	TotalRows      int
	SuccessfulRows int
	Errors         []string
}

// CalculateImportStatus derives the terminal status of a run from the number
// of validated records and the number actually persisted.
func CalculateImportStatus(validCount, savedCount int) ImportStatus {
	switch {
	case validCount == 0 || savedCount == 0:
		return ImportStatusFailed
	case savedCount == validCount:
		return ImportStatusCompleted
	default:
		return ImportStatusPartiallyCompleted
	}
}
