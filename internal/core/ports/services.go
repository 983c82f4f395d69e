package ports

import (
	"context"
	"errors"
	"io"

	"github.com/jeleniasty/budget-aggregator/internal/core/domain"

	"github.com/google/uuid"
)

// ErrQueueFull is returned by ImportDispatcher.Dispatch when the bounded
// queue cannot accept another run.
var ErrQueueFull = errors.New("import queue is full")

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// EncryptionService provides authenticated field encryption plus a
// deterministic blind index for equality search over encrypted values.
// Encrypt returns a fresh opaque token per call; BlindIndex is stable for
// equal plaintexts. All failures surface as a single encryption-domain
// error kind.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
	BlindIndex(plaintext string) (string, error)
}

// RowValidator validates a tabular input stream row by row. Rows are
// classified independently: one bad row contributes an error string and
// never aborts the rest of the stream.
type RowValidator interface {
	ValidateAndMap(r io.Reader) domain.ValidationResult
}

// BatchWriter encrypts and persists one batch of validated records under a
// fresh unit of work, tagged with the owning import job.
type BatchWriter interface {
	SaveBatch(ctx context.Context, records []domain.TransactionRecord, importID uuid.UUID) error
}

// StatusNotifier consumes the single status-update notification an import
// run emits when it finishes.
type StatusNotifier interface {
	NotifyStatusUpdate(ctx context.Context, update domain.ImportStatusUpdate) error
}

// TransactionImporter runs one import: validate, batch, persist, notify.
// It never returns an error: every failure ends up in the emitted
// status update.
type TransactionImporter interface {
	Run(ctx context.Context, importID uuid.UUID, r io.Reader)
}

// ImportTask is the unit of work handed to the async dispatcher. Content is
// the fully buffered upload payload.
type ImportTask struct {
	ImportID uuid.UUID
	FileName string
	Content  []byte
}

// ImportDispatcher decouples upload acceptance from the import run. Dispatch
// must only be called after the job-creation write is durably committed.
// It returns an error when the queue is full (backpressure).
type ImportDispatcher interface {
	Dispatch(ctx context.Context, task ImportTask) error
}

// ImportReceipt is the synchronous answer of the upload boundary.
type ImportReceipt struct {
	ID       uuid.UUID
	FileName string
	Status   domain.ImportStatus
}

// ImportService is the job registry boundary: accepts uploads, serves job
// details, applies status updates.
type ImportService interface {
	// ImportFile creates the job record, and on a readable payload
	// dispatches the async run. It always returns a receipt, even when the
	// payload is unreadable or the queue rejected the run — the job then
	// carries status FAILED.
	ImportFile(ctx context.Context, fileName string, payload io.Reader) (*ImportReceipt, error)
	GetImportDetails(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	// ApplyStatusUpdate overwrites the job's status, counters and errors.
	// Idempotent: applying the same update twice leaves the same state.
	ApplyStatusUpdate(ctx context.Context, update domain.ImportStatusUpdate) error
}

// AggregationService serves ad-hoc grouped statistics over the persisted
// transactions.
type AggregationService interface {
	Aggregate(ctx context.Context, filter domain.AggregationFilter) ([]domain.AggregationSummary, error)
}
