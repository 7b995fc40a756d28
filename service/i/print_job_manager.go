package i

import (
	"context"

	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/domain"
)

// PrintJobManager accepts print jobs and exposes their state and output.
type PrintJobManager interface {
	// Submit validates, persists, and enqueues a job for rendering.
	Submit(ctx context.Context, job *domain.PrintJob) error

	// Job retrieves a job by ID.
	Job(id uuid.UUID) (*domain.PrintJob, error)

	// JobsFor retrieves the jobs submitted by a user.
	JobsFor(ownerID uuid.UUID) ([]*domain.PrintJob, error)

	// PagePath returns the storage path of an exported page, or an error
	// if the job has no such page.
	PagePath(job *domain.PrintJob, pageRow, pageCol int) (string, error)
}
