package i

import (
	"github.com/google/uuid"

	"github.com/beka-birhanu/mazeprint-api/domain"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	ByUsername(username string) (*domain.User, error)
}

// PrintJobRepo defines the interface for print job persistence operations.
type PrintJobRepo interface {
	// Save inserts or updates a print job.
	Save(job *domain.PrintJob) error

	// ByID retrieves a print job by its ID.
	ByID(id uuid.UUID) (*domain.PrintJob, error)

	// ByOwner retrieves all print jobs submitted by the given user, newest
	// first.
	ByOwner(ownerID uuid.UUID) ([]*domain.PrintJob, error)
}
