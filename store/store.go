// Package store defines the persistence interfaces for users and tasks and
// their MongoDB implementations. Handlers depend on the interfaces only.
package store

import (
	"context"
	"errors"

	"taskmanager/models"
)

var (
	// ErrNotFound is returned when no document matches. For tasks this
	// covers both an unknown id and a document owned by someone else, so
	// callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when the unique email index rejects an
	// insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore persists registered accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TaskStore persists tasks. Every per-id operation takes the owner's id and
// matches only documents belonging to that owner.
type TaskStore interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	GetByID(ctx context.Context, id, ownerID string) (*models.Task, error)
	Replace(ctx context.Context, id, ownerID string, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id, ownerID string) (*models.Task, error)
}
