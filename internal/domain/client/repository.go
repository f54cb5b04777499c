package client

import (
	"context"

	"github.com/finrecords/financial-records-api/internal/models"
)

// Repository is the persistence boundary for clients. Implementations
// must use bound parameters only and must scope every mutation to
// currently-active rows.
type Repository interface {
	// ListActive returns active clients ordered by created_at descending.
	ListActive(ctx context.Context) ([]models.Client, error)

	// GetByID returns an active client, or nil when missing/soft-deleted.
	GetByID(ctx context.Context, id uint) (*models.Client, error)

	// GetByCode looks up by client_code regardless of active state; used
	// for uniqueness checks, so soft-deleted rows still count.
	GetByCode(ctx context.Context, code string) (*models.Client, error)

	// Create inserts the row and fills in the generated id.
	Create(ctx context.Context, c *models.Client) error

	// Update rewrites the mutable columns of an active row and refreshes
	// updated_at. Returns false when no active row matched.
	Update(ctx context.Context, id uint, c models.Client) (bool, error)

	// SoftDelete flags an active row inactive. Returns false when no
	// active row matched.
	SoftDelete(ctx context.Context, id uint) (bool, error)
}
