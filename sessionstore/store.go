package sessionstore

import (
	"context"
	"errors"

	"github.com/Kariqs/bakebites/models"
)

var ErrNotFound = errors.New("visitor session not found")

// Store keeps visitor sessions between requests. Load returns ErrNotFound
// for unknown or expired ids.
type Store interface {
	Load(ctx context.Context, id string) (*models.VisitorSession, error)
	Save(ctx context.Context, visitor *models.VisitorSession) error
	Delete(ctx context.Context, id string) error
}
