package repositories

import (
	"context"

	"github.com/sustainhire/internship-intake/internal/models"
)

// ApplicationRepository is write-only: applications are never read back or changed here.
type ApplicationRepository interface {
	// Insert stores a and returns the generated id. a.ID is set on success.
	Insert(ctx context.Context, a *models.Application) (string, error)
}
