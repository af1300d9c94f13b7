package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sustainhire/internship-intake/internal/models"
	"github.com/sustainhire/internship-intake/internal/repositories"
	"gorm.io/gorm"
)

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		a.ID = ""
		return "", err
	}
	return a.ID, nil
}

// Migrate creates or updates the internship table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Application{})
}
