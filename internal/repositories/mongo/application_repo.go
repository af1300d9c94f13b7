package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sustainhire/internship-intake/internal/models"
	"github.com/sustainhire/internship-intake/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const ApplicationCollection = "internship"

type applicationRepo struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) repositories.ApplicationRepository {
	return &applicationRepo{col: db.Collection(ApplicationCollection)}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) (string, error) {
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}

	var id string
	switch v := res.InsertedID.(type) {
	case primitive.ObjectID:
		id = v.Hex()
	case string:
		id = v
	default:
		id = fmt.Sprint(v)
	}
	a.ID = id
	return id, nil
}
