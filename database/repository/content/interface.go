package contentRepo

import (
	"context"

	"detailify/database"
	"detailify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContentRepository interface {
	Create(ctx context.Context, content models.MarketingContent) (string, error)
	GetByID(ctx context.Context, id string) (*models.MarketingContent, error)
	ListByKind(ctx context.Context, kind string, limit int64) ([]models.MarketingContent, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoContentRepo struct {
	coll *mongo.Collection
}

// NewMongoContentRepo returns a new ContentRepository instance using MongoDB.
func NewMongoContentRepo() ContentRepository {
	return &mongoContentRepo{
		coll: database.Collection("marketing_content"),
	}
}
