package contentRepo

import (
	"context"
	"errors"
	"time"

	"detailify/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a generated piece of content and returns its ID.
func (r *mongoContentRepo) Create(ctx context.Context, content models.MarketingContent) (string, error) {
	if content.ID == "" {
		content.ID = uuid.New().String()
	}
	content.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, content)
	if err != nil {
		return "", err
	}
	return content.ID, nil
}

// GetByID returns a content record by its ID.
func (r *mongoContentRepo) GetByID(ctx context.Context, id string) (*models.MarketingContent, error) {
	var content models.MarketingContent
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&content)
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// ListByKind returns the most recent content of one kind, newest first.
// An empty kind matches everything.
func (r *mongoContentRepo) ListByKind(ctx context.Context, kind string, limit int64) ([]models.MarketingContent, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contents []models.MarketingContent
	if err := cursor.All(ctx, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// DeleteByID removes a content record by ID.
func (r *mongoContentRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("content not found")
	}
	return nil
}
