// File: services/marketing/interface.go
package marketing

import (
	"context"

	contentRepo "detailify/database/repository/content"
	"detailify/models"
)

// MarketingService generates and manages promotional content for the shop.
type MarketingService interface {
	Generate(ctx context.Context, req models.ContentRequest) (*models.MarketingContent, error)
	History(ctx context.Context, kind string, limit int64) ([]models.MarketingContent, error)
	Delete(ctx context.Context, id string) error
	TranscribeBrief(ctx context.Context, wavData []byte, language string) (string, error)
}

// ContentGenerator produces copy for a rendered prompt. Satisfied by
// GeminiClient.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GenerationCache keeps recent generations keyed by prompt fingerprint.
// Satisfied by RedisContentCache.
type GenerationCache interface {
	Get(ctx context.Context, promptHash string) (*models.MarketingContent, error)
	Set(ctx context.Context, promptHash string, content *models.MarketingContent) error
}

// DefaultMarketingService is the production MarketingService. Cache is
// optional; without it every Generate call hits the model.
type DefaultMarketingService struct {
	Generator ContentGenerator
	Cache     GenerationCache
	Repo      contentRepo.ContentRepository
	ModelName string
}

func NewDefaultMarketingService(generator ContentGenerator, cache GenerationCache, repo contentRepo.ContentRepository, modelName string) *DefaultMarketingService {
	return &DefaultMarketingService{
		Generator: generator,
		Cache:     cache,
		Repo:      repo,
		ModelName: modelName,
	}
}
