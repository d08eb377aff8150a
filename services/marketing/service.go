// File: services/marketing/service.go
package marketing

import (
	"context"
	"fmt"
	"strings"

	"detailify/config"
	"detailify/models"
	"detailify/utils"

	"go.uber.org/zap"
)

// Generate writes one piece of content for the requested kind. Identical
// requests within the cache TTL are served from Redis instead of the
// model; every fresh generation is persisted as history.
func (s *DefaultMarketingService) Generate(ctx context.Context, req models.ContentRequest) (*models.MarketingContent, error) {
	logger := utils.GetLogger()

	switch req.Kind {
	case models.ContentKindCaption, models.ContentKindPush, models.ContentKindSEO, models.ContentKindVideoScript:
	default:
		return nil, fmt.Errorf("unknown content kind %q", req.Kind)
	}

	prompt := buildPrompt(req, config.AppConfig.BusinessName, config.AppConfig.BusinessCity)
	promptHash := utils.HashToken(req.Kind + ":" + prompt)

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, promptHash)
		if err != nil {
			logger.Warn("Content cache lookup failed", zap.Error(err))
		}
		if cached != nil {
			cached.Cached = true
			return cached, nil
		}
	}

	text, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", req.Kind, err)
	}

	content := shapeContent(req, prompt, text, s.ModelName)

	id, err := s.Repo.Create(ctx, *content)
	if err != nil {
		return nil, fmt.Errorf("store generated content: %w", err)
	}
	content.ID = id

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, promptHash, content); err != nil {
			logger.Warn("Content cache store failed", zap.Error(err))
		}
	}
	return content, nil
}

// History returns the most recent generations of one kind, newest first.
func (s *DefaultMarketingService) History(ctx context.Context, kind string, limit int64) ([]models.MarketingContent, error) {
	contents, err := s.Repo.ListByKind(ctx, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("list content history: %w", err)
	}
	return contents, nil
}

// Delete removes one stored generation.
func (s *DefaultMarketingService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

// shapeContent splits the raw model output into the fields each kind
// promises: push gets a title line, seo gets a keyword list, everything
// else is a plain body.
func shapeContent(req models.ContentRequest, prompt, text, modelName string) *models.MarketingContent {
	content := &models.MarketingContent{
		Kind:     req.Kind,
		Prompt:   prompt,
		Body:     strings.TrimSpace(text),
		Model:    modelName,
		PhotoURL: req.PhotoURL,
	}

	switch req.Kind {
	case models.ContentKindPush:
		lines := strings.SplitN(content.Body, "\n", 2)
		content.Title = strings.TrimSpace(lines[0])
		if len(lines) > 1 {
			content.Body = strings.TrimSpace(lines[1])
		}
	case models.ContentKindSEO:
		raw := strings.FieldsFunc(content.Body, func(r rune) bool {
			return r == ',' || r == '\n'
		})
		keywords := make([]string, 0, len(raw))
		for _, k := range raw {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		content.Keywords = keywords
	}
	return content
}
