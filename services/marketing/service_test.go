package marketing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"detailify/models"
)

type fakeGenerator struct {
	text      string
	err       error
	calls     int
	gotPrompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeGenCache struct {
	hit        *models.MarketingContent
	getKey     string
	setKey     string
	setContent *models.MarketingContent
}

func (f *fakeGenCache) Get(_ context.Context, promptHash string) (*models.MarketingContent, error) {
	f.getKey = promptHash
	if f.hit == nil {
		return nil, nil
	}
	copied := *f.hit
	return &copied, nil
}

func (f *fakeGenCache) Set(_ context.Context, promptHash string, content *models.MarketingContent) error {
	f.setKey = promptHash
	f.setContent = content
	return nil
}

type fakeContentStore struct {
	created   *models.MarketingContent
	createErr error
	listed    []models.MarketingContent
	listKind  string
	listLimit int64
	deletedID string
	deleteErr error
}

func (f *fakeContentStore) Create(_ context.Context, content models.MarketingContent) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = &content
	return "content-1", nil
}

func (f *fakeContentStore) GetByID(_ context.Context, id string) (*models.MarketingContent, error) {
	return nil, errors.New("unexpected GetByID call")
}

func (f *fakeContentStore) ListByKind(_ context.Context, kind string, limit int64) ([]models.MarketingContent, error) {
	f.listKind, f.listLimit = kind, limit
	return f.listed, nil
}

func (f *fakeContentStore) DeleteByID(_ context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func TestBuildPromptCaption(t *testing.T) {
	prompt := buildPrompt(models.ContentRequest{
		Kind:        models.ContentKindCaption,
		Vehicle:     "2021 F-150",
		Package:     "ceramic coating",
		Addons:      []string{"pet hair removal", "engine bay"},
		Brief:       "mud everywhere, came out mirror clean",
		WeatherNote: "Clear, high 84°F, 10% chance of rain",
		Tone:        "playful",
	}, "Detailify Auto Spa", "Chicago")

	for _, want := range []string{
		"Detailify Auto Spa",
		"Chicago",
		"2021 F-150",
		"ceramic coating",
		"pet hair removal, engine bay",
		"mud everywhere, came out mirror clean",
		"Current local weather: Clear, high 84°F, 10% chance of rain.",
		"Tone: playful.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("caption prompt missing %q\nprompt:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptFillsBlanks(t *testing.T) {
	prompt := buildPrompt(models.ContentRequest{Kind: models.ContentKindCaption}, "Detailify Auto Spa", "Chicago")

	for _, want := range []string{
		"a customer vehicle",
		"full detail",
		"Add-ons: none",
		"a spotless result",
		"friendly and confident",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing neutral filler %q\nprompt:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "Current local weather") {
		t.Error("weather line rendered without a weather note")
	}
}

func TestBuildPromptPerKind(t *testing.T) {
	base := models.ContentRequest{Vehicle: "Audi RS6", Package: "paint correction", Brief: "spring special"}

	tests := []struct {
		kind string
		want string
	}{
		{models.ContentKindPush, "push notification"},
		{models.ContentKindSEO, "comma-separated list of 12 keyword phrases"},
		{models.ContentKindVideoScript, "30-second vertical video"},
		{models.ContentKindCaption, "Instagram caption"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			req := base
			req.Kind = tt.kind
			prompt := buildPrompt(req, "Detailify Auto Spa", "Chicago")
			if !strings.Contains(prompt, tt.want) {
				t.Errorf("prompt for %s missing %q", tt.kind, tt.want)
			}
		})
	}
}

func TestShapeContentPushSplitsTitle(t *testing.T) {
	content := shapeContent(
		models.ContentRequest{Kind: models.ContentKindPush},
		"prompt",
		"Shine for Spring\nBook a full detail this week and get 15% off ceramic upgrades.",
		"models/gemini-1.5-pro",
	)

	if content.Title != "Shine for Spring" {
		t.Errorf("Title = %q", content.Title)
	}
	if content.Body != "Book a full detail this week and get 15% off ceramic upgrades." {
		t.Errorf("Body = %q", content.Body)
	}
	if content.Model != "models/gemini-1.5-pro" {
		t.Errorf("Model = %q", content.Model)
	}
}

func TestShapeContentPushSingleLine(t *testing.T) {
	content := shapeContent(
		models.ContentRequest{Kind: models.ContentKindPush},
		"prompt",
		"Just one line",
		"m",
	)
	if content.Title != "Just one line" {
		t.Errorf("Title = %q", content.Title)
	}
	if content.Body != "Just one line" {
		t.Errorf("Body = %q", content.Body)
	}
}

func TestShapeContentSEOKeywords(t *testing.T) {
	content := shapeContent(
		models.ContentRequest{Kind: models.ContentKindSEO},
		"prompt",
		"car detailing chicago, ceramic coating near me,\nmobile detailing loop, , interior shampoo chicago\n",
		"m",
	)

	want := []string{
		"car detailing chicago",
		"ceramic coating near me",
		"mobile detailing loop",
		"interior shampoo chicago",
	}
	if len(content.Keywords) != len(want) {
		t.Fatalf("Keywords = %v, want %v", content.Keywords, want)
	}
	for i := range want {
		if content.Keywords[i] != want[i] {
			t.Errorf("Keywords[%d] = %q, want %q", i, content.Keywords[i], want[i])
		}
	}
}

func TestShapeContentCaptionKeepsBody(t *testing.T) {
	content := shapeContent(
		models.ContentRequest{Kind: models.ContentKindCaption, PhotoURL: "https://cdn.example/jobs/1.jpg"},
		"prompt",
		"  Fresh off the lift and glowing.  ",
		"m",
	)
	if content.Body != "Fresh off the lift and glowing." {
		t.Errorf("Body = %q", content.Body)
	}
	if content.Title != "" || content.Keywords != nil {
		t.Errorf("caption picked up push/seo fields: %+v", content)
	}
	if content.PhotoURL != "https://cdn.example/jobs/1.jpg" {
		t.Errorf("PhotoURL = %q", content.PhotoURL)
	}
}

func TestGenerateRejectsUnknownKind(t *testing.T) {
	gen := &fakeGenerator{}
	svc := NewDefaultMarketingService(gen, nil, &fakeContentStore{}, "m")

	if _, err := svc.Generate(context.Background(), models.ContentRequest{Kind: "haiku"}); err == nil {
		t.Fatal("expected error for unknown content kind")
	}
	if gen.calls != 0 {
		t.Errorf("model called %d times for a rejected kind", gen.calls)
	}
}

func TestGenerateServesCachedCopy(t *testing.T) {
	gen := &fakeGenerator{text: "fresh copy"}
	cache := &fakeGenCache{hit: &models.MarketingContent{
		ID:   "content-0",
		Kind: models.ContentKindCaption,
		Body: "yesterday's caption",
	}}
	repo := &fakeContentStore{}
	svc := NewDefaultMarketingService(gen, cache, repo, "m")

	got, err := svc.Generate(context.Background(), models.ContentRequest{Kind: models.ContentKindCaption})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !got.Cached {
		t.Error("Cached flag not set on a cache hit")
	}
	if got.Body != "yesterday's caption" {
		t.Errorf("Body = %q", got.Body)
	}
	if gen.calls != 0 {
		t.Error("model called despite cache hit")
	}
	if repo.created != nil {
		t.Error("cache hit was persisted again")
	}
}

func TestGeneratePersistsAndCachesFreshContent(t *testing.T) {
	gen := &fakeGenerator{text: "Fresh off the lift."}
	cache := &fakeGenCache{}
	repo := &fakeContentStore{}
	svc := NewDefaultMarketingService(gen, cache, repo, "models/gemini-1.5-pro")

	got, err := svc.Generate(context.Background(), models.ContentRequest{
		Kind:    models.ContentKindCaption,
		Vehicle: "Audi RS6",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got.ID != "content-1" {
		t.Errorf("ID = %q, want the repo-assigned id", got.ID)
	}
	if got.Body != "Fresh off the lift." {
		t.Errorf("Body = %q", got.Body)
	}
	if got.Model != "models/gemini-1.5-pro" {
		t.Errorf("Model = %q", got.Model)
	}
	if got.Cached {
		t.Error("fresh generation marked as cached")
	}
	if !strings.Contains(gen.gotPrompt, "Audi RS6") {
		t.Errorf("rendered prompt missing vehicle:\n%s", gen.gotPrompt)
	}
	if repo.created == nil {
		t.Fatal("generated content not persisted")
	}
	if repo.created.Prompt == "" {
		t.Error("persisted record missing its prompt")
	}
	if cache.setKey == "" || cache.setKey != cache.getKey {
		t.Errorf("cache keyed inconsistently: get %q, set %q", cache.getKey, cache.setKey)
	}
	if cache.setContent == nil || cache.setContent.ID != "content-1" {
		t.Error("cached copy missing the repo-assigned id")
	}
}

func TestGenerateModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exhausted")}
	repo := &fakeContentStore{}
	svc := NewDefaultMarketingService(gen, nil, repo, "m")

	if _, err := svc.Generate(context.Background(), models.ContentRequest{Kind: models.ContentKindSEO}); err == nil {
		t.Fatal("expected model failure to propagate")
	}
	if repo.created != nil {
		t.Error("failed generation was persisted")
	}
}

func TestHistoryPassesFilter(t *testing.T) {
	repo := &fakeContentStore{listed: []models.MarketingContent{{ID: "a"}, {ID: "b"}}}
	svc := NewDefaultMarketingService(&fakeGenerator{}, nil, repo, "m")

	items, err := svc.History(context.Background(), models.ContentKindPush, 5)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
	if repo.listKind != models.ContentKindPush || repo.listLimit != 5 {
		t.Errorf("repo queried with kind=%q limit=%d", repo.listKind, repo.listLimit)
	}
}

func TestDeleteForwardsID(t *testing.T) {
	repo := &fakeContentStore{}
	svc := NewDefaultMarketingService(&fakeGenerator{}, nil, repo, "m")

	if err := svc.Delete(context.Background(), "content-9"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if repo.deletedID != "content-9" {
		t.Errorf("deletedID = %q", repo.deletedID)
	}
}
