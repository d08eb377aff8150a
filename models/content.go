package models

import "time"

// Marketing content kinds the generator knows how to produce.
const (
	ContentKindCaption     = "caption"
	ContentKindPush        = "push"
	ContentKindSEO         = "seo"
	ContentKindVideoScript = "video_script"
)

// MarketingContent is a stored generation result.
type MarketingContent struct {
	ID        string    `bson:"id" json:"id"`
	Kind      string    `bson:"kind" json:"kind"`
	Prompt    string    `bson:"prompt" json:"-"`
	Body      string    `bson:"body" json:"body"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`       // push notifications only
	Keywords  []string  `bson:"keywords,omitempty" json:"keywords,omitempty"` // seo only
	Model     string    `bson:"model" json:"model"`
	PhotoURL  string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	Cached    bool      `bson:"-" json:"cached,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ContentRequest describes the job a piece of content should be written about.
type ContentRequest struct {
	Kind        string   `json:"kind" binding:"required"`
	Vehicle     string   `json:"vehicle"`
	Package     string   `json:"package"`
	Addons      []string `json:"addons,omitempty"`
	Brief       string   `json:"brief,omitempty"`    // free-form or transcribed voice memo
	PhotoURL    string   `json:"photoUrl,omitempty"` // uploaded job photo
	WeatherNote string   `json:"weatherNote,omitempty"`
	Tone        string   `json:"tone,omitempty"`
}
