// File: services/settings/firestore.go
package settings

import (
	"context"
	"fmt"

	"detailify/models"

	"cloud.google.com/go/firestore"
)

// Firestore location of the single business settings document.
const (
	settingsCollection = "settings"
	settingsDocument   = "business"
)

// FirestoreStore keeps the settings document in Firestore at
// settings/business.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection(settingsCollection).Doc(settingsDocument)
}

func (s *FirestoreStore) Load(ctx context.Context) (*models.BusinessSettings, bool, error) {
	snap, err := s.doc().Get(ctx)
	if err != nil {
		// A missing document is not an error; the service falls back
		// to defaults.
		if snap != nil && !snap.Exists() {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load settings: %w", err)
	}

	var settings models.BusinessSettings
	if err := snap.DataTo(&settings); err != nil {
		return nil, false, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, true, nil
}

func (s *FirestoreStore) Save(ctx context.Context, settings models.BusinessSettings) error {
	if _, err := s.doc().Set(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
