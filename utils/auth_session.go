// File: detailify/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const OwnerSessionPrefix = "ownerSession:"

// OwnerSessionTTL is how long an owner login stays valid without re-auth.
const OwnerSessionTTL = 24 * time.Hour

// OwnerSession is the server-side record of an owner login. It is keyed
// by the SHA-256 hash of the issued JWT so a leaked Redis dump never
// exposes a usable token.
type OwnerSession struct {
	Email         string    `json:"email"`
	IP            string    `json:"ip"`
	UserAgent     string    `json:"userAgent,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveOwnerSession saves the owner session in Redis with a TTL.
func SaveOwnerSession(client *redis.Client, tokenHash string, session OwnerSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal owner session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, OwnerSessionPrefix+tokenHash, data, OwnerSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save owner session: %w", err)
	}
	return nil
}

// GetOwnerSession retrieves the owner session from Redis.
func GetOwnerSession(client *redis.Client, tokenHash string) (*OwnerSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, OwnerSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session OwnerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal owner session: %w", err)
	}
	return &session, nil
}

// DeleteOwnerSession removes an owner session from Redis.
func DeleteOwnerSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, OwnerSessionPrefix+tokenHash).Err()
}
