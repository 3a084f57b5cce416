package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mangedesk/internal/shared/errors"
)

// ResetTokenStore keeps single-use password reset tokens in Redis with a TTL
// matching the configured expiry.
type ResetTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResetTokenStore(client *redis.Client, ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{client: client, ttl: ttl}
}

// Issue creates a fresh token for the user and stores it with the TTL.
func (s *ResetTokenStore) Issue(ctx context.Context, userID uint) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, nil
}

// Consume resolves the token to a user id and deletes it so it cannot be
// replayed.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (uint, error) {
	var userID uint
	err := s.client.GetDel(ctx, s.key(token)).Scan(&userID)
	if err == redis.Nil {
		return 0, errors.NewUnauthorizedError("reset token is invalid or expired")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to consume reset token: %w", err)
	}

	return userID, nil
}

func (s *ResetTokenStore) key(token string) string {
	return "pwreset:" + token
}
