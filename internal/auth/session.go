package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Session is the server-side record behind an issued token. Revoking it
// invalidates the token before its JWT expiry.
type Session struct {
	ID          string    `json:"id"`
	PrincipalID string    `json:"principal_id"`
	Email       string    `json:"email,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ErrSessionNotFound indicates a missing, expired or revoked session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps sessions in Redis with a TTL matching token expiry.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore constructs the store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create persists the session until its expiry.
func (s *SessionStore) Create(ctx context.Context, session Session) error {
	if session.ID == "" || session.PrincipalID == "" {
		return errors.New("session missing id or principal")
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, data, ttl).Err()
}

// Get loads a live session, or ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Revoke deletes a session, invalidating its token.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
