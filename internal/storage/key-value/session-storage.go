package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
	"github.com/redis/go-redis/v9"
)

// SessionStorage keeps dialogue sessions in redis as JSON values.
// ttl of zero stores sessions without expiry.
type SessionStorage struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStorage(rdb *redis.Client, ttl time.Duration) *SessionStorage {
	return &SessionStorage{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *SessionStorage) Get(ctx context.Context, userID, chatID int64) (model.Session, error) {
	raw, err := s.rdb.Get(ctx, getSessionKey(userID, chatID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Session{}, model.ErrSessionDoesNotExist
		}
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	var session model.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil {
		return model.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}

func (s *SessionStorage) Put(ctx context.Context, session model.Session) error {
	session.UpdatedAt = time.Now()
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	key := getSessionKey(session.UserID, session.ChatID)
	if err = s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", key, err)
	}
	return nil
}

func (s *SessionStorage) Delete(ctx context.Context, userID, chatID int64) error {
	if err := s.rdb.Del(ctx, getSessionKey(userID, chatID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func getSessionKey(userID, chatID int64) string {
	return fmt.Sprintf("session_%d_%d", userID, chatID)
}
