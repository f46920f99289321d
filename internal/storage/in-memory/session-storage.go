package in_memory

import (
	"context"
	"sync"
	"time"

	"github.com/iamvkosarev/role-distributor-bot/internal/model"
)

type sessionKey struct {
	userID int64
	chatID int64
}

// SessionStorage keeps dialogue sessions in a map. ttl of zero means
// sessions never expire.
type SessionStorage struct {
	mu       sync.Mutex
	sessions map[sessionKey]model.Session
	ttl      time.Duration
}

func NewSessionStorage(ttl time.Duration) *SessionStorage {
	return &SessionStorage{
		sessions: make(map[sessionKey]model.Session),
		ttl:      ttl,
	}
}

func (s *SessionStorage) Get(_ context.Context, userID, chatID int64) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey{userID: userID, chatID: chatID}
	session, ok := s.sessions[key]
	if !ok {
		return model.Session{}, model.ErrSessionDoesNotExist
	}
	if s.ttl > 0 && time.Since(session.UpdatedAt) > s.ttl {
		delete(s.sessions, key)
		return model.Session{}, model.ErrSessionDoesNotExist
	}
	return session, nil
}

func (s *SessionStorage) Put(_ context.Context, session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.UpdatedAt = time.Now()
	s.sessions[sessionKey{userID: session.UserID, chatID: session.ChatID}] = session
	return nil
}

func (s *SessionStorage) Delete(_ context.Context, userID, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey{userID: userID, chatID: chatID})
	return nil
}
