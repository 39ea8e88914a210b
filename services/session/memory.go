package session

import (
	"context"
	"sync"
	"time"

	"casexpert/models"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process. With ttl == 0 sessions never expire.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, email string, role models.Role) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = models.Session{Token: token, Email: email, Role: role, CreatedAt: s.now()}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUnauthorized
	}
	if s.ttl > 0 && s.now().Sub(sess.CreatedAt) > s.ttl {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrUnauthorized
	}
	return &sess, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
