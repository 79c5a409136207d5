package session

import (
	"context"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/session"
	"github.com/google/uuid"
)

var _ session.Store = (*MemoryStore)(nil)

type memoryEntry struct {
	userID    uint64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions are lost on restart.
type MemoryStore struct {
	mu           sync.Mutex
	sessions     map[string]memoryEntry
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewMemoryStore creates a new MemoryStore. A non-positive ttl never expires sessions.
func NewMemoryStore(ttl time.Duration, timeProvider coreport.TimeProvider) *MemoryStore {
	return &MemoryStore{
		sessions:     make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

func (s *MemoryStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.timeProvider.Now().Add(s.ttl)
}

// Create stores a fresh token for the user
func (s *MemoryStore) Create(_ context.Context, userID uint64) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.sessions[token] = memoryEntry{userID: userID, expiresAt: s.expiry()}
	return token, nil
}

// Resolve returns the user bound to token and extends its expiry
func (s *MemoryStore) Resolve(_ context.Context, token string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[token]
	if !ok {
		return 0, errs.ErrSessionNotFound
	}
	if s.expired(entry) {
		delete(s.sessions, token)
		return 0, errs.ErrSessionNotFound
	}

	entry.expiresAt = s.expiry()
	s.sessions[token] = entry
	return entry.userID, nil
}

// Destroy deletes the session; unknown tokens are ignored
func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !s.timeProvider.Now().Before(entry.expiresAt)
}

// sweep drops expired sessions. Callers hold mu.
func (s *MemoryStore) sweep() {
	for token, entry := range s.sessions {
		if s.expired(entry) {
			delete(s.sessions, token)
		}
	}
}
