package data

import (
	"time"

	"github.com/VinothKuppanna/gastimator/internal/cache"
	"github.com/VinothKuppanna/gastimator/pkg/domain"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type SessionTTL time.Duration

// SessionsRepository keeps form sessions in memory only; they vanish on
// expiry or restart.
type SessionsRepository struct {
	sessions *gocache.Cache
}

func NewSessionsRepository(ttl SessionTTL) *SessionsRepository {
	return &SessionsRepository{cache.New(time.Duration(ttl))}
}

// Find returns the session with id and refreshes its expiry.
func (r *SessionsRepository) Find(id string) (*domain.Session, bool) {
	if len(id) == 0 {
		return nil, false
	}
	value, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	session := value.(*domain.Session)
	r.sessions.SetDefault(id, session)
	return session, true
}

func (r *SessionsRepository) Create() *domain.Session {
	session := domain.NewSession(uuid.NewString())
	r.sessions.SetDefault(session.ID, session)
	return session
}

// FindOrCreate returns the session with id, or a fresh one when it is unknown or expired.
func (r *SessionsRepository) FindOrCreate(id string) (session *domain.Session, created bool) {
	if session, ok := r.Find(id); ok {
		return session, false
	}
	return r.Create(), true
}

func (r *SessionsRepository) Count() int {
	return r.sessions.ItemCount()
}
