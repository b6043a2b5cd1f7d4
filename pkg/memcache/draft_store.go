package mem

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"myguide/internal/planner"
)

// Draft is a generated itinerary waiting to be saved as a journey.
type Draft struct {
	ID        string
	UserID    string
	Seed      int64
	Params    planner.TripParameters
	Itinerary *planner.GeneratedItinerary
	CreatedAt time.Time
}

type DraftStore interface {
	Put(d *Draft)

	// Get reads a draft without removing it. Returns false if missing/expired.
	Get(id string) (*Draft, bool)

	// Take removes and returns the draft of userID together with its expiry.
	// A draft owned by someone else is left untouched and reported missing.
	Take(id, userID string) (*Draft, time.Time, bool)

	// Restore puts a taken draft back until expiresAt. Already expired drafts
	// are dropped.
	Restore(d *Draft, expiresAt time.Time)
}

type Drafts struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewDrafts keeps drafts for ttl; expired entries are swept every ttl.
func NewDrafts(ttl time.Duration) *Drafts {
	return &Drafts{
		cache: cache.New(ttl, ttl),
	}
}

func (s *Drafts) Put(d *Draft) {
	s.cache.Set(d.ID, d, cache.DefaultExpiration)
}

func (s *Drafts) Get(id string) (*Draft, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Draft), true
}

func (s *Drafts) Take(id, userID string) (*Draft, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, expiresAt, ok := s.cache.GetWithExpiration(id)
	if !ok {
		return nil, time.Time{}, false
	}
	d := v.(*Draft)
	if d.UserID != userID {
		return nil, time.Time{}, false
	}
	s.cache.Delete(id)
	return d, expiresAt, true
}

func (s *Drafts) Restore(d *Draft, expiresAt time.Time) {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	s.cache.Set(d.ID, d, ttl)
}
