// Package session keeps each chat's live query context in memory. Entries
// expire after a period of inactivity; an expired chat starts over from the
// default context.
package session

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/711pranjal/Egnyte-TrustLens/internal/core"
)

type ContextRepository struct {
	cache *cache.Cache
}

// NewContextRepository creates a repository whose entries live for ttl and
// are purged every cleanupInterval.
func NewContextRepository(ttl, cleanupInterval time.Duration) *ContextRepository {
	return &ContextRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Save stores a copy of qc, resetting its expiry.
func (r *ContextRepository) Save(chatID string, qc core.QueryContext) {
	r.cache.Set(chatID, qc.Clone(), cache.DefaultExpiration)
}

func (r *ContextRepository) Get(chatID string) (core.QueryContext, bool) {
	if x, found := r.cache.Get(chatID); found {
		return x.(core.QueryContext).Clone(), true
	}
	return core.QueryContext{}, false
}

func (r *ContextRepository) Delete(chatID string) {
	r.cache.Delete(chatID)
}
