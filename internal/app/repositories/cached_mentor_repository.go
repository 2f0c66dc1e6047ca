package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/cache"
	"github.com/yigit/mentorhub/internal/pkg/logger"
)

// Cache is the subset of the redis cache the mentor decorator needs
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// MentorCacheKey builds the cache key of a mentor
func MentorCacheKey(id string) string {
	return "mentor:" + id
}

// CachedMentorRepository serves FindByID from the cache before the store.
// Mentors are never updated or deleted, so entries need no invalidation;
// the ttl only bounds memory use.
type CachedMentorRepository struct {
	next  MentorRepository
	cache Cache
	ttl   time.Duration
}

// NewCachedMentorRepository wraps next with a read-through cache
func NewCachedMentorRepository(next MentorRepository, c Cache, ttl time.Duration) *CachedMentorRepository {
	return &CachedMentorRepository{next: next, cache: c, ttl: ttl}
}

// Create writes through to the store and primes the cache
func (r *CachedMentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	if err := r.next.Create(ctx, mentor); err != nil {
		return err
	}
	r.store(ctx, mentor)
	return nil
}

// FindByID returns the cached mentor, falling back to the store on a miss or cache failure.
// Not-found results are not cached.
func (r *CachedMentorRepository) FindByID(ctx context.Context, id string) (*models.Mentor, error) {
	var cached models.Mentor
	err := r.cache.Get(ctx, MentorCacheKey(id), &cached)
	switch {
	case err == nil:
		return &cached, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		logger.Warn().Err(err).Str("mentorID", id).Msg("Mentor cache read failed, using store")
	}

	mentor, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, mentor)
	return mentor, nil
}

func (r *CachedMentorRepository) store(ctx context.Context, mentor *models.Mentor) {
	if err := r.cache.Set(ctx, MentorCacheKey(mentor.ID), mentor, r.ttl); err != nil {
		logger.Warn().Err(err).Str("mentorID", mentor.ID).Msg("Mentor cache write failed")
	}
}
