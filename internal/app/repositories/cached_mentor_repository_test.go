package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/cache"
)

type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	gets    int
	sets    int
	lastTTL time.Duration
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return c.getErr
	}
	raw, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.lastTTL = ttl
	c.data[key] = raw
	return nil
}

type countingMentorRepo struct {
	MentorRepository
	finds int
}

func (r *countingMentorRepo) FindByID(ctx context.Context, id string) (*models.Mentor, error) {
	r.finds++
	return r.MentorRepository.FindByID(ctx, id)
}

func TestCachedMentorRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories(NewMemoryStore())
	inner := &countingMentorRepo{MentorRepository: repos.Mentors}
	fc := newFakeCache()
	repo := NewCachedMentorRepository(inner, fc, time.Minute)

	mentor := &models.Mentor{Name: "Alice", Expertise: "Go"}
	require.NoError(t, repo.Create(ctx, mentor))
	require.NotEmpty(t, mentor.ID)
	assert.Equal(t, 1, fc.sets)
	assert.Equal(t, time.Minute, fc.lastTTL)

	got, err := repo.FindByID(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, *mentor, *got)
	assert.Equal(t, 0, inner.finds, "primed entry should be served from cache")
}

func TestCachedMentorRepository_MissFillsCache(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories(NewMemoryStore())
	mentor := &models.Mentor{Name: "Carl", Expertise: "Rust"}
	require.NoError(t, repos.Mentors.Create(ctx, mentor))

	inner := &countingMentorRepo{MentorRepository: repos.Mentors}
	fc := newFakeCache()
	repo := NewCachedMentorRepository(inner, fc, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := repo.FindByID(ctx, mentor.ID)
		require.NoError(t, err)
		assert.Equal(t, "Carl", got.Name)
	}
	assert.Equal(t, 1, inner.finds)
	assert.Contains(t, fc.data, MentorCacheKey(mentor.ID))
}

func TestCachedMentorRepository_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCache()
	repo := NewCachedMentorRepository(NewMemoryRepositories(NewMemoryStore()).Mentors, fc, time.Minute)

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrMentorNotFound)
	assert.Equal(t, 0, fc.sets)
}

func TestCachedMentorRepository_CacheFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	repos := NewMemoryRepositories(NewMemoryStore())
	mentor := &models.Mentor{Name: "Alice", Expertise: "Go"}
	require.NoError(t, repos.Mentors.Create(ctx, mentor))

	fc := newFakeCache()
	fc.getErr = errors.New("connection refused")
	repo := NewCachedMentorRepository(repos.Mentors, fc, time.Minute)

	got, err := repo.FindByID(ctx, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, mentor.ID, got.ID)
}
