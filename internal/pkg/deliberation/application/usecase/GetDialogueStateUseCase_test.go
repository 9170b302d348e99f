package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	cacheport "github.com/maxHolsch/Deliberator/internal/infrastructure/cache/port"
	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

type memCache struct {
	mu   sync.Mutex
	data map[string]string
	gets int
	sets int
}

var _ cacheport.Cache = (*memCache)(nil)

func newMemCache() *memCache { return &memCache{data: map[string]string{}} }

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
	return nil
}

func (c *memCache) Del(ctx context.Context, keys ...string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := c.data[k]; ok {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }
func (c *memCache) Close() error                   { return nil }

func TestGetDialogueState_ServesFromCacheOnSecondRead(t *testing.T) {
	repo := newMemRepo()
	cache := newMemCache()
	uc := NewGetDialogueStateUseCase(repo, cache)
	code, _ := seedDialogue(t, repo, 3)
	ctx := context.Background()

	first, err := uc.Execute(ctx, code)
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if first.ParticipantCount != 3 || first.Status != delib.StatusCollecting {
		t.Fatalf("state = %+v", first)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := uc.Execute(ctx, code)
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if *second != *first {
		t.Errorf("cached state differs: %+v vs %+v", second, first)
	}
	if cache.sets != 1 {
		t.Errorf("second read went past the cache (sets = %d)", cache.sets)
	}
}

func TestGetDialogueState_NilCacheStillWorks(t *testing.T) {
	repo := newMemRepo()
	uc := NewGetDialogueStateUseCase(repo, nil)
	code, _ := seedDialogue(t, repo, 2)

	st, err := uc.Execute(context.Background(), code)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if st.ParticipantCount != 2 {
		t.Errorf("ParticipantCount = %d, want 2", st.ParticipantCount)
	}
}

func TestGetDialogueState_UnknownCode(t *testing.T) {
	uc := NewGetDialogueStateUseCase(newMemRepo(), newMemCache())
	if _, err := uc.Execute(context.Background(), uuid.NewString()[:3]); err == nil {
		t.Fatal("expected error for unknown code")
	}
}
