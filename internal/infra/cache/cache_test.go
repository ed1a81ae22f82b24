package cache_test

import (
	"testing"
	"time"

	"github.com/joaquimoiio/financas-go/internal/infra/cache"
)

func TestCacheSetAndGet(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	c.Set("user-1:2026-03", "summary")
	val, ok := c.Get("user-1:2026-03")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if val != "summary" {
		t.Errorf("expected 'summary', got '%s'", val)
	}
}

func TestCacheMiss(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	if _, ok := c.Get("user-2:2026-03"); ok {
		t.Fatal("expected cache miss for unknown key")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New[string](50 * time.Millisecond)

	c.Set("k", "v")
	time.Sleep(100 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected entry to be expired")
	}
}

func TestCacheDelete(t *testing.T) {
	c := cache.New[string](5 * time.Minute)

	c.Set("k", "v")
	c.Delete("k")

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected key to be deleted")
	}
}

func TestCacheStructValues(t *testing.T) {
	type summary struct {
		Month int
		Total string
	}
	c := cache.New[summary](time.Minute)

	c.Set("user-1:2026-03", summary{Month: 3, Total: "5000"})
	got, ok := c.Get("user-1:2026-03")
	if !ok {
		t.Fatal("expected key to exist")
	}
	if got.Month != 3 || got.Total != "5000" {
		t.Errorf("unexpected value: %+v", got)
	}
}
