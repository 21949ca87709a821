package rate_limiter

import (
	"context"
	"testing"
	"time"
)

func TestHostRateLimiter_SeparateHostsDoNotBlock(t *testing.T) {
	limiter := NewHostRateLimiter(500*time.Millisecond, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := limiter.WaitForHost(ctx, "https://a.example.com/feed.xml"); err != nil {
		t.Fatalf("first host should not wait: %v", err)
	}
	if err := limiter.WaitForHost(ctx, "https://b.example.com/feed.xml"); err != nil {
		t.Fatalf("distinct host should not wait: %v", err)
	}
}

func TestHostRateLimiter_SameHostIsThrottled(t *testing.T) {
	limiter := NewHostRateLimiter(time.Hour, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.WaitForHost(ctx, "https://a.example.com/feed.xml"); err != nil {
		t.Fatalf("first fetch should pass immediately: %v", err)
	}

	// Second fetch to the same host must block past the context deadline.
	err := limiter.WaitForHost(ctx, "https://a.example.com/other.xml")
	if err == nil {
		t.Fatal("expected second fetch to the same host to be throttled")
	}
}

func TestHostRateLimiter_RejectsHostlessURL(t *testing.T) {
	limiter := NewHostRateLimiter(time.Second, 1)

	if err := limiter.WaitForHost(context.Background(), "/relative/path"); err == nil {
		t.Fatal("expected error for URL without host")
	}
}
