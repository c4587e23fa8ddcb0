package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute, 2, nil)
	defer rl.Close()

	// Burst capacity of 2 admits two immediate requests
	if !rl.Allow("ip:10.0.0.1") {
		t.Error("first request should be allowed")
	}
	if !rl.Allow("ip:10.0.0.1") {
		t.Error("second request should be allowed")
	}
	if rl.Allow("ip:10.0.0.1") {
		t.Error("third immediate request should be rejected")
	}

	// Other keys have their own bucket
	if !rl.Allow("ip:10.0.0.2") {
		t.Error("different key should have a fresh bucket")
	}
}

func TestRateLimiterStats(t *testing.T) {
	rl := NewRateLimiter(120, time.Minute, 5, nil)
	defer rl.Close()

	rl.Allow("api:key-one")
	rl.Allow("api:key-two")

	stats := rl.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("expected 2 active limiters, got %v", stats["active_limiters"])
	}
	if stats["burst_capacity"] != 5 {
		t.Errorf("expected burst capacity 5, got %v", stats["burst_capacity"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("expected 120 requests/min, got %v", stats["rate_per_minute"])
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute, 1, nil)
	defer rl.Close()

	rl.Allow("ip:10.0.0.1")
	rl.cleanup(0) // evict everything seen before now

	stats := rl.GetStats()
	if stats["active_limiters"] != 0 {
		t.Errorf("expected limiters to be evicted, got %v", stats["active_limiters"])
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		byAPIKey bool
		byIP     bool
		headers  map[string]string
		want     string
	}{
		{
			name:     "api key header preferred",
			byAPIKey: true,
			byIP:     true,
			headers:  map[string]string{"X-API-Key": "abc123"},
			want:     "api:abc123",
		},
		{
			name:     "bearer token as api key",
			byAPIKey: true,
			headers:  map[string]string{"Authorization": "Bearer tok456"},
			want:     "api:tok456",
		},
		{
			name: "ip fallback",
			byIP: true,
			want: "ip:192.0.2.1",
		},
		{
			name: "nothing enabled",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getRateLimitKey(req, tt.byAPIKey, tt.byIP); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := getClientIP(req); got != "203.0.113.7" {
		t.Errorf("expected first forwarded IP, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.4")
	if got := getClientIP(req); got != "198.51.100.4" {
		t.Errorf("expected real IP header value, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if got := getClientIP(req); got != "192.0.2.1" {
		t.Errorf("expected remote addr host, got %q", got)
	}
}
