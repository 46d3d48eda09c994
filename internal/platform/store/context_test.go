package store

import (
	"context"
	"testing"
)

// TestSiteHost_SetAndGet sets a site host and retrieves it
func TestSiteHost_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithSiteHost(base, "example.com")

	host, ok := SiteHost(ctx)
	if !ok {
		t.Fatalf("SiteHost not found")
	}
	if host != "example.com" {
		t.Fatalf("SiteHost mismatch got=%q want=%q", host, "example.com")
	}
}

// TestSiteHost_EmptyString reports false when empty string is stored
func TestSiteHost_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithSiteHost(context.Background(), "")

	host, ok := SiteHost(ctx)
	if ok {
		t.Fatalf("SiteHost ok should be false for empty value")
	}
	if host != "" {
		t.Fatalf("SiteHost should be empty got=%q", host)
	}
}

// TestSiteHost_NotPresent returns false on base context
func TestSiteHost_NotPresent(t *testing.T) {
	t.Parallel()

	host, ok := SiteHost(context.Background())
	if ok || host != "" {
		t.Fatalf("SiteHost should be absent on base context")
	}
}

// TestSiteHost_NoLeak ensures adding value returns a new ctx and base has no value
func TestSiteHost_NoLeak(t *testing.T) {
	t.Parallel()

	base := context.Background()
	_ = WithSiteHost(base, "example.com")

	host, ok := SiteHost(base)
	if ok || host != "" {
		t.Fatalf("base context should not have site host value")
	}
}

// TestRequestID_SetAndGet sets a request id and retrieves it
func TestRequestID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithRequestID(base, "req-123")

	id, ok := RequestID(ctx)
	if !ok {
		t.Fatalf("RequestID not found")
	}
	if id != "req-123" {
		t.Fatalf("RequestID mismatch got=%q want=%q", id, "req-123")
	}
}

// TestRequestID_EmptyString reports false when empty string is stored
func TestRequestID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "")

	id, ok := RequestID(ctx)
	if ok {
		t.Fatalf("RequestID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("RequestID should be empty got=%q", id)
	}
}

// TestRequestID_NotPresent returns false on base context
func TestRequestID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := RequestID(context.Background())
	if ok || id != "" {
		t.Fatalf("RequestID should be absent on base context")
	}
}

// TestKeys_Isolation ensures site and request keys do not collide
func TestKeys_Isolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithSiteHost(ctx, "example.com")
	ctx = WithRequestID(ctx, "req-123")

	host, hok := SiteHost(ctx)
	req, rok := RequestID(ctx)

	if !hok || host != "example.com" {
		t.Fatalf("SiteHost mismatch hok=%v host=%q", hok, host)
	}
	if !rok || req != "req-123" {
		t.Fatalf("RequestID mismatch rok=%v req=%q", rok, req)
	}
}
