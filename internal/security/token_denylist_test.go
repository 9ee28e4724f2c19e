package security

import (
	"context"
	"testing"
	"time"
)

func TestMemoryTokenDenylist_RevokeAndCheck(t *testing.T) {
	denylist := NewMemoryTokenDenylist()
	ctx := context.Background()

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("unknown token ID should not be revoked")
	}

	if err := denylist.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if !revoked {
		t.Error("revoked token ID should be reported as revoked")
	}
}

func TestMemoryTokenDenylist_ExpiredEntry(t *testing.T) {
	denylist := NewMemoryTokenDenylist()
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "jti-2", time.Millisecond); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	revoked, err := denylist.IsRevoked(ctx, "jti-2")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("entry past its ttl should no longer count as revoked")
	}
}

func TestMemoryTokenDenylist_NonPositiveTTL(t *testing.T) {
	denylist := NewMemoryTokenDenylist()
	ctx := context.Background()

	if err := denylist.Revoke(ctx, "jti-3", 0); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	revoked, err := denylist.IsRevoked(ctx, "jti-3")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("revoking an already-expired token should be a no-op")
	}
}
