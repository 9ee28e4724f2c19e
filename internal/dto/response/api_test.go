package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

func TestNewSuccess(t *testing.T) {
	resp := NewSuccess("hello")
	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.Data != "hello" {
		t.Errorf("expected data 'hello', got %q", resp.Data)
	}
	if resp.Error != "" {
		t.Errorf("expected empty error, got %q", resp.Error)
	}
}

func TestNewSuccessWithToken(t *testing.T) {
	resp := NewSuccessWithToken(42, "tok-123")
	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.Token != "tok-123" {
		t.Errorf("expected token 'tok-123', got %q", resp.Token)
	}
	if resp.Data != 42 {
		t.Errorf("expected data 42, got %d", resp.Data)
	}
}

func TestNewSuccessWithCount(t *testing.T) {
	resp := NewSuccessWithCount([]string{"a", "b"}, 2)
	if resp.Count == nil || *resp.Count != 2 {
		t.Errorf("expected count 2, got %v", resp.Count)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"count":2`) {
		t.Errorf("expected count in payload, got %s", raw)
	}
}

func TestNewSuccessWithCountZero(t *testing.T) {
	resp := NewSuccessWithCount([]string{}, 0)

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	// zero counts must survive serialization for empty result sets
	if !strings.Contains(string(raw), `"count":0`) {
		t.Errorf("expected count 0 in payload, got %s", raw)
	}
}

func TestNewError(t *testing.T) {
	resp := NewError[any]("something broke")
	if resp.Success {
		t.Error("expected success to be false")
	}
	if resp.Error != "something broke" {
		t.Errorf("expected error message, got %q", resp.Error)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "token") || strings.Contains(string(raw), "count") {
		t.Errorf("error payload should omit empty fields, got %s", raw)
	}
}

func TestNewMessage(t *testing.T) {
	resp := NewMessage("logged out")
	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.Message != "logged out" {
		t.Errorf("expected message, got %q", resp.Message)
	}
}

func TestProfileResponseOmitsPassword(t *testing.T) {
	p := &entity.Profile{
		ID:       "68b0000000000000000000aa",
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "$2a$12$secret-hash",
		Role:     entity.RoleUser,
	}

	raw, err := json.Marshal(NewProfileResponse(p))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "secret-hash") || strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Errorf("profile response must not carry the password, got %s", raw)
	}
}

func TestPublicProfileResponseStripsConnections(t *testing.T) {
	now := time.Now()
	p := &entity.Profile{
		ID:    "68b0000000000000000000aa",
		Name:  "Dana Smith",
		Email: "dana@example.com",
		Connections: []entity.Connection{
			{PeerID: "68b0000000000000000000bb", Status: entity.ConnectionAccepted, ConnectedAt: &now},
		},
	}

	public := NewPublicProfileResponse(p)
	if public.Connections != nil {
		t.Error("public projection must not expose connections")
	}

	owner := NewProfileResponse(p)
	if len(owner.Connections) != 1 {
		t.Errorf("owner projection should carry connections, got %d", len(owner.Connections))
	}
}

func TestNewConnectionPeer(t *testing.T) {
	p := &entity.Profile{
		ID:             "68b0000000000000000000bb",
		Name:           "Alex Chen",
		Email:          "alex@example.com",
		JobTitle:       "Engineer",
		Department:     "Platform",
		Location:       "Berlin",
		ProfilePicture: "https://cdn.example.com/alex.png",
	}

	peer := NewConnectionPeer(p)
	if peer.ID != p.ID || peer.Name != "Alex Chen" || peer.JobTitle != "Engineer" {
		t.Errorf("unexpected peer projection: %+v", peer)
	}

	raw, err := json.Marshal(peer)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "email") {
		t.Errorf("peer projection must not expose email, got %s", raw)
	}
}
