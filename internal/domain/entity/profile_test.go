package entity

import (
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "alice@example.com", "alice@example.com"},
		{"mixed case", "Alice@Example.COM", "alice@example.com"},
		{"surrounding whitespace", "  bob@example.com \t", "bob@example.com"},
		{"case and whitespace", " Carol@Example.com ", "carol@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEmail(tt.input); got != tt.expected {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProfile_HasCredential(t *testing.T) {
	p := &Profile{Name: "Test", Email: "test@example.com"}
	if p.HasCredential() {
		t.Error("profile without password hash should have no credential facet")
	}
	p.Password = "$2a$12$hash"
	if !p.HasCredential() {
		t.Error("profile with password hash should have a credential facet")
	}
}

func TestProfile_FindSkill(t *testing.T) {
	p := &Profile{
		Skills: []Skill{
			{ID: "s1", Name: "Go"},
			{ID: "s2", Name: "Rust"},
		},
	}

	if got := p.FindSkill("s2"); got == nil || got.Name != "Rust" {
		t.Errorf("FindSkill(s2) = %v, want Rust", got)
	}
	if got := p.FindSkill("missing"); got != nil {
		t.Errorf("FindSkill(missing) = %v, want nil", got)
	}
}

func TestProfile_FindSkill_ReturnsMutablePointer(t *testing.T) {
	p := &Profile{Skills: []Skill{{ID: "s1", Name: "Go"}}}

	skill := p.FindSkill("s1")
	skill.Level = LevelExpert

	if p.Skills[0].Level != LevelExpert {
		t.Error("FindSkill should return a pointer into the parent's slice")
	}
}

func TestProfile_ConnectionWith(t *testing.T) {
	now := time.Now()
	p := &Profile{
		Connections: []Connection{
			{PeerID: "a", Status: ConnectionPending, RequestedAt: &now},
			{PeerID: "b", Status: ConnectionAccepted, ConnectedAt: &now},
		},
	}

	if got := p.ConnectionWith("b"); got == nil || got.Status != ConnectionAccepted {
		t.Errorf("ConnectionWith(b) = %v, want accepted entry", got)
	}
	if got := p.ConnectionWith("c"); got != nil {
		t.Errorf("ConnectionWith(c) = %v, want nil", got)
	}
}

func TestProfile_RemoveConnection(t *testing.T) {
	p := &Profile{
		Connections: []Connection{
			{PeerID: "a", Status: ConnectionPending},
			{PeerID: "b", Status: ConnectionAccepted},
			{PeerID: "c", Status: ConnectionAccepted},
		},
	}

	p.RemoveConnection("b")

	if len(p.Connections) != 2 {
		t.Fatalf("RemoveConnection left %d entries, want 2", len(p.Connections))
	}
	if p.ConnectionWith("b") != nil {
		t.Error("RemoveConnection should strip all entries for the peer")
	}

	// Removing an absent peer is a no-op
	p.RemoveConnection("missing")
	if len(p.Connections) != 2 {
		t.Errorf("removing an absent peer changed the list: %d entries", len(p.Connections))
	}
}

func TestSkill_IsEndorsedBy(t *testing.T) {
	s := &Skill{
		ID:   "s1",
		Name: "Go",
		Endorsements: []Endorsement{
			{EndorsedBy: "peer-1", EndorsedAt: time.Now()},
		},
	}

	if !s.IsEndorsedBy("peer-1") {
		t.Error("IsEndorsedBy should find the existing endorser")
	}
	if s.IsEndorsedBy("peer-2") {
		t.Error("IsEndorsedBy should not match an absent endorser")
	}
}

func TestProfile_FindSubEntities(t *testing.T) {
	p := &Profile{
		Projects:       []Project{{ID: "p1", Title: "API"}},
		Experiences:    []Experience{{ID: "x1", Title: "Engineer"}},
		Education:      []Education{{ID: "e1", Institution: "MIT"}},
		Certifications: []Certification{{ID: "c1", Name: "CKA"}},
	}

	if p.FindProject("p1") == nil || p.FindProject("nope") != nil {
		t.Error("FindProject lookup mismatch")
	}
	if p.FindExperience("x1") == nil || p.FindExperience("nope") != nil {
		t.Error("FindExperience lookup mismatch")
	}
	if p.FindEducation("e1") == nil || p.FindEducation("nope") != nil {
		t.Error("FindEducation lookup mismatch")
	}
	if p.FindCertification("c1") == nil || p.FindCertification("nope") != nil {
		t.Error("FindCertification lookup mismatch")
	}
}
