package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a new unique identifier in ObjectID hex form. Top-level
// profiles and embedded sub-entities share the same id scheme.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// Role represents profile roles in the system
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// SkillLevel represents the proficiency level of a skill
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// ConnectionStatus represents the state of a connection entry
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// Endorsement is a peer attestation of a skill, keyed by (skill, endorser)
type Endorsement struct {
	EndorsedBy string    `json:"endorsedBy"`
	EndorsedAt time.Time `json:"endorsedAt"`
}

// Skill is an embedded skill record owned by exactly one Profile
type Skill struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Level             SkillLevel    `json:"level,omitempty"`
	Description       string        `json:"description,omitempty"`
	YearsOfExperience int           `json:"yearsOfExperience,omitempty"`
	Endorsements      []Endorsement `json:"endorsements"`
}

// Project is an embedded project record
type Project struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	ProjectURL   string     `json:"projectUrl,omitempty"`
	RepoURL      string     `json:"githubUrl,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCurrent    bool       `json:"isCurrent"`
	Role         string     `json:"role,omitempty"`
}

// Experience is an embedded work-experience record
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCurrent   bool       `json:"isCurrent"`
	Description string     `json:"description,omitempty"`
}

// Education is an embedded education record
type Education struct {
	ID          string     `json:"id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree,omitempty"`
	Field       string     `json:"field,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// Certification is an embedded certification record
type Certification struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer,omitempty"`
	CredentialID  string     `json:"credentialId,omitempty"`
	CredentialURL string     `json:"credentialUrl,omitempty"`
	IssueDate     *time.Time `json:"issueDate,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
}

// Connection is a directed relationship entry referencing another profile.
// An accepted connection is mirrored as two entries, one in each profile,
// each independently owned.
type Connection struct {
	PeerID      string           `json:"user"`
	Status      ConnectionStatus `json:"status"`
	RequestedAt *time.Time       `json:"requestedAt,omitempty"`
	ConnectedAt *time.Time       `json:"connectedAt,omitempty"`
}

// Profile is the central user/professional record. The credential facet
// (Password, Role, LastLoginAt) is present only on profiles that can
// authenticate; administratively created profiles carry none.
type Profile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Password       string          `json:"-"`
	Role           Role            `json:"role,omitempty"`
	LastLoginAt    *time.Time      `json:"lastLoginAt,omitempty"`
	JobTitle       string          `json:"jobTitle,omitempty"`
	Company        string          `json:"company,omitempty"`
	Department     string          `json:"department,omitempty"`
	Location       string          `json:"location,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	Website        string          `json:"website,omitempty"`
	ProfilePicture string          `json:"profilePicture,omitempty"`
	CoverPicture   string          `json:"coverPicture,omitempty"`
	OpenForWork    bool            `json:"openForWork"`
	ProfileViews   int64           `json:"profileViews"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Certifications []Certification `json:"certifications"`
	Connections    []Connection    `json:"connections,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// HasCredential reports whether the profile can authenticate.
func (p *Profile) HasCredential() bool {
	return p.Password != ""
}

// FindSkill returns the skill with the given sub-id, or nil.
func (p *Profile) FindSkill(id string) *Skill {
	for i := range p.Skills {
		if p.Skills[i].ID == id {
			return &p.Skills[i]
		}
	}
	return nil
}

// FindProject returns the project with the given sub-id, or nil.
func (p *Profile) FindProject(id string) *Project {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i]
		}
	}
	return nil
}

// FindExperience returns the experience with the given sub-id, or nil.
func (p *Profile) FindExperience(id string) *Experience {
	for i := range p.Experiences {
		if p.Experiences[i].ID == id {
			return &p.Experiences[i]
		}
	}
	return nil
}

// FindEducation returns the education entry with the given sub-id, or nil.
func (p *Profile) FindEducation(id string) *Education {
	for i := range p.Education {
		if p.Education[i].ID == id {
			return &p.Education[i]
		}
	}
	return nil
}

// FindCertification returns the certification with the given sub-id, or nil.
func (p *Profile) FindCertification(id string) *Certification {
	for i := range p.Certifications {
		if p.Certifications[i].ID == id {
			return &p.Certifications[i]
		}
	}
	return nil
}

// ConnectionWith returns the connection entry referencing peerID, or nil.
func (p *Profile) ConnectionWith(peerID string) *Connection {
	for i := range p.Connections {
		if p.Connections[i].PeerID == peerID {
			return &p.Connections[i]
		}
	}
	return nil
}

// RemoveConnection strips any entry referencing peerID from the list.
func (p *Profile) RemoveConnection(peerID string) {
	kept := p.Connections[:0]
	for _, c := range p.Connections {
		if c.PeerID != peerID {
			kept = append(kept, c)
		}
	}
	p.Connections = kept
}

// IsEndorsedBy reports whether endorserID already endorsed the skill.
func (s *Skill) IsEndorsedBy(endorserID string) bool {
	for _, e := range s.Endorsements {
		if e.EndorsedBy == endorserID {
			return true
		}
	}
	return false
}

// NormalizeEmail lowercases and trims an email for the uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
