// Package document defines MongoDB document structs for persistence.
// These structs are separate from domain entities to allow for MongoDB-specific
// optimizations and to maintain clean separation of concerns.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EndorsementDocument represents a skill endorsement in MongoDB.
type EndorsementDocument struct {
	EndorsedBy primitive.ObjectID `bson:"endorsed_by"`
	EndorsedAt time.Time          `bson:"endorsed_at"`
}

// SkillDocument represents an embedded skill in MongoDB.
type SkillDocument struct {
	ID                primitive.ObjectID    `bson:"_id"`
	Name              string                `bson:"name"`
	Level             string                `bson:"level,omitempty"`
	Description       string                `bson:"description,omitempty"`
	YearsOfExperience int                   `bson:"years_of_experience,omitempty"`
	Endorsements      []EndorsementDocument `bson:"endorsements"`
}

// ProjectDocument represents an embedded project in MongoDB.
type ProjectDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	Technologies []string           `bson:"technologies,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	ProjectURL   string             `bson:"project_url,omitempty"`
	RepoURL      string             `bson:"repo_url,omitempty"`
	StartDate    *time.Time         `bson:"start_date,omitempty"`
	EndDate      *time.Time         `bson:"end_date,omitempty"`
	IsCurrent    bool               `bson:"is_current"`
	Role         string             `bson:"role,omitempty"`
}

// ExperienceDocument represents an embedded work experience in MongoDB.
type ExperienceDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Company     string             `bson:"company,omitempty"`
	Location    string             `bson:"location,omitempty"`
	StartDate   *time.Time         `bson:"start_date,omitempty"`
	EndDate     *time.Time         `bson:"end_date,omitempty"`
	IsCurrent   bool               `bson:"is_current"`
	Description string             `bson:"description,omitempty"`
}

// EducationDocument represents an embedded education entry in MongoDB.
type EducationDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Institution string             `bson:"institution"`
	Degree      string             `bson:"degree,omitempty"`
	Field       string             `bson:"field,omitempty"`
	StartDate   *time.Time         `bson:"start_date,omitempty"`
	EndDate     *time.Time         `bson:"end_date,omitempty"`
}

// CertificationDocument represents an embedded certification in MongoDB.
type CertificationDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Issuer        string             `bson:"issuer,omitempty"`
	CredentialID  string             `bson:"credential_id,omitempty"`
	CredentialURL string             `bson:"credential_url,omitempty"`
	IssueDate     *time.Time         `bson:"issue_date,omitempty"`
	ExpiryDate    *time.Time         `bson:"expiry_date,omitempty"`
}

// ConnectionDocument represents an embedded connection entry in MongoDB.
type ConnectionDocument struct {
	PeerID      primitive.ObjectID `bson:"peer_id"`
	Status      string             `bson:"status"`
	RequestedAt *time.Time         `bson:"requested_at,omitempty"`
	ConnectedAt *time.Time         `bson:"connected_at,omitempty"`
}

// ProfileDocument represents a profile in MongoDB with all embedded
// sub-entities.
type ProfileDocument struct {
	ID             primitive.ObjectID      `bson:"_id,omitempty"`
	Name           string                  `bson:"name"`
	Email          string                  `bson:"email"`
	Password       string                  `bson:"password,omitempty"`
	Role           string                  `bson:"role,omitempty"`
	LastLoginAt    *time.Time              `bson:"last_login_at,omitempty"`
	JobTitle       string                  `bson:"job_title,omitempty"`
	Company        string                  `bson:"company,omitempty"`
	Department     string                  `bson:"department,omitempty"`
	Location       string                  `bson:"location,omitempty"`
	Bio            string                  `bson:"bio,omitempty"`
	Website        string                  `bson:"website,omitempty"`
	ProfilePicture string                  `bson:"profile_picture,omitempty"`
	CoverPicture   string                  `bson:"cover_picture,omitempty"`
	OpenForWork    bool                    `bson:"open_for_work"`
	ProfileViews   int64                   `bson:"profile_views"`
	Skills         []SkillDocument         `bson:"skills"`
	Projects       []ProjectDocument       `bson:"projects"`
	Experiences    []ExperienceDocument    `bson:"experiences"`
	Education      []EducationDocument     `bson:"education"`
	Certifications []CertificationDocument `bson:"certifications"`
	Connections    []ConnectionDocument    `bson:"connections"`
	CreatedAt      time.Time               `bson:"created_at"`
	UpdatedAt      time.Time               `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for profiles.
func (ProfileDocument) CollectionName() string {
	return "profiles"
}
