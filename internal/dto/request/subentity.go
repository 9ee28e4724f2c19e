package request

import "time"

// AddSkillRequest represents a skill addition
type AddSkillRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	Level             string `json:"level,omitempty" binding:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Description       string `json:"description,omitempty" binding:"max=1000"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty" binding:"gte=0,lte=80"`
}

// UpdateSkillRequest is a shallow merge; nil leaves the field unchanged.
// Endorsements are never writable through this path.
type UpdateSkillRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Level             *string `json:"level,omitempty" binding:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Description       *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty" binding:"omitempty,gte=0,lte=80"`
}

// EndorseSkillRequest identifies the endorsing profile
type EndorseSkillRequest struct {
	EndorserID string `json:"endorserId" binding:"required"`
}

// AddProjectRequest represents a project addition
type AddProjectRequest struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Description  string     `json:"description,omitempty" binding:"max=2000"`
	Technologies []string   `json:"technologies,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty" binding:"max=500"`
	ProjectURL   string     `json:"projectUrl,omitempty" binding:"max=500"`
	RepoURL      string     `json:"githubUrl,omitempty" binding:"max=500"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCurrent    bool       `json:"isCurrent,omitempty"`
	Role         string     `json:"role,omitempty" binding:"max=100"`
}

// UpdateProjectRequest is a shallow merge; nil leaves the field unchanged.
type UpdateProjectRequest struct {
	Title        *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	Technologies *[]string  `json:"technologies,omitempty"`
	ImageURL     *string    `json:"imageUrl,omitempty" binding:"omitempty,max=500"`
	ProjectURL   *string    `json:"projectUrl,omitempty" binding:"omitempty,max=500"`
	RepoURL      *string    `json:"githubUrl,omitempty" binding:"omitempty,max=500"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	IsCurrent    *bool      `json:"isCurrent,omitempty"`
	Role         *string    `json:"role,omitempty" binding:"omitempty,max=100"`
}

// AddExperienceRequest represents a work-experience addition
type AddExperienceRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Company     string     `json:"company,omitempty" binding:"max=100"`
	Location    string     `json:"location,omitempty" binding:"max=100"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCurrent   bool       `json:"isCurrent,omitempty"`
	Description string     `json:"description,omitempty" binding:"max=2000"`
}

// UpdateExperienceRequest is a shallow merge; nil leaves the field unchanged.
type UpdateExperienceRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Company     *string    `json:"company,omitempty" binding:"omitempty,max=100"`
	Location    *string    `json:"location,omitempty" binding:"omitempty,max=100"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCurrent   *bool      `json:"isCurrent,omitempty"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
}

// AddEducationRequest represents an education addition
type AddEducationRequest struct {
	Institution string     `json:"institution" binding:"required,max=200"`
	Degree      string     `json:"degree,omitempty" binding:"max=100"`
	Field       string     `json:"field,omitempty" binding:"max=100"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// UpdateEducationRequest is a shallow merge; nil leaves the field unchanged.
type UpdateEducationRequest struct {
	Institution *string    `json:"institution,omitempty" binding:"omitempty,max=200"`
	Degree      *string    `json:"degree,omitempty" binding:"omitempty,max=100"`
	Field       *string    `json:"field,omitempty" binding:"omitempty,max=100"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// AddCertificationRequest represents a certification addition
type AddCertificationRequest struct {
	Name          string     `json:"name" binding:"required,max=200"`
	Issuer        string     `json:"issuer,omitempty" binding:"max=200"`
	CredentialID  string     `json:"credentialId,omitempty" binding:"max=200"`
	CredentialURL string     `json:"credentialUrl,omitempty" binding:"max=500"`
	IssueDate     *time.Time `json:"issueDate,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
}

// UpdateCertificationRequest is a shallow merge; nil leaves the field unchanged.
type UpdateCertificationRequest struct {
	Name          *string    `json:"name,omitempty" binding:"omitempty,max=200"`
	Issuer        *string    `json:"issuer,omitempty" binding:"omitempty,max=200"`
	CredentialID  *string    `json:"credentialId,omitempty" binding:"omitempty,max=200"`
	CredentialURL *string    `json:"credentialUrl,omitempty" binding:"omitempty,max=500"`
	IssueDate     *time.Time `json:"issueDate,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
}
