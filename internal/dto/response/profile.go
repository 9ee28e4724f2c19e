package response

import (
	"time"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

// ProfileResponse is the wire projection of a Profile. The password hash is
// never part of it; connections are included only on the owner's own reads
// and nested-mutation results.
type ProfileResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Role           string                 `json:"role,omitempty"`
	LastLoginAt    *time.Time             `json:"lastLoginAt,omitempty"`
	JobTitle       string                 `json:"jobTitle,omitempty"`
	Company        string                 `json:"company,omitempty"`
	Department     string                 `json:"department,omitempty"`
	Location       string                 `json:"location,omitempty"`
	Bio            string                 `json:"bio,omitempty"`
	Website        string                 `json:"website,omitempty"`
	ProfilePicture string                 `json:"profilePicture,omitempty"`
	CoverPicture   string                 `json:"coverPicture,omitempty"`
	OpenForWork    bool                   `json:"openForWork"`
	ProfileViews   int64                  `json:"profileViews"`
	Skills         []entity.Skill         `json:"skills"`
	Projects       []entity.Project       `json:"projects"`
	Experiences    []entity.Experience    `json:"experiences"`
	Education      []entity.Education     `json:"education"`
	Certifications []entity.Certification `json:"certifications"`
	Connections    []entity.Connection    `json:"connections,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// NewProfileResponse builds the owner-facing projection, connections included.
func NewProfileResponse(p *entity.Profile) *ProfileResponse {
	resp := newProfileResponse(p)
	resp.Connections = p.Connections
	return resp
}

// NewPublicProfileResponse builds the third-party projection with the
// connections list stripped.
func NewPublicProfileResponse(p *entity.Profile) *ProfileResponse {
	return newProfileResponse(p)
}

// NewPublicProfileResponses converts a result set to public projections.
func NewPublicProfileResponses(profiles []*entity.Profile) []ProfileResponse {
	items := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		items[i] = *NewPublicProfileResponse(p)
	}
	return items
}

func newProfileResponse(p *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Role:           string(p.Role),
		LastLoginAt:    p.LastLoginAt,
		JobTitle:       p.JobTitle,
		Company:        p.Company,
		Department:     p.Department,
		Location:       p.Location,
		Bio:            p.Bio,
		Website:        p.Website,
		ProfilePicture: p.ProfilePicture,
		CoverPicture:   p.CoverPicture,
		OpenForWork:    p.OpenForWork,
		ProfileViews:   p.ProfileViews,
		Skills:         p.Skills,
		Projects:       p.Projects,
		Experiences:    p.Experiences,
		Education:      p.Education,
		Certifications: p.Certifications,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ConnectionPeer is the public projection a connection entry resolves to.
type ConnectionPeer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	Department     string `json:"department,omitempty"`
	Location       string `json:"location,omitempty"`
}

// ConnectionResponse is a connection entry with its peer reference resolved.
type ConnectionResponse struct {
	Peer        ConnectionPeer `json:"user"`
	Status      string         `json:"status"`
	RequestedAt *time.Time     `json:"requestedAt,omitempty"`
	ConnectedAt *time.Time     `json:"connectedAt,omitempty"`
}

// NewConnectionPeer projects a profile into the populated-peer shape.
func NewConnectionPeer(p *entity.Profile) ConnectionPeer {
	return ConnectionPeer{
		ID:             p.ID,
		Name:           p.Name,
		ProfilePicture: p.ProfilePicture,
		JobTitle:       p.JobTitle,
		Department:     p.Department,
		Location:       p.Location,
	}
}
