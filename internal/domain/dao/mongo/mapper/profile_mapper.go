// Package mapper converts between domain entities and MongoDB documents.
package mapper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/connecthub/connecthub-go/internal/domain/dao/mongo/document"
	"github.com/connecthub/connecthub-go/internal/domain/entity"
)

// ProfileMapper converts between Profile entity and ProfileDocument.
type ProfileMapper struct{}

// NewProfileMapper creates a new ProfileMapper instance.
func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

// oid parses an ObjectID hex string, returning the zero ObjectID when the
// value is empty or malformed. Callers assign ids before mapping.
func oid(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// ToDocument converts a Profile entity to a ProfileDocument.
func (m *ProfileMapper) ToDocument(p *entity.Profile) *document.ProfileDocument {
	if p == nil {
		return nil
	}

	doc := &document.ProfileDocument{
		ID:             oid(p.ID),
		Name:           p.Name,
		Email:          p.Email,
		Password:       p.Password,
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
		Skills:         make([]document.SkillDocument, len(p.Skills)),
		Projects:       make([]document.ProjectDocument, len(p.Projects)),
		Experiences:    make([]document.ExperienceDocument, len(p.Experiences)),
		Education:      make([]document.EducationDocument, len(p.Education)),
		Certifications: make([]document.CertificationDocument, len(p.Certifications)),
		Connections:    make([]document.ConnectionDocument, len(p.Connections)),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	for i, s := range p.Skills {
		endorsements := make([]document.EndorsementDocument, len(s.Endorsements))
		for j, e := range s.Endorsements {
			endorsements[j] = document.EndorsementDocument{
				EndorsedBy: oid(e.EndorsedBy),
				EndorsedAt: e.EndorsedAt,
			}
		}
		doc.Skills[i] = document.SkillDocument{
			ID:                oid(s.ID),
			Name:              s.Name,
			Level:             string(s.Level),
			Description:       s.Description,
			YearsOfExperience: s.YearsOfExperience,
			Endorsements:      endorsements,
		}
	}

	for i, pr := range p.Projects {
		doc.Projects[i] = document.ProjectDocument{
			ID:           oid(pr.ID),
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: pr.Technologies,
			ImageURL:     pr.ImageURL,
			ProjectURL:   pr.ProjectURL,
			RepoURL:      pr.RepoURL,
			StartDate:    pr.StartDate,
			EndDate:      pr.EndDate,
			IsCurrent:    pr.IsCurrent,
			Role:         pr.Role,
		}
	}

	for i, e := range p.Experiences {
		doc.Experiences[i] = document.ExperienceDocument{
			ID:          oid(e.ID),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			IsCurrent:   e.IsCurrent,
			Description: e.Description,
		}
	}

	for i, ed := range p.Education {
		doc.Education[i] = document.EducationDocument{
			ID:          oid(ed.ID),
			Institution: ed.Institution,
			Degree:      ed.Degree,
			Field:       ed.Field,
			StartDate:   ed.StartDate,
			EndDate:     ed.EndDate,
		}
	}

	for i, c := range p.Certifications {
		doc.Certifications[i] = document.CertificationDocument{
			ID:            oid(c.ID),
			Name:          c.Name,
			Issuer:        c.Issuer,
			CredentialID:  c.CredentialID,
			CredentialURL: c.CredentialURL,
			IssueDate:     c.IssueDate,
			ExpiryDate:    c.ExpiryDate,
		}
	}

	for i, c := range p.Connections {
		doc.Connections[i] = document.ConnectionDocument{
			PeerID:      oid(c.PeerID),
			Status:      string(c.Status),
			RequestedAt: c.RequestedAt,
			ConnectedAt: c.ConnectedAt,
		}
	}

	return doc
}

// ToEntity converts a ProfileDocument to a Profile entity.
func (m *ProfileMapper) ToEntity(doc *document.ProfileDocument) *entity.Profile {
	if doc == nil {
		return nil
	}

	p := &entity.Profile{
		ID:             doc.ID.Hex(),
		Name:           doc.Name,
		Email:          doc.Email,
		Password:       doc.Password,
		Role:           entity.Role(doc.Role),
		LastLoginAt:    doc.LastLoginAt,
		JobTitle:       doc.JobTitle,
		Company:        doc.Company,
		Department:     doc.Department,
		Location:       doc.Location,
		Bio:            doc.Bio,
		Website:        doc.Website,
		ProfilePicture: doc.ProfilePicture,
		CoverPicture:   doc.CoverPicture,
		OpenForWork:    doc.OpenForWork,
		ProfileViews:   doc.ProfileViews,
		Skills:         make([]entity.Skill, len(doc.Skills)),
		Projects:       make([]entity.Project, len(doc.Projects)),
		Experiences:    make([]entity.Experience, len(doc.Experiences)),
		Education:      make([]entity.Education, len(doc.Education)),
		Certifications: make([]entity.Certification, len(doc.Certifications)),
		Connections:    make([]entity.Connection, len(doc.Connections)),
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}

	for i, s := range doc.Skills {
		endorsements := make([]entity.Endorsement, len(s.Endorsements))
		for j, e := range s.Endorsements {
			endorsements[j] = entity.Endorsement{
				EndorsedBy: e.EndorsedBy.Hex(),
				EndorsedAt: e.EndorsedAt,
			}
		}
		p.Skills[i] = entity.Skill{
			ID:                s.ID.Hex(),
			Name:              s.Name,
			Level:             entity.SkillLevel(s.Level),
			Description:       s.Description,
			YearsOfExperience: s.YearsOfExperience,
			Endorsements:      endorsements,
		}
	}

	for i, pr := range doc.Projects {
		p.Projects[i] = entity.Project{
			ID:           pr.ID.Hex(),
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: pr.Technologies,
			ImageURL:     pr.ImageURL,
			ProjectURL:   pr.ProjectURL,
			RepoURL:      pr.RepoURL,
			StartDate:    pr.StartDate,
			EndDate:      pr.EndDate,
			IsCurrent:    pr.IsCurrent,
			Role:         pr.Role,
		}
	}

	for i, e := range doc.Experiences {
		p.Experiences[i] = entity.Experience{
			ID:          e.ID.Hex(),
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			IsCurrent:   e.IsCurrent,
			Description: e.Description,
		}
	}

	for i, ed := range doc.Education {
		p.Education[i] = entity.Education{
			ID:          ed.ID.Hex(),
			Institution: ed.Institution,
			Degree:      ed.Degree,
			Field:       ed.Field,
			StartDate:   ed.StartDate,
			EndDate:     ed.EndDate,
		}
	}

	for i, c := range doc.Certifications {
		p.Certifications[i] = entity.Certification{
			ID:            c.ID.Hex(),
			Name:          c.Name,
			Issuer:        c.Issuer,
			CredentialID:  c.CredentialID,
			CredentialURL: c.CredentialURL,
			IssueDate:     c.IssueDate,
			ExpiryDate:    c.ExpiryDate,
		}
	}

	for i, c := range doc.Connections {
		p.Connections[i] = entity.Connection{
			PeerID:      c.PeerID.Hex(),
			Status:      entity.ConnectionStatus(c.Status),
			RequestedAt: c.RequestedAt,
			ConnectedAt: c.ConnectedAt,
		}
	}

	return p
}

// ToEntities converts a slice of ProfileDocument to a slice of Profile entities.
func (m *ProfileMapper) ToEntities(docs []*document.ProfileDocument) []*entity.Profile {
	if docs == nil {
		return nil
	}

	profiles := make([]*entity.Profile, len(docs))
	for i, doc := range docs {
		profiles[i] = m.ToEntity(doc)
	}
	return profiles
}
