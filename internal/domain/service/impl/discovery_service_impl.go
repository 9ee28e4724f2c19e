package impl

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/domain/dao"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// discoveryService implements service.DiscoveryService
type discoveryService struct {
	profileRepo repository.ProfileRepository
}

// NewDiscoveryService creates a new DiscoveryService instance
func NewDiscoveryService(profileRepo repository.ProfileRepository) service.DiscoveryService {
	return &discoveryService{profileRepo: profileRepo}
}

// normalizeParam treats the literal strings some clients send for missing
// values as absent.
func normalizeParam(value string) string {
	if value == "undefined" || value == "null" {
		return ""
	}
	return value
}

func (s *discoveryService) Search(ctx context.Context, term string, filters *request.SearchQuery) ([]response.ProfileResponse, error) {
	query := dao.ProfileQuery{
		Search: normalizeParam(term),
		Limit:  service.SearchResultLimit,
	}
	if filters != nil {
		query.Department = normalizeParam(filters.Department)
		query.Skill = normalizeParam(filters.Skill)
		query.Location = normalizeParam(filters.Location)
	}

	profiles, err := s.profileRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return response.NewPublicProfileResponses(profiles), nil
}
