package service

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/dto/request"
	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// SearchResultLimit caps discovery search results.
const SearchResultLimit = 20

// DiscoveryService provides the free-text profile search.
type DiscoveryService interface {
	// Search matches profiles against a free-text term plus optional
	// filters. The literal strings "undefined" and "null" are treated
	// as absent values, as some clients serialize missing parameters
	// that way.
	Search(ctx context.Context, term string, filters *request.SearchQuery) ([]response.ProfileResponse, error)
}
