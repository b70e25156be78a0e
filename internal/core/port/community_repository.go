package port

import (
	"context"
	"errors"

	"community-ads/internal/core/domain"
)

var ErrCommunityNotFound = errors.New("community not found")

// CommunityRepository is the read side of the community catalog. It is an
// outbound port; the wizard only consumes it as a list of records.
type CommunityRepository interface {
	// ListCommunities returns the whole catalog in catalog order.
	ListCommunities(ctx context.Context) ([]domain.Community, error)
	// GetCommunity returns a community by id, or nil when it does not exist.
	GetCommunity(ctx context.Context, id string) (*domain.Community, error)
}
