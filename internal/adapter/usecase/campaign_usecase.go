package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"community-ads/internal/core/domain"
	"community-ads/internal/core/port"
)

// CampaignUseCase drives campaign drafts through the wizard. It loads
// catalog records for commands that refer to communities and runs every
// change through DraftRepository.UpdateDraft so a draft has one writer at
// a time.
type CampaignUseCase struct {
	communities port.CommunityRepository
	drafts      port.DraftRepository

	location string
	now      func() time.Time
}

// Option configures a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock replaces time.Now. Tests use it to pin "today".
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithLocation sets the market reported by Location.
func WithLocation(location string) Option {
	return func(u *CampaignUseCase) { u.location = location }
}

// NewCampaignUseCase creates a use case on top of the given repositories.
func NewCampaignUseCase(communities port.CommunityRepository, drafts port.DraftRepository, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{communities: communities, drafts: drafts, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SearchCommunities loads the catalog and filters it.
func (u *CampaignUseCase) SearchCommunities(ctx context.Context, f domain.CommunityFilter) ([]domain.Community, error) {
	catalog, err := u.communities.ListCommunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	return domain.FilterCommunities(catalog, f), nil
}

// CreateDraft stores a fresh draft.
func (u *CampaignUseCase) CreateDraft(ctx context.Context) (*port.DraftView, error) {
	d := domain.NewDraft(uuid.New(), u.now())
	if err := u.drafts.CreateDraft(ctx, d); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return port.NewDraftView(d), nil
}

// GetDraft returns the stored draft.
func (u *CampaignUseCase) GetDraft(ctx context.Context, id uuid.UUID) (*port.DraftView, error) {
	d, err := u.drafts.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	return port.NewDraftView(d), nil
}

// Apply resolves cmd into a domain action and applies it to the draft.
func (u *CampaignUseCase) Apply(ctx context.Context, id uuid.UUID, cmd port.Command) (*port.DraftView, error) {
	action, err := u.resolve(ctx, cmd)
	if err != nil {
		return nil, err
	}
	now := u.now()
	d, err := u.drafts.UpdateDraft(ctx, id, func(d domain.Draft) (domain.Draft, error) {
		return d.Apply(action, now)
	})
	if errors.Is(err, domain.ErrCommunityNotSelected) {
		return nil, fmt.Errorf("%w: %w", port.ErrCommunityNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	return port.NewDraftView(d), nil
}

// Review summarises the draft for the last step.
func (u *CampaignUseCase) Review(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	d, err := u.drafts.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	r := d.Review()
	return &r, nil
}

// StockImages returns the bundled stock images.
func (u *CampaignUseCase) StockImages() []domain.StockImage {
	return append([]domain.StockImage(nil), domain.StockImages...)
}

// Location returns the configured market.
func (u *CampaignUseCase) Location() string {
	return u.location
}

func (u *CampaignUseCase) resolve(ctx context.Context, cmd port.Command) (domain.Action, error) {
	switch c := cmd.(type) {
	case port.ActionCommand:
		if c.Action == nil {
			return nil, domain.ErrUnknownAction
		}
		return c.Action, nil
	case port.ToggleCommunityCommand:
		community, err := u.communities.GetCommunity(ctx, c.CommunityID)
		if err != nil {
			return nil, fmt.Errorf("get community: %w", err)
		}
		if community == nil {
			// gone from the catalog; it can still be deselected
			return domain.DeselectCommunity{ID: c.CommunityID}, nil
		}
		return domain.ToggleCommunity{Community: *community}, nil
	case port.BulkSelectCommand:
		switch c.Op {
		case port.BulkClear:
			return domain.ClearSelection{}, nil
		case port.BulkAllTech, port.BulkTopEngagement:
		default:
			return nil, fmt.Errorf("%w: bulk %q", domain.ErrUnknownAction, c.Op)
		}
		catalog, err := u.communities.ListCommunities(ctx)
		if err != nil {
			return nil, fmt.Errorf("list communities: %w", err)
		}
		if c.Op == port.BulkAllTech {
			return domain.SelectAllTech{Catalog: catalog}, nil
		}
		return domain.SelectTopEngagement{Catalog: catalog, N: domain.TopEngagementCount}, nil
	}
	return nil, domain.ErrUnknownAction
}
