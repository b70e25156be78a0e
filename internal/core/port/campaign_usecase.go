package port

import (
	"context"

	"github.com/google/uuid"

	"community-ads/internal/core/domain"
)

// CampaignUseCase defines the operations of the campaign builder. This
// interface is the primary port into the application domain.
type CampaignUseCase interface {
	// SearchCommunities filters the catalog. The result keeps catalog order.
	SearchCommunities(ctx context.Context, f domain.CommunityFilter) ([]domain.Community, error)

	// CreateDraft starts a new wizard run with default values.
	CreateDraft(ctx context.Context) (*DraftView, error)

	// GetDraft returns the draft with its derived values.
	GetDraft(ctx context.Context, id uuid.UUID) (*DraftView, error)

	// Apply runs a wizard command against the draft. Validation failures
	// are returned as domain errors and leave the draft untouched.
	Apply(ctx context.Context, id uuid.UUID, cmd Command) (*DraftView, error)

	// Review returns the summary shown on the last step.
	Review(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// StockImages lists the bundled images.
	StockImages() []domain.StockImage

	// Location returns the market the service is configured for.
	Location() string
}

// Command is a wizard action as requested by a client. Commands that refer
// to communities by id are resolved against the catalog by the use case
// before they reach the domain.
type Command interface{ command() }

type (
	// ActionCommand wraps a domain action that needs no lookup.
	ActionCommand struct{ Action domain.Action }
	// ToggleCommunityCommand toggles the community with CommunityID.
	ToggleCommunityCommand struct{ CommunityID string }
	// BulkSelectCommand runs one of the bulk selection operations.
	BulkSelectCommand struct{ Op BulkOp }
)

func (ActionCommand) command()          {}
func (ToggleCommunityCommand) command() {}
func (BulkSelectCommand) command()      {}

// BulkOp names a bulk selection operation.
type BulkOp string

const (
	BulkAllTech       BulkOp = "all_tech"
	BulkTopEngagement BulkOp = "top_engagement"
	BulkClear         BulkOp = "clear"
)

// DraftView is a draft together with the values derived from it. It is a
// DTO for the HTTP layer.
type DraftView struct {
	Draft          domain.Draft
	CanAdvance     bool
	Limits         domain.Limits
	Budget         domain.Budget
	Reach          int64
	ActiveAudience int64
}

// NewDraftView derives the view of d.
func NewDraftView(d domain.Draft) *DraftView {
	return &DraftView{
		Draft:          d,
		CanAdvance:     d.CanAdvance(),
		Limits:         d.Creative.Format.Limits(),
		Budget:         d.Budget(),
		Reach:          d.Selection.Reach(),
		ActiveAudience: d.Selection.ActiveAudience(),
	}
}
