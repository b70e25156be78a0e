package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"community-ads/internal/core/domain"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository persists campaign drafts. Implementations must serialise
// concurrent updates of the same draft.
type DraftRepository interface {
	// CreateDraft stores a new draft.
	CreateDraft(ctx context.Context, d domain.Draft) error
	// GetDraft returns a draft by id, or ErrDraftNotFound.
	GetDraft(ctx context.Context, id uuid.UUID) (domain.Draft, error)
	// UpdateDraft loads the draft, passes it to fn and stores the draft fn
	// returns, atomically. When fn fails nothing is written and its error
	// is returned.
	UpdateDraft(ctx context.Context, id uuid.UUID, fn func(domain.Draft) (domain.Draft, error)) (domain.Draft, error)
}
