package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"community-ads/internal/core/domain"
)

const communityColumns = `id, name, avatar_url, members, daily_active, engagement_rate,
            engagement_text, topics, price, ctr, category, size`

// CommunityRepository implements port.CommunityRepository using pgxpool.
type CommunityRepository struct {
	pool *pgxpool.Pool
}

// NewCommunityRepository returns a new repository instance.
func NewCommunityRepository(pool *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{pool: pool}
}

// ListCommunities returns the catalog ordered by position.
func (r *CommunityRepository) ListCommunities(ctx context.Context) ([]domain.Community, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+communityColumns+` FROM communities ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Community, error) {
		return scanCommunity(row)
	})
}

// GetCommunity returns a community by id.
func (r *CommunityRepository) GetCommunity(ctx context.Context, id string) (*domain.Community, error) {
	c, err := scanCommunity(r.pool.QueryRow(ctx, `SELECT `+communityColumns+` FROM communities WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertCommunities writes the given records, keeping slice order as the
// catalog order.
func (r *CommunityRepository) UpsertCommunities(ctx context.Context, cs []domain.Community) error {
	batch := &pgx.Batch{}
	for i, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
		batch.Queue(`INSERT INTO communities
    (id, position, name, avatar_url, members, daily_active, engagement_rate,
     engagement_text, topics, price, ctr, category, size)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
ON CONFLICT (id) DO UPDATE SET
    position = EXCLUDED.position, name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url,
    members = EXCLUDED.members, daily_active = EXCLUDED.daily_active,
    engagement_rate = EXCLUDED.engagement_rate, engagement_text = EXCLUDED.engagement_text,
    topics = EXCLUDED.topics, price = EXCLUDED.price, ctr = EXCLUDED.ctr,
    category = EXCLUDED.category, size = EXCLUDED.size`,
			c.ID, i, c.Name, c.AvatarURL, c.Members, c.DailyActive, c.EngagementRate,
			string(c.EngagementText), c.Topics, c.Price, c.CTR, string(c.Category), string(c.Size))
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func scanCommunity(row pgx.Row) (domain.Community, error) {
	var (
		c                     domain.Community
		engagement, cat, size string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.AvatarURL,
		&c.Members,
		&c.DailyActive,
		&c.EngagementRate,
		&engagement,
		&c.Topics,
		&c.Price,
		&c.CTR,
		&cat,
		&size,
	)
	c.EngagementText = domain.Engagement(engagement)
	c.Category = domain.Category(cat)
	c.Size = domain.Size(size)
	return c, err
}
