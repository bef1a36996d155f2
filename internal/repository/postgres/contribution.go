package postgres

import (
	"context"
	"time"

	"github.com/flokkk/content-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contributionRepo struct {
	db *pgxpool.Pool
}

func newContributionRepo(db *pgxpool.Pool) Contribution {
	return &contributionRepo{
		db: db,
	}
}

func (r *contributionRepo) Create(ctx context.Context, c model.LinkContribution) (*model.LinkContribution, error) {
	c.Status = model.CONTRIBUTION_PENDING
	c.CreatedAt = time.Now()
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO link_contributions(post_id, contributor_id, creator_id, title, url, description, status, created_at) VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id",
		c.PostID,
		c.ContributorID,
		c.CreatorID,
		c.Title,
		c.URL,
		c.Description,
		c.Status,
		c.CreatedAt,
	).Scan(&c.ID); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *contributionRepo) FindByID(ctx context.Context, id int64) (*model.LinkContribution, error) {
	var c model.LinkContribution
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id, c.post_id, c.contributor_id, c.creator_id, c.title, c.url, c.description, c.status, c.created_at FROM link_contributions c WHERE c.id = $1",
		id,
	).Scan(
		&c.ID,
		&c.PostID,
		&c.ContributorID,
		&c.CreatorID,
		&c.Title,
		&c.URL,
		&c.Description,
		&c.Status,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

// Approve flips a pending contribution to approved and appends the link to
// the post's community links in one transaction. A contribution that is no
// longer pending stays untouched (terminal states).
func (r *contributionRepo) Approve(ctx context.Context, id int64) (*model.LinkContribution, *model.CommunityLink, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	c, err := r.resolve(ctx, tx, id, model.CONTRIBUTION_APPROVED)
	if err != nil {
		return nil, nil, err
	}

	link := model.CommunityLink{
		PostID:        c.PostID,
		ContributorID: c.ContributorID,
		Title:         c.Title,
		URL:           c.URL,
		Description:   c.Description,
		CreatedAt:     time.Now(),
	}
	if err := tx.QueryRow(
		ctx,
		"INSERT INTO community_links(post_id, contributor_id, title, url, description, created_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id",
		link.PostID,
		link.ContributorID,
		link.Title,
		link.URL,
		link.Description,
		link.CreatedAt,
	).Scan(&link.ID); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return c, &link, nil
}

func (r *contributionRepo) Decline(ctx context.Context, id int64) (*model.LinkContribution, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	c, err := r.resolve(ctx, tx, id, model.CONTRIBUTION_DECLINED)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

func (r *contributionRepo) resolve(ctx context.Context, tx pgx.Tx, id int64, status string) (*model.LinkContribution, error) {
	var c model.LinkContribution
	err := tx.QueryRow(
		ctx,
		`UPDATE link_contributions SET status = $1 WHERE id = $2 AND status = $3
		RETURNING id, post_id, contributor_id, creator_id, title, url, description, status, created_at`,
		status,
		id,
		model.CONTRIBUTION_PENDING,
	).Scan(
		&c.ID,
		&c.PostID,
		&c.ContributorID,
		&c.CreatorID,
		&c.Title,
		&c.URL,
		&c.Description,
		&c.Status,
		&c.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		// Either the contribution does not exist or it was already resolved.
		if _, findErr := r.FindByID(ctx, id); findErr == nil {
			return nil, ErrContributionResolved
		}
		return nil, pgx.ErrNoRows
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *contributionRepo) FindPostContributions(ctx context.Context, postID int64, status string) ([]*model.LinkContribution, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT c.id, c.post_id, c.contributor_id, c.creator_id, c.title, c.url, c.description, c.status, c.created_at
		FROM link_contributions c
		WHERE c.post_id = $1 AND c.status = $2
		ORDER BY c.created_at DESC`,
		postID,
		status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contributions []*model.LinkContribution
	for rows.Next() {
		var c model.LinkContribution
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.ContributorID,
			&c.CreatorID,
			&c.Title,
			&c.URL,
			&c.Description,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}

		contributions = append(contributions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contributions, nil
}
