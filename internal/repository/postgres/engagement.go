package postgres

import (
	"context"

	"github.com/flokkk/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type engagementRepo struct {
	db *pgxpool.Pool
}

func newEngagementRepo(db *pgxpool.Pool) Engagement {
	return &engagementRepo{
		db: db,
	}
}

// flagColumns whitelists the flag -> column pair; flags coming from the
// route path never reach the query text directly.
var flagColumns = map[model.EngagementFlag]struct {
	flag string
	at   string
}{
	model.EngagementAppeared:   {flag: "has_appeared", at: "appeared_at"},
	model.EngagementViewed:     {flag: "has_viewed", at: "viewed_at"},
	model.EngagementPenetrated: {flag: "has_penetrated", at: "penetrated_at"},
	model.EngagementSaved:      {flag: "has_saved", at: "saved_at"},
	model.EngagementShared:     {flag: "has_shared", at: "shared_at"},
}

// Track upserts the (post, user) engagement record and sets the flag. Flags
// are monotonic: when the flag is already set no row is written and false is
// returned.
func (r *engagementRepo) Track(ctx context.Context, postID int64, userID uuid.UUID, flag model.EngagementFlag) (bool, error) {
	cols, ok := flagColumns[flag]
	if !ok {
		return false, ErrInvalidEngagementFlag
	}

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO post_engagements(post_id, user_id, `+cols.flag+`, `+cols.at+`) VALUES($1, $2, TRUE, now())
		ON CONFLICT (post_id, user_id) DO UPDATE SET `+cols.flag+` = TRUE, `+cols.at+` = now()
		WHERE post_engagements.`+cols.flag+` = FALSE`,
		postID,
		userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *engagementRepo) Counts(ctx context.Context, postID int64) (*model.EngagementCounts, error) {
	var counts model.EngagementCounts
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		COUNT(*) FILTER (WHERE has_appeared),
		COUNT(*) FILTER (WHERE has_viewed),
		COUNT(*) FILTER (WHERE has_penetrated),
		COUNT(*) FILTER (WHERE has_saved),
		COUNT(*) FILTER (WHERE has_shared)
		FROM post_engagements
		WHERE post_id = $1`,
		postID,
	).Scan(
		&counts.Appeared,
		&counts.Viewed,
		&counts.Penetrated,
		&counts.Saved,
		&counts.Shared,
	); err != nil {
		return nil, err
	}

	return &counts, nil
}

func (r *engagementRepo) TotalsForAuthor(ctx context.Context, authorID uuid.UUID) (*model.StudioTotals, error) {
	var totals model.StudioTotals
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		COUNT(e.*) FILTER (WHERE e.has_appeared),
		COUNT(e.*) FILTER (WHERE e.has_viewed),
		COUNT(e.*) FILTER (WHERE e.has_penetrated),
		COUNT(e.*) FILTER (WHERE e.has_saved),
		COUNT(e.*) FILTER (WHERE e.has_shared),
		(SELECT COUNT(*) FROM comments c JOIN posts p2 ON c.post_id = p2.id WHERE p2.author_id = $1),
		(SELECT COUNT(*) FROM community_links l JOIN posts p3 ON l.post_id = p3.id WHERE p3.author_id = $1)
		FROM posts p
		LEFT JOIN post_engagements e ON e.post_id = p.id
		WHERE p.author_id = $1`,
		authorID,
	).Scan(
		&totals.Appeared,
		&totals.Viewed,
		&totals.Penetrated,
		&totals.Saved,
		&totals.Shared,
		&totals.Comments,
		&totals.CommunityLinks,
	); err != nil {
		return nil, err
	}

	return &totals, nil
}

func (r *engagementRepo) TopPostsForAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]*model.TopPostStat, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.title, p.kind,
		COUNT(e.*) FILTER (WHERE e.has_appeared),
		COUNT(e.*) FILTER (WHERE e.has_viewed),
		COUNT(e.*) FILTER (WHERE e.has_penetrated),
		COUNT(e.*) FILTER (WHERE e.has_saved),
		COUNT(e.*) FILTER (WHERE e.has_shared)
		FROM posts p
		LEFT JOIN post_engagements e ON e.post_id = p.id
		WHERE p.author_id = $1
		GROUP BY p.id, p.title, p.kind
		ORDER BY COUNT(e.*) FILTER (WHERE e.has_appeared) DESC
		LIMIT $2`,
		authorID,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*model.TopPostStat
	for rows.Next() {
		var stat model.TopPostStat
		if err := rows.Scan(
			&stat.PostID,
			&stat.Title,
			&stat.Kind,
			&stat.Engagement.Appeared,
			&stat.Engagement.Viewed,
			&stat.Engagement.Penetrated,
			&stat.Engagement.Saved,
			&stat.Engagement.Shared,
		); err != nil {
			return nil, err
		}

		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
