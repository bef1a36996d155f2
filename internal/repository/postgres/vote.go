package postgres

import (
	"context"
	"time"

	"github.com/flokkk/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type voteRepo struct {
	db *pgxpool.Pool
}

func newVoteRepo(db *pgxpool.Pool) Vote {
	return &voteRepo{
		db: db,
	}
}

// counterTarget maps a vote kind to the table, counter column and owner
// column its scalar count lives on. Every kind shares the one ledger table.
type counterTarget struct {
	table    string
	counter  string
	ownerCol string
}

var counterTargets = map[model.VoteKind]counterTarget{
	model.VoteKindPost:          {table: "posts", counter: "likes", ownerCol: "author_id"},
	model.VoteKindComment:       {table: "comments", counter: "likes", ownerCol: "author_id"},
	model.VoteKindCommunityLink: {table: "community_links", counter: "vote_count", ownerCol: "contributor_id"},
}

func (r *voteRepo) Apply(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID, vote int16) (*model.VoteResult, error) {
	target, ok := counterTargets[kind]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var prior *int16
	var priorValue int16
	err = tx.QueryRow(
		ctx,
		"SELECT value FROM votes WHERE kind = $1 AND entity_id = $2 AND user_id = $3 FOR UPDATE",
		kind,
		entityID,
		userID,
	).Scan(&priorValue)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	if err == nil {
		prior = &priorValue
	}

	delta := model.VoteDelta(prior, vote)

	switch {
	case vote == 0 && prior != nil:
		if _, err := tx.Exec(
			ctx,
			"DELETE FROM votes WHERE kind = $1 AND entity_id = $2 AND user_id = $3",
			kind,
			entityID,
			userID,
		); err != nil {
			return nil, err
		}
	case vote != 0 && delta != 0:
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO votes(kind, entity_id, user_id, value, created_at) VALUES($1, $2, $3, $4, $5)
			ON CONFLICT (kind, entity_id, user_id) DO UPDATE SET value = EXCLUDED.value`,
			kind,
			entityID,
			userID,
			vote,
			time.Now(),
		); err != nil {
			return nil, err
		}
	}

	result := model.VoteResult{
		UserVote: vote,
		Delta:    delta,
	}

	// The counter is always moved with an atomic increment so concurrent
	// votes from different users cannot lose updates.
	if err := tx.QueryRow(
		ctx,
		"UPDATE "+target.table+" SET "+target.counter+" = "+target.counter+" + $1 WHERE id = $2 RETURNING "+target.counter+", "+target.ownerCol,
		delta,
		entityID,
	).Scan(&result.VoteCount, &result.OwnerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *voteRepo) Find(ctx context.Context, kind model.VoteKind, entityID int64, userID uuid.UUID) (*int16, error) {
	var value int16
	err := r.db.QueryRow(
		ctx,
		"SELECT value FROM votes WHERE kind = $1 AND entity_id = $2 AND user_id = $3",
		kind,
		entityID,
		userID,
	).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &value, nil
}
