package postgres

import (
	"context"
	"time"

	"github.com/flokkk/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

// Create inserts the comment and bumps the post's discussion counter in the
// same transaction.
func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	comment.CreatedAt = time.Now()
	comment.Likes = 0

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(
		ctx,
		"INSERT INTO comments(parent_id, reply_to_id, post_id, author_id, content, level, created_at) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id",
		comment.ParentID,
		comment.ReplyToID,
		comment.PostID,
		comment.AuthorID,
		comment.Content,
		comment.Level,
		comment.CreatedAt,
	).Scan(&comment.ID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, "UPDATE posts SET discussions = discussions + 1 WHERE id = $1", comment.PostID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id, c.parent_id, c.reply_to_id, c.post_id, c.author_id, c.content, c.likes, c.level, c.created_at FROM comments c WHERE c.id = $1",
		id,
	).Scan(
		&comment.ID,
		&comment.ParentID,
		&comment.ReplyToID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Content,
		&comment.Likes,
		&comment.Level,
		&comment.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.FullComment, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.parent_id, c.reply_to_id, c.post_id, c.author_id, c.content, c.likes, c.level, c.created_at,
		u.username, u.display_name, u.avatar_url
		FROM comments c
		JOIN cached_users u ON c.author_id = u.id
		WHERE c.post_id = $1 AND c.parent_id IS NULL
		ORDER BY c.likes DESC, c.created_at DESC
		LIMIT $2
		OFFSET $3`,
		postID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFullComments(rows)
}

func (r *commentRepo) FindCommentReplies(ctx context.Context, commentID int64, limit int, offset int) ([]*model.FullComment, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.parent_id, c.reply_to_id, c.post_id, c.author_id, c.content, c.likes, c.level, c.created_at,
		u.username, u.display_name, u.avatar_url
		FROM comments c
		JOIN cached_users u ON c.author_id = u.id
		WHERE c.parent_id = $1
		ORDER BY c.likes DESC, c.created_at DESC
		LIMIT $2
		OFFSET $3`,
		commentID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFullComments(rows)
}

func scanFullComments(rows pgx.Rows) ([]*model.FullComment, error) {
	var comments []*model.FullComment
	for rows.Next() {
		var comment model.FullComment
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.ParentID,
			&comment.Comment.ReplyToID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Content,
			&comment.Comment.Likes,
			&comment.Comment.Level,
			&comment.Comment.CreatedAt,
			&comment.Author.Username,
			&comment.Author.DisplayName,
			&comment.Author.AvatarURL,
		); err != nil {
			return nil, err
		}

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) Delete(ctx context.Context, postID int64, commentID int64, authorID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, "DELETE FROM comments WHERE id = $1 AND post_id = $2 AND author_id = $3", commentID, postID, authorID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() > 0 {
		if _, err := tx.Exec(ctx, "UPDATE posts SET discussions = discussions - 1 WHERE id = $1 AND discussions > 0", postID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
