package postgres

import (
	"context"
	"time"

	"github.com/flokkk/content-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post, tags []string, links []*model.CreatorLink) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, kind, title, content, created_at, updated_at) VALUES($1, $2, $3, $4, $5, $6) RETURNING id",
		post.AuthorID,
		post.Kind,
		post.Title,
		post.Content,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if _, err := tx.Exec(ctx, "INSERT INTO post_hashtags(post_id, tag) VALUES($1, $2) ON CONFLICT DO NOTHING", post.ID, tag); err != nil {
			return nil, err
		}
	}

	for _, link := range links {
		if _, err := tx.Exec(ctx, "INSERT INTO creator_links(post_id, title, url) VALUES($1, $2, $3)", post.ID, link.Title, link.URL); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.FullPost, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.kind, p.title, p.content, p.views, p.likes, p.discussions, p.shares, p.created_at, p.updated_at,
		u.username, u.display_name, u.avatar_url, h.tag
		FROM posts p
		JOIN cached_users u ON p.author_id = u.id
		LEFT JOIN post_hashtags h ON p.id = h.post_id
		WHERE p.id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var post *model.FullPost
	for rows.Next() {
		var (
			p       model.Post
			author  model.UserAuthor
			hashtag *string
		)
		if err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.Kind,
			&p.Title,
			&p.Content,
			&p.Views,
			&p.Likes,
			&p.Discussions,
			&p.Shares,
			&p.CreatedAt,
			&p.UpdatedAt,
			&author.Username,
			&author.DisplayName,
			&author.AvatarURL,
			&hashtag,
		); err != nil {
			return nil, err
		}

		if post == nil {
			post = &model.FullPost{
				Post:     p,
				Author:   author,
				Hashtags: make(map[string]bool),
			}
		}

		if hashtag != nil {
			post.Hashtags[*hashtag] = true
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if post == nil {
		return nil, pgx.ErrNoRows
	}

	creatorLinks, err := r.findCreatorLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	post.CreatorLinks = creatorLinks

	communityLinks, err := r.findCommunityLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	post.CommunityLinks = communityLinks

	return post, nil
}

func (r *postRepo) findCreatorLinks(ctx context.Context, postID int64) ([]*model.CreatorLink, error) {
	rows, err := r.db.Query(
		ctx,
		"SELECT l.id, l.post_id, l.title, l.url, l.vote_count FROM creator_links l WHERE l.post_id = $1 ORDER BY l.vote_count DESC",
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*model.CreatorLink
	for rows.Next() {
		var link model.CreatorLink
		if err := rows.Scan(&link.ID, &link.PostID, &link.Title, &link.URL, &link.VoteCount); err != nil {
			return nil, err
		}

		links = append(links, &link)
	}

	return links, rows.Err()
}

func (r *postRepo) findCommunityLinks(ctx context.Context, postID int64) ([]*model.CommunityLink, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT l.id, l.post_id, l.contributor_id, l.title, l.url, l.description, l.vote_count, l.created_at
		FROM community_links l
		WHERE l.post_id = $1
		ORDER BY l.vote_count DESC`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*model.CommunityLink
	for rows.Next() {
		var link model.CommunityLink
		if err := rows.Scan(&link.ID, &link.PostID, &link.ContributorID, &link.Title, &link.URL, &link.Description, &link.VoteCount, &link.CreatedAt); err != nil {
			return nil, err
		}

		links = append(links, &link)
	}

	return links, rows.Err()
}

func (r *postRepo) FindAuthorPosts(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.AuthorPost, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.kind, p.title, p.content, p.views, p.likes, p.discussions, p.shares, p.created_at, p.updated_at, h.tag
		FROM posts p
		LEFT JOIN post_hashtags h ON p.id = h.post_id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2
		OFFSET $3`,
		authorID,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAuthorPosts(rows)
}

func (r *postRepo) FindTrending(ctx context.Context, hours int, limit int) ([]*model.AuthorPost, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT
		p.id, p.author_id, p.kind, p.title, p.content, p.views, p.likes, p.discussions, p.shares, p.created_at, p.updated_at, h.tag
		FROM posts p
		LEFT JOIN post_hashtags h ON p.id = h.post_id
		WHERE p.created_at > now() - make_interval(hours => $1)
		ORDER BY p.views DESC
		LIMIT $2`,
		hours,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAuthorPosts(rows)
}

func scanAuthorPosts(rows pgx.Rows) ([]*model.AuthorPost, error) {
	postsMap := make(map[int64]*model.AuthorPost)
	var order []int64
	for rows.Next() {
		var (
			p       model.Post
			hashtag *string
		)
		if err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.Kind,
			&p.Title,
			&p.Content,
			&p.Views,
			&p.Likes,
			&p.Discussions,
			&p.Shares,
			&p.CreatedAt,
			&p.UpdatedAt,
			&hashtag,
		); err != nil {
			return nil, err
		}

		post, exists := postsMap[p.ID]
		if !exists {
			post = &model.AuthorPost{
				Post:     p,
				Hashtags: make(map[string]bool),
			}
			postsMap[p.ID] = post
			order = append(order, p.ID)
		}

		if hashtag != nil {
			post.Hashtags[*hashtag] = true
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var posts []*model.AuthorPost
	for _, id := range order {
		posts = append(posts, postsMap[id])
	}

	return posts, nil
}

func (r *postRepo) FindOwnerID(ctx context.Context, id int64) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.QueryRow(ctx, "SELECT p.author_id FROM posts p WHERE p.id = $1", id).Scan(&ownerID)
	return ownerID, err
}

func (r *postRepo) IncrViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET views = views + 1 WHERE id = $1", id)
	return err
}

func (r *postRepo) IncrShares(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "UPDATE posts SET shares = shares + 1 WHERE id = $1", id)
	return err
}

func (r *postRepo) Delete(ctx context.Context, id int64, authorID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND author_id = $2", id, authorID)
	return err
}
