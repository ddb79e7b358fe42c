package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/models"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("post not found")

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the posts table and its indexes if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			image_url TEXT
		);
		CREATE INDEX IF NOT EXISTS posts_title_idx ON posts (title);
	`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// ListPosts returns posts in natural storage order. A limit greater than
// zero truncates the result; any other limit returns everything.
func (s *Store) ListPosts(ctx context.Context, limit int) ([]models.Post, error) {
	query := `SELECT id::text, title, content, image_url FROM posts`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.ImageURL); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id string) (*models.Post, error) {
	const query = `SELECT id::text, title, content, image_url FROM posts WHERE id = $1`

	var post models.Post
	err := s.pool.QueryRow(ctx, query, id).Scan(&post.ID, &post.Title, &post.Content, &post.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// CreatePost inserts a new row and returns it with the generated id.
func (s *Store) CreatePost(ctx context.Context, title, content string, imageURL *string) (*models.Post, error) {
	const query = `
		INSERT INTO posts (title, content, image_url)
		VALUES ($1, $2, $3)
		RETURNING id::text, title, content, image_url
	`

	var created models.Post
	err := s.pool.QueryRow(ctx, query, title, content, imageURL).Scan(
		&created.ID,
		&created.Title,
		&created.Content,
		&created.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &created, nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
