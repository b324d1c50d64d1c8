package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/blog-be/internal/models"
	"github.com/hongminglow/blog-be/internal/storage"
)

const articleColumns = `a.id, a.title, a.content, a.author_id, u.username, a.created_at, a.updated_at`

// CreateArticle inserts an article and returns it joined with its author.
func (s *Store) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	const query = `
	WITH inserted AS (
		INSERT INTO articles (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, author_id, created_at, updated_at
	)
	SELECT ` + articleColumns + `
	FROM inserted a
	JOIN users u ON u.id = a.author_id;
	`
	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	created, err := scanArticle(s.pool.QueryRow(ctx, query, article.Title, article.Content, article.AuthorID))
	if err != nil {
		return models.Article{}, translate(err)
	}
	return created, nil
}

// GetArticle fetches one article by id.
func (s *Store) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	const query = `
	SELECT ` + articleColumns + `
	FROM articles a
	JOIN users u ON u.id = a.author_id
	WHERE a.id = $1;
	`
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	article, err := scanArticle(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return models.Article{}, translate(err)
	}
	return article, nil
}

// ListArticles returns all articles, most recent first.
func (s *Store) ListArticles(ctx context.Context) ([]models.Article, error) {
	const query = `
	SELECT ` + articleColumns + `
	FROM articles a
	JOIN users u ON u.id = a.author_id
	ORDER BY a.created_at DESC, a.id DESC;
	`
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// UpdateArticle replaces title and content and refreshes updated_at.
func (s *Store) UpdateArticle(ctx context.Context, id int64, title, content string) (models.Article, error) {
	const query = `
	WITH updated AS (
		UPDATE articles
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, content, author_id, created_at, updated_at
	)
	SELECT ` + articleColumns + `
	FROM updated a
	JOIN users u ON u.id = a.author_id;
	`
	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	article, err := scanArticle(s.pool.QueryRow(ctx, query, id, title, content))
	if err != nil {
		return models.Article{}, translate(err)
	}
	return article, nil
}

// DeleteArticle removes an article permanently.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1;`

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanArticle(row pgx.Row) (models.Article, error) {
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.Author, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Article{}, err
	}
	return a, nil
}
