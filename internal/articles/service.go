// Package articles validates and persists blog articles. It does not check
// ownership; mutations reach it only after the access gate has authorized
// the caller.
package articles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/models"
	"github.com/hongminglow/blog-be/internal/storage"
)

// Service validates and stores articles.
type Service struct {
	store  storage.ArticleStore
	logger *slog.Logger
}

// NewService creates an articles service backed by store.
func NewService(store storage.ArticleStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create persists a new article authored by authorID and returns its id.
func (s *Service) Create(ctx context.Context, authorID int64, title, content string) (int64, error) {
	if err := Validate(title, content); err != nil {
		return 0, err
	}

	created, err := s.store.CreateArticle(ctx, models.Article{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrMissingReference) {
			return 0, fmt.Errorf("%w: author %d", common.ErrNotFound, authorID)
		}
		return 0, fmt.Errorf("create article: %w", err)
	}

	s.logger.InfoContext(ctx, "article created", "article_id", created.ID, "author_id", authorID)
	return created.ID, nil
}

// Get returns one article with its author's username.
func (s *Service) Get(ctx context.Context, id int64) (models.Article, error) {
	article, err := s.store.GetArticle(ctx, id)
	if err != nil {
		return models.Article{}, notFound(err, "get article")
	}
	return article, nil
}

// List returns every article, most recent first. An empty store yields an
// empty, non-nil slice.
func (s *Service) List(ctx context.Context) ([]models.Article, error) {
	list, err := s.store.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if list == nil {
		list = []models.Article{}
	}
	return list, nil
}

// Update replaces title and content of an existing article.
func (s *Service) Update(ctx context.Context, id int64, title, content string) (models.Article, error) {
	if err := Validate(title, content); err != nil {
		return models.Article{}, err
	}

	updated, err := s.store.UpdateArticle(ctx, id, title, content)
	if err != nil {
		return models.Article{}, notFound(err, "update article")
	}

	s.logger.InfoContext(ctx, "article updated", "article_id", id)
	return updated, nil
}

// Delete removes an article permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteArticle(ctx, id); err != nil {
		return notFound(err, "delete article")
	}

	s.logger.InfoContext(ctx, "article deleted", "article_id", id)
	return nil
}

// Validate rejects a blank title or content with common.ErrInvalidInput.
func Validate(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: title and content are required", common.ErrInvalidInput)
	}
	return nil
}

func notFound(err error, op string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return common.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
