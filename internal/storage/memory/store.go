// Package memory is an in-process storage collaborator. It enforces the same
// constraints as the Postgres schema: unique usernames and emails, article
// authors must exist, and every write is atomic.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hongminglow/blog-be/internal/models"
	"github.com/hongminglow/blog-be/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps users and articles in maps guarded by a single RWMutex.
type Store struct {
	mu sync.RWMutex

	now func() time.Time

	users      map[int64]models.User
	byUsername map[string]int64
	byEmail    map[string]int64
	articles   map[int64]models.Article

	lastUserID    int64
	lastArticleID int64
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:        time.Now,
		users:      make(map[int64]models.User),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
		articles:   make(map[int64]models.Article),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// UserCount reports how many users are stored.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// CreateUser inserts a new user, rejecting duplicate usernames or emails.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[user.Username]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}
	if _, ok := s.byEmail[user.Email]; ok {
		return models.User{}, storage.ErrAlreadyExists
	}

	s.lastUserID++
	user.ID = s.lastUserID
	user.CreatedAt = s.now().UTC()

	s.users[user.ID] = user
	s.byUsername[user.Username] = user.ID
	s.byEmail[user.Email] = user.ID
	return user, nil
}

// FindByUsername fetches a user by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.users[id], nil
}

// CreateArticle inserts an article for an existing author.
func (s *Store) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	if err := ctx.Err(); err != nil {
		return models.Article{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.users[article.AuthorID]
	if !ok {
		return models.Article{}, storage.ErrMissingReference
	}

	s.lastArticleID++
	now := s.now().UTC()
	article.ID = s.lastArticleID
	article.CreatedAt = now
	article.UpdatedAt = now
	article.Author = ""

	s.articles[article.ID] = article
	article.Author = author.Username
	return article, nil
}

// GetArticle fetches a single article joined with its author.
func (s *Store) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	if err := ctx.Err(); err != nil {
		return models.Article{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[id]
	if !ok {
		return models.Article{}, storage.ErrNotFound
	}
	return s.withAuthor(article), nil
}

// ListArticles returns every article, newest first.
func (s *Store) ListArticles(ctx context.Context) ([]models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]models.Article, 0, len(s.articles))
	for _, article := range s.articles {
		out = append(out, s.withAuthor(article))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// UpdateArticle replaces title and content and refreshes updated_at.
func (s *Store) UpdateArticle(ctx context.Context, id int64, title, content string) (models.Article, error) {
	if err := ctx.Err(); err != nil {
		return models.Article{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articles[id]
	if !ok {
		return models.Article{}, storage.ErrNotFound
	}
	article.Title = title
	article.Content = content
	article.UpdatedAt = s.now().UTC()
	s.articles[id] = article
	return s.withAuthor(article), nil
}

// DeleteArticle removes an article permanently.
func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

// withAuthor must be called with s.mu held.
func (s *Store) withAuthor(article models.Article) models.Article {
	article.Author = s.users[article.AuthorID].Username
	return article
}
