package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/blog-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrMissingReference indicates a foreign key points at a row that does not exist.
var ErrMissingReference = errors.New("referenced record does not exist")

// UserStore captures persistence operations on users.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// ArticleStore captures persistence operations on articles. Reads return the
// article joined with its author's username.
type ArticleStore interface {
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	GetArticle(ctx context.Context, id int64) (models.Article, error)
	ListArticles(ctx context.Context) ([]models.Article, error)
	UpdateArticle(ctx context.Context, id int64, title, content string) (models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
}

// Store is the full storage collaborator handed to the server.
type Store interface {
	UserStore
	ArticleStore
	Ping(ctx context.Context) error
	Close()
}
