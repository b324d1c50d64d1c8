// Package access guards article mutations.
//
// A mutating request moves through three states:
//
//	Unauthenticated --Authenticate--> Authenticated{userID} --Authorize--> Authorized | Forbidden
//
// Authenticate resolves the bearer token; any failure stops the request before
// storage is touched. Authorize loads the target article and compares its
// author with the caller. Creates skip Authorize: the caller becomes the
// author. Reads never pass through the gate.
package access

import (
	"context"
	"fmt"
	"strings"

	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/models"
)

// TokenResolver turns a raw bearer token into a user id.
type TokenResolver interface {
	Resolve(token string) (int64, error)
}

// ArticleReader loads an article by id.
type ArticleReader interface {
	Get(ctx context.Context, id int64) (models.Article, error)
}

type Gate struct {
	tokens   TokenResolver
	articles ArticleReader
}

func NewGate(tokens TokenResolver, articles ArticleReader) *Gate {
	return &Gate{tokens: tokens, articles: articles}
}

// Authenticate resolves the caller from an Authorization header value of the
// form "Bearer <token>".
func (g *Gate) Authenticate(authorization string) (int64, error) {
	token, err := bearerToken(authorization)
	if err != nil {
		return 0, err
	}
	return g.tokens.Resolve(token)
}

// Authorize checks that userID owns articleID. It returns common.ErrNotFound
// when the article is absent and common.ErrForbidden when someone else owns it.
func (g *Gate) Authorize(ctx context.Context, userID, articleID int64) error {
	article, err := g.articles.Get(ctx, articleID)
	if err != nil {
		return err
	}
	if !article.OwnedBy(userID) {
		return fmt.Errorf("%w: article %d is not owned by user %d", common.ErrForbidden, articleID, userID)
	}
	return nil
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", common.ErrMissingToken
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", common.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", common.ErrMissingToken
	}
	return token, nil
}

type ctxKey struct{}

// WithUserID stores the authenticated user id on ctx.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the user id stored by WithUserID.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok
}
