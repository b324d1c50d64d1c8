package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/blog-be/internal/access"
	"github.com/hongminglow/blog-be/internal/articles"
	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/http/respond"
	"github.com/hongminglow/blog-be/internal/middleware"
	"github.com/hongminglow/blog-be/internal/models/dto"
)

// ArticleHandler serves article reads publicly and gates every mutation
// behind a bearer token and, for update/delete, ownership.
type ArticleHandler struct {
	articles *articles.Service
	gate     *access.Gate
	logger   *slog.Logger
}

func NewArticleHandler(articles *articles.Service, gate *access.Gate, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{articles: articles, gate: gate, logger: logger}
}

// Register attaches article routes to the router.
func (h *ArticleHandler) Register(r chi.Router) {
	r.Get("/articles", h.handleList)
	r.Get("/articles/{id}", h.handleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.gate, h.logger))
		r.Post("/articles", h.handleCreate)
		r.Put("/articles/{id}", h.handleUpdate)
		r.Delete("/articles/{id}", h.handleDelete)
	})
}

func (h *ArticleHandler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.articles.List(r.Context())
	if err != nil {
		internalError(w, r, h.logger, "list articles", err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", dto.ArticleListResponse{Articles: list})
}

func (h *ArticleHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}
	article, err := h.articles.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get article", err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", dto.ArticleResponse{Article: article})
}

func (h *ArticleHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _ := access.UserIDFromContext(r.Context())

	var req dto.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	id, err := h.articles.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// token names a user that no longer exists
			respond.Error(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
			return
		}
		h.fail(w, r, "create article", err)
		return
	}
	respond.JSON(w, http.StatusCreated, "article created successfully", dto.CreateArticleResponse{ArticleID: id})
}

func (h *ArticleHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _ := access.UserIDFromContext(r.Context())
	id, ok := articleID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	var req dto.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := articles.Validate(req.Title, req.Content); err != nil {
		h.fail(w, r, "update article", err)
		return
	}

	if err := h.gate.Authorize(r.Context(), userID, id); err != nil {
		h.fail(w, r, "authorize update", err)
		return
	}
	if _, err := h.articles.Update(r.Context(), id, req.Title, req.Content); err != nil {
		h.fail(w, r, "update article", err)
		return
	}
	respond.JSON(w, http.StatusOK, "article updated successfully", nil)
}

func (h *ArticleHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _ := access.UserIDFromContext(r.Context())
	id, ok := articleID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, "article not found")
		return
	}

	if err := h.gate.Authorize(r.Context(), userID, id); err != nil {
		h.fail(w, r, "authorize delete", err)
		return
	}
	if err := h.articles.Delete(r.Context(), id); err != nil {
		h.fail(w, r, "delete article", err)
		return
	}
	respond.JSON(w, http.StatusOK, "article deleted successfully", nil)
}

func (h *ArticleHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, "title and content are required")
	case errors.Is(err, common.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "article not found")
	case errors.Is(err, common.ErrForbidden):
		respond.Error(w, http.StatusForbidden, "you are not the author of this article")
	default:
		internalError(w, r, h.logger, op, err)
	}
}

func articleID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
