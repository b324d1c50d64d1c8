package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/blog-be/internal/auth"
	"github.com/hongminglow/blog-be/internal/common"
	"github.com/hongminglow/blog-be/internal/http/respond"
	"github.com/hongminglow/blog-be/internal/models/dto"
	"github.com/hongminglow/blog-be/internal/users"
)

// AuthHandler owns register/login endpoints.
type AuthHandler struct {
	users  *users.Service
	tokens *auth.TokenManager
	logger *slog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(users *users.Service, tokens *auth.TokenManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	id, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrPasswordTooLong):
			respond.Error(w, http.StatusBadRequest, "password is too long")
		case errors.Is(err, common.ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, "username, email and password are required")
		case errors.Is(err, common.ErrDuplicateIdentity):
			respond.Error(w, http.StatusBadRequest, common.ErrDuplicateIdentity.Error())
		default:
			internalError(w, r, h.logger, "register user", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, "user created successfully", dto.RegisterResponse{ID: id})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	user, err := h.users.VerifyCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrInvalidCredentials):
			h.logger.InfoContext(r.Context(), "login rejected", "username", req.Username)
			respond.Error(w, http.StatusUnauthorized, common.ErrInvalidCredentials.Error())
		default:
			internalError(w, r, h.logger, "verify credentials", err)
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		internalError(w, r, h.logger, "issue token", err)
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{Token: token, User: user.Summary()})
}
