package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hongminglow/blog-be/internal/http/respond"
	"github.com/hongminglow/blog-be/internal/middleware"
)

// internalError logs err and answers with a generic 500 so storage details
// never reach the client.
func internalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	logger.ErrorContext(r.Context(), op+" failed",
		"error", err,
		"request_id", middleware.GetRequestID(r.Context()),
	)
	respond.Error(w, http.StatusInternalServerError, "internal server error")
}
