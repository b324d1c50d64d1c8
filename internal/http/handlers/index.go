package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/blog-be/internal/http/respond"
)

// Version is reported by the index endpoint.
const Version = "1.0.0"

type indexPayload struct {
	Version   string              `json:"version"`
	Endpoints map[string][]string `json:"endpoints"`
}

// RegisterIndex serves a short description of the API at "/".
func RegisterIndex(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, "blog API is running", indexPayload{
			Version: Version,
			Endpoints: map[string][]string{
				"auth":     {"POST /auth/register", "POST /auth/login"},
				"articles": {"GET /articles", "GET /articles/{id}", "POST /articles", "PUT /articles/{id}", "DELETE /articles/{id}"},
				"health":   {"GET /health"},
			},
		})
	})
}
