package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/blog-be/internal/access"
	"github.com/hongminglow/blog-be/internal/articles"
	"github.com/hongminglow/blog-be/internal/auth"
	"github.com/hongminglow/blog-be/internal/logger"
	"github.com/hongminglow/blog-be/internal/storage"
	"github.com/hongminglow/blog-be/internal/users"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, store storage.Store, tokens *auth.TokenManager) *httptest.Server {
	t.Helper()
	log := logger.Discard()

	userSvc := users.NewService(store, log)
	articleSvc := articles.NewService(store, log)
	gate := access.NewGate(tokens, articleSvc)

	r := chi.NewRouter()
	RegisterIndex(r)
	NewHealthHandler(time.Now(), store).Register(r)
	NewAuthHandler(userSvc, tokens, log).Register(r)
	NewArticleHandler(articleSvc, gate, log).Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, payload any) (int, envelope) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if raw, ok := payload.(string); ok {
			body.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&body).Encode(payload))
		}
	}

	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env), "%s %s", method, url)
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func articleURL(base string, id int64) string {
	return fmt.Sprintf("%s/articles/%d", base, id)
}
