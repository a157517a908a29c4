package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCreatorID(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "no headers returns empty",
			headers:  map[string]string{},
			expected: "",
		},
		{
			name: "X-Forwarded-User takes priority",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
			},
			expected: "alice",
		},
		{
			name: "X-Forwarded-Email used when no user",
			headers: map[string]string{
				"X-Forwarded-Email": "bob@example.com",
			},
			expected: "bob@example.com",
		},
		{
			name: "X-Remote-User used for kube-rbac-proxy API clients",
			headers: map[string]string{
				"X-Remote-User": "system:serviceaccount:my-namespace:my-api-client",
			},
			expected: "system:serviceaccount:my-namespace:my-api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			result := extractCreatorID(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRequirePrincipal(t *testing.T) {
	e := echo.New()
	handler := requirePrincipal()(func(c *echo.Context) error {
		p := principalFrom(c)
		return c.String(http.StatusOK, p.CreatorID)
	})

	t.Run("missing identity is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("identity is stored on the context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Remote-User", "creator-1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, "creator-1", rec.Body.String())
	})
}
