package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dimitrije/recipebox-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGitHubProvider_Name(t *testing.T) {
	provider := NewGitHubProvider(config.OAuthConfig{})
	assert.Equal(t, "github", provider.Name())
}

func TestGitHubProvider_GetConsentURL(t *testing.T) {
	provider := NewGitHubProvider(config.OAuthConfig{
		ClientID:    "test-client-id",
		RedirectURL: "http://localhost/callback",
	})

	url := provider.GetConsentURL("test-state")

	assert.Contains(t, url, "github.com")
	assert.Contains(t, url, "client_id=test-client-id")
	assert.Contains(t, url, "state=test-state")
	assert.Contains(t, url, "redirect_uri=http")
}

// newTestGitHubProvider points token exchange and API calls at one test server.
func newTestGitHubProvider(t *testing.T, api http.HandlerFunc) *GitHubProvider {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer"}`))
	})
	mux.HandleFunc("/", api)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     "test-client-id",
			ClientSecret: "test-secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  server.URL + "/authorize",
				TokenURL: server.URL + "/token",
			},
		},
		apiURL: server.URL,
	}
}

func TestGitHubProvider_ExchangeCode_Success(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 12345,
			"login": "testuser",
			"name": "Test User",
			"email": "test@example.com",
			"avatar_url": "https://avatars.githubusercontent.com/u/12345"
		}`))
	})

	info, err := provider.ExchangeCode(context.Background(), "code")

	require.NoError(t, err)
	assert.Equal(t, "12345", info.ID)
	assert.Equal(t, "Test User", info.Name)
	assert.Equal(t, "test@example.com", info.Email)
	assert.Equal(t, "github", info.Provider)
}

func TestGitHubProvider_ExchangeCode_EmailFallback(t *testing.T) {
	emailsFetched := false
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user":
			_, _ = w.Write([]byte(`{"id": 1, "login": "testuser", "name": "", "email": ""}`))
		case "/user/emails":
			emailsFetched = true
			_, _ = w.Write([]byte(`[
				{"email": "unverified@example.com", "primary": false, "verified": false},
				{"email": "secondary@example.com", "primary": false, "verified": true},
				{"email": "private@example.com", "primary": true, "verified": true}
			]`))
		}
	})

	info, err := provider.ExchangeCode(context.Background(), "code")

	require.NoError(t, err)
	assert.True(t, emailsFetched)
	assert.Equal(t, "private@example.com", info.Email)
	assert.Equal(t, "testuser", info.Name)
}

func TestGitHubProvider_ExchangeCode_NoVerifiedEmail(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user":
			_, _ = w.Write([]byte(`{"id": 1, "login": "testuser"}`))
		case "/user/emails":
			_, _ = w.Write([]byte(`[{"email": "x@example.com", "primary": true, "verified": false}]`))
		}
	})

	_, err := provider.ExchangeCode(context.Background(), "code")

	assert.ErrorIs(t, err, errNoGitHubEmail)
}

func TestGitHubProvider_ExchangeCode_APIError(t *testing.T) {
	provider := newTestGitHubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := provider.ExchangeCode(context.Background(), "code")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
