package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/dimitrije/recipebox-api/pkg/dto"
	"github.com/dimitrije/recipebox-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authTestEnv struct {
	users    *testutil.MockUserService
	tokens   *testutil.MockTokenService
	jwt      *testutil.MockJWTService
	provider *testutil.MockOAuthProvider
	states   *oauth.StateStore
	client   *testutil.HTTPTestClient
}

func setupAuthTest(t *testing.T) *authTestEnv {
	t.Helper()
	env := &authTestEnv{
		users:    new(testutil.MockUserService),
		tokens:   new(testutil.MockTokenService),
		jwt:      new(testutil.MockJWTService),
		provider: new(testutil.MockOAuthProvider),
		states:   oauth.NewStateStore(10 * time.Minute),
	}
	env.provider.On("Name").Return("github").Maybe()

	handler := NewAuthHandler(
		map[string]oauth.Provider{"github": env.provider},
		env.states, env.users, env.tokens, env.jwt, zap.NewNop(),
	)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/users", handler.Register)
	app.Post("/api/auth", handler.Login)
	app.Post("/api/auth/refresh", handler.RefreshToken)
	app.Post("/api/auth/logout", handler.Logout)
	app.Get("/api/auth/:provider/consent", handler.GetConsentURL)
	app.Get("/api/auth/:provider/callback", handler.Callback)

	env.client = testutil.NewHTTPTestClient(t, app)
	return env
}

func (env *authTestEnv) expectTokenIssue(userID uuid.UUID) *services.TokenPair {
	pair := &services.TokenPair{AccessToken: "access-123", RefreshToken: "refresh-456", ExpiresIn: 360000}
	env.jwt.On("GenerateTokenPair", userID).Return(pair, nil)
	env.jwt.On("RefreshExpiry").Return(24 * time.Hour)
	env.tokens.On("StoreRefreshToken", mock.Anything, userID, services.HashToken("refresh-456"), mock.AnythingOfType("time.Time")).Return(nil)
	return pair
}

func TestAuthHandler_Register_Success(t *testing.T) {
	env := setupAuthTest(t)
	userID := uuid.New()

	env.users.On("Register", mock.Anything, "Ann", "ann@example.com", "secret1").
		Return(&models.User{ID: userID, Name: "Ann", Email: "ann@example.com"}, nil)
	env.expectTokenIssue(userID)

	rec := env.client.POST("/api/users", dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TokenResponse
	testutil.ParseJSON(t, rec, &got)
	assert.Equal(t, "access-123", got.Token)
	assert.Equal(t, "refresh-456", got.RefreshToken)
	env.tokens.AssertExpectations(t)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	env := setupAuthTest(t)

	rec := env.client.POST("/api/users", dto.RegisterRequest{Email: "not-an-email", Password: "123"}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got dto.ValidationErrorResponse
	testutil.ParseJSON(t, rec, &got)
	assert.Len(t, got.Errors, 3)
	env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_PasswordTooLong(t *testing.T) {
	env := setupAuthTest(t)

	req := dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: strings.Repeat("p", 100)}
	rec := env.client.POST("/api/users", req, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got dto.ValidationErrorResponse
	testutil.ParseJSON(t, rec, &got)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "password", got.Errors[0].Param)
	env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DisplayNameEmail(t *testing.T) {
	env := setupAuthTest(t)

	req := dto.RegisterRequest{Name: "Ann", Email: "Ann <ann@example.com>", Password: "secret1"}
	rec := env.client.POST("/api/users", req, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env.users.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	env := setupAuthTest(t)

	env.users.On("Register", mock.Anything, "Ann", "ann@example.com", "secret1").Return(nil, services.ErrEmailTaken)

	rec := env.client.POST("/api/users", dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"User already exists"}]}`, rec.Body.String())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupAuthTest(t)

	env.users.On("Authenticate", mock.Anything, "ann@example.com", "wrong").Return(nil, services.ErrInvalidCredentials)

	rec := env.client.POST("/api/auth", dto.LoginRequest{Email: "ann@example.com", Password: "wrong"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"msg":"Invalid Credentials"}]}`, rec.Body.String())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	env := setupAuthTest(t)
	userID := uuid.New()

	env.users.On("Authenticate", mock.Anything, "ann@example.com", "secret1").Return(&models.User{ID: userID}, nil)
	env.expectTokenIssue(userID)

	rec := env.client.POST("/api/auth", dto.LoginRequest{Email: "ann@example.com", Password: "secret1"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"access-123"`)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	env := setupAuthTest(t)
	userID := uuid.New()
	pair := &services.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}

	env.jwt.On("ValidateRefreshToken", "old-refresh").Return(userID, nil)
	env.users.On("GetByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	env.jwt.On("GenerateTokenPair", userID).Return(pair, nil)
	env.jwt.On("RefreshExpiry").Return(24 * time.Hour)
	env.tokens.On("RotateRefreshToken", mock.Anything, userID,
		services.HashToken("old-refresh"), services.HashToken("new-refresh"), mock.AnythingOfType("time.Time")).Return(nil)

	rec := env.client.POST("/api/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "old-refresh"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-refresh")
	env.tokens.AssertExpectations(t)
}

func TestAuthHandler_RefreshToken_Revoked(t *testing.T) {
	env := setupAuthTest(t)
	userID := uuid.New()

	env.jwt.On("ValidateRefreshToken", "old-refresh").Return(userID, nil)
	env.users.On("GetByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	env.jwt.On("GenerateTokenPair", userID).Return(&services.TokenPair{RefreshToken: "new-refresh"}, nil)
	env.jwt.On("RefreshExpiry").Return(24 * time.Hour)
	env.tokens.On("RotateRefreshToken", mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
		Return(services.ErrRefreshTokenNotFound)

	rec := env.client.POST("/api/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "old-refresh"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Token is not valid"}`, rec.Body.String())
}

func TestAuthHandler_RefreshToken_InvalidJWT(t *testing.T) {
	env := setupAuthTest(t)

	env.jwt.On("ValidateRefreshToken", "garbage").Return(uuid.Nil, errors.New("bad token"))

	rec := env.client.POST("/api/auth/refresh", dto.RefreshTokenRequest{RefreshToken: "garbage"}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RefreshToken_Missing(t *testing.T) {
	env := setupAuthTest(t)

	rec := env.client.POST("/api/auth/refresh", map[string]string{}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh_token")
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTest(t)

	env.tokens.On("RevokeRefreshToken", mock.Anything, services.HashToken("refresh-456")).Return(nil)

	rec := env.client.POST("/api/auth/logout", dto.RefreshTokenRequest{RefreshToken: "refresh-456"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"Logged out"}`, rec.Body.String())
	env.tokens.AssertExpectations(t)
}

func TestAuthHandler_GetConsentURL(t *testing.T) {
	env := setupAuthTest(t)

	env.provider.On("GetConsentURL", mock.AnythingOfType("string")).Return("https://github.com/login/oauth/authorize?state=x")

	rec := env.client.GET("/api/auth/github/consent", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "github.com")
}

func TestAuthHandler_GetConsentURL_UnsupportedProvider(t *testing.T) {
	env := setupAuthTest(t)

	rec := env.client.GET("/api/auth/gitlab/consent", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"Unsupported provider"}`, rec.Body.String())
}

func TestAuthHandler_Callback_InvalidState(t *testing.T) {
	env := setupAuthTest(t)

	rec := env.client.GET("/api/auth/github/callback?state=forged&code=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.provider.AssertNotCalled(t, "ExchangeCode", mock.Anything, mock.Anything)
}

func TestAuthHandler_Callback_Success(t *testing.T) {
	env := setupAuthTest(t)
	userID := uuid.New()
	info := &oauth.UserInfo{ID: "42", Email: "gh@example.com", Name: "GH", Provider: "github"}

	state, err := env.states.Issue("github")
	require.NoError(t, err)

	env.provider.On("ExchangeCode", mock.Anything, "abc").Return(info, nil)
	env.users.On("FindOrCreateFromOAuth", mock.Anything, info).Return(&models.User{ID: userID}, nil)
	env.expectTokenIssue(userID)

	rec := env.client.GET("/api/auth/github/callback?state="+url.QueryEscape(state)+"&code=abc", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"access-123"`)

	// The state is single use.
	rec = env.client.GET("/api/auth/github/callback?state="+url.QueryEscape(state)+"&code=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Callback_ExchangeFails(t *testing.T) {
	env := setupAuthTest(t)

	state, err := env.states.Issue("github")
	require.NoError(t, err)

	env.provider.On("ExchangeCode", mock.Anything, "abc").Return(nil, errors.New("denied"))

	rec := env.client.GET("/api/auth/github/callback?state="+url.QueryEscape(state)+"&code=abc", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env.users.AssertNotCalled(t, "FindOrCreateFromOAuth", mock.Anything, mock.Anything)
}
