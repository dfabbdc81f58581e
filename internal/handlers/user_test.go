package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dimitrije/recipebox-api/internal/middleware"
	"github.com/dimitrije/recipebox-api/internal/models"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/dimitrije/recipebox-api/pkg/dto"
	"github.com/dimitrije/recipebox-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupUserTest(t *testing.T) (*testutil.MockUserService, *testutil.HTTPTestClient) {
	t.Helper()
	users := new(testutil.MockUserService)
	handler := NewUserHandler(users, zap.NewNop())

	app := drift.New()
	app.Use(middleware.Auth(testutil.TestJWTService()))
	app.Get("/api/auth", handler.GetMe)

	return users, testutil.NewHTTPTestClient(t, app)
}

func TestUserHandler_GetMe(t *testing.T) {
	users, client := setupUserTest(t)
	userID := uuid.New()
	hash := "bcrypt-hash"
	users.On("GetByID", mock.Anything, userID).Return(&models.User{
		ID:           userID,
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: &hash,
		Provider:     models.ProviderLocal,
		CreatedAt:    time.Now(),
	}, nil)

	rec := client.GET("/api/auth", asUser(t, userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), hash)

	var got dto.UserResponse
	testutil.ParseJSON(t, rec, &got)
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, "ann@example.com", got.Email)
}

func TestUserHandler_GetMe_NotFound(t *testing.T) {
	users, client := setupUserTest(t)
	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(nil, services.ErrUserNotFound)

	rec := client.GET("/api/auth", asUser(t, userID))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg":"User not found"}`, rec.Body.String())
}

func TestUserHandler_GetMe_StoreFailure(t *testing.T) {
	users, client := setupUserTest(t)
	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(nil, errors.New("timeout"))

	rec := client.GET("/api/auth", asUser(t, userID))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server Error", rec.Body.String())
}
