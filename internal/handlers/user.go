package handlers

import (
	"errors"
	"net/http"

	"github.com/dimitrije/recipebox-api/internal/middleware"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/dimitrije/recipebox-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService UserServiceInterface
	logger      *zap.Logger
}

func NewUserHandler(userService UserServiceInterface, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// GetMe returns the authenticated caller's profile.
func (h *UserHandler) GetMe(c *drift.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), middleware.GetUserID(c))
	if errors.Is(err, services.ErrUserNotFound) {
		message(c, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
