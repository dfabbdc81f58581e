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

const msgShoppingListNotFound = "Shopping List not found"

type ShoppingListHandler struct {
	listService ShoppingListServiceInterface
	userService UserServiceInterface
	strict      bool
	logger      *zap.Logger
}

func NewShoppingListHandler(listService ShoppingListServiceInterface, userService UserServiceInterface, strictOwnership bool, logger *zap.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		listService: listService,
		userService: userService,
		strict:      strictOwnership,
		logger:      logger,
	}
}

func (h *ShoppingListHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)

	var req dto.ShoppingListRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(c, errs...)
		return
	}

	ctx := c.Request.Context()

	if _, err := h.userService.GetByID(ctx, userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			message(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		serverError(c, h.logger, err)
		return
	}

	list, err := h.listService.Create(ctx, userID, deref(req.Name), req.Items)
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, list)
}

func (h *ShoppingListHandler) Update(c *drift.Context) {
	id := middleware.GetID(c)

	var req dto.ShoppingListRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(c, errs...)
		return
	}

	ctx := c.Request.Context()

	list, err := h.listService.GetByID(ctx, id)
	if errors.Is(err, services.ErrShoppingListNotFound) {
		message(c, http.StatusNotFound, msgShoppingListNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if h.strict && !services.IsOwner(list.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	result, err := h.listService.Update(ctx, id, req.Name, req.Items)
	if errors.Is(err, services.ErrShoppingListNotFound) {
		message(c, http.StatusNotFound, msgShoppingListNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, updateAck(result))
}

func (h *ShoppingListHandler) List(c *drift.Context) {
	lists, err := h.listService.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, lists)
}

func (h *ShoppingListHandler) Get(c *drift.Context) {
	list, err := h.listService.GetByID(c.Request.Context(), middleware.GetID(c))
	if errors.Is(err, services.ErrShoppingListNotFound) {
		message(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if h.strict && !services.IsOwner(list.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	_ = c.JSON(http.StatusOK, list)
}

func (h *ShoppingListHandler) Delete(c *drift.Context) {
	id := middleware.GetID(c)
	ctx := c.Request.Context()

	list, err := h.listService.GetByID(ctx, id)
	if errors.Is(err, services.ErrShoppingListNotFound) {
		message(c, http.StatusNotFound, msgShoppingListNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if !services.IsOwner(list.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	if err := h.listService.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrShoppingListNotFound) {
			message(c, http.StatusNotFound, msgShoppingListNotFound)
			return
		}
		serverError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Shopping List removed")
}
