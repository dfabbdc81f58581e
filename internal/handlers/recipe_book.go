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

const msgRecipeBookNotFound = "Recipe book not found"

type RecipeBookHandler struct {
	bookService RecipeBookServiceInterface
	userService UserServiceInterface
	strict      bool
	logger      *zap.Logger
}

func NewRecipeBookHandler(bookService RecipeBookServiceInterface, userService UserServiceInterface, strictOwnership bool, logger *zap.Logger) *RecipeBookHandler {
	return &RecipeBookHandler{
		bookService: bookService,
		userService: userService,
		strict:      strictOwnership,
		logger:      logger,
	}
}

func (h *RecipeBookHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)

	var req dto.RecipeBookRequest
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

	book, err := h.bookService.Create(ctx, userID, deref(req.Name), req.Recipes)
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, book)
}

func (h *RecipeBookHandler) Update(c *drift.Context) {
	id := middleware.GetID(c)

	var req dto.RecipeBookRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(c, errs...)
		return
	}

	ctx := c.Request.Context()

	book, err := h.bookService.GetByID(ctx, id)
	if errors.Is(err, services.ErrRecipeBookNotFound) {
		message(c, http.StatusNotFound, msgRecipeBookNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if h.strict && !services.IsOwner(book.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	result, err := h.bookService.Update(ctx, id, req.Name, req.Recipes)
	if errors.Is(err, services.ErrRecipeBookNotFound) {
		message(c, http.StatusNotFound, msgRecipeBookNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, updateAck(result))
}

func (h *RecipeBookHandler) List(c *drift.Context) {
	books, err := h.bookService.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, books)
}

func (h *RecipeBookHandler) Get(c *drift.Context) {
	book, err := h.bookService.GetByID(c.Request.Context(), middleware.GetID(c))
	if errors.Is(err, services.ErrRecipeBookNotFound) {
		message(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if h.strict && !services.IsOwner(book.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	_ = c.JSON(http.StatusOK, book)
}

func (h *RecipeBookHandler) Delete(c *drift.Context) {
	id := middleware.GetID(c)
	ctx := c.Request.Context()

	book, err := h.bookService.GetByID(ctx, id)
	if errors.Is(err, services.ErrRecipeBookNotFound) {
		message(c, http.StatusNotFound, msgRecipeBookNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if !services.IsOwner(book.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	if err := h.bookService.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrRecipeBookNotFound) {
			message(c, http.StatusNotFound, msgRecipeBookNotFound)
			return
		}
		serverError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Recipe book removed")
}
