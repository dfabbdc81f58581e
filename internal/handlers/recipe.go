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

type RecipeHandler struct {
	recipeService RecipeServiceInterface
	userService   UserServiceInterface
	strict        bool
	logger        *zap.Logger
}

// NewRecipeHandler builds the recipe routes. With strictOwnership set, reads
// and updates by id are limited to the owner as deletes always are.
func NewRecipeHandler(recipeService RecipeServiceInterface, userService UserServiceInterface, strictOwnership bool, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		userService:   userService,
		strict:        strictOwnership,
		logger:        logger,
	}
}

func (h *RecipeHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)

	var req dto.RecipeRequest
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

	recipe, err := h.recipeService.Create(ctx, userID, deref(req.Name), req.Ingredients, deref(req.Directions))
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	id := middleware.GetID(c)

	var req dto.RecipeRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(c, errs...)
		return
	}

	ctx := c.Request.Context()

	recipe, err := h.recipeService.GetByID(ctx, id)
	if errors.Is(err, services.ErrRecipeNotFound) {
		message(c, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if h.strict && !services.IsOwner(recipe.UserID, userID) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	result, err := h.recipeService.Update(ctx, id, req.Name, req.Ingredients, req.Directions)
	if errors.Is(err, services.ErrRecipeNotFound) {
		message(c, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, updateAck(result))
}

func (h *RecipeHandler) List(c *drift.Context) {
	recipes, err := h.recipeService.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(c *drift.Context) {
	recipe, err := h.recipeService.GetByID(c.Request.Context(), middleware.GetID(c))
	if errors.Is(err, services.ErrRecipeNotFound) {
		message(c, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if h.strict && !services.IsOwner(recipe.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	_ = c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *drift.Context) {
	id := middleware.GetID(c)
	ctx := c.Request.Context()

	recipe, err := h.recipeService.GetByID(ctx, id)
	if errors.Is(err, services.ErrRecipeNotFound) {
		message(c, http.StatusNotFound, "Recipe not found")
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	if !services.IsOwner(recipe.UserID, middleware.GetUserID(c)) {
		message(c, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	if err := h.recipeService.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			message(c, http.StatusNotFound, "Recipe not found")
			return
		}
		serverError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Recipe removed")
}
