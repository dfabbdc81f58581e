package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/dimitrije/recipebox-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

const oauthExchangeTimeout = 30 * time.Second

type AuthHandler struct {
	providers    map[string]oauth.Provider
	states       *oauth.StateStore
	userService  UserServiceInterface
	tokenService TokenServiceInterface
	jwtService   JWTServiceInterface
	logger       *zap.Logger
}

func NewAuthHandler(
	providers map[string]oauth.Provider,
	states *oauth.StateStore,
	userService UserServiceInterface,
	tokenService TokenServiceInterface,
	jwtService JWTServiceInterface,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		providers:    providers,
		states:       states,
		userService:  userService,
		tokenService: tokenService,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (h *AuthHandler) Register(c *drift.Context) {
	var req dto.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(c, errs...)
		return
	}

	ctx := c.Request.Context()

	user, err := h.userService.Register(ctx, req.Name, req.Email, req.Password)
	if errors.Is(err, services.ErrEmailTaken) {
		validationFailed(c, dto.FieldError{Msg: "User already exists"})
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	h.issueTokens(ctx, c, user.ID)
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		validationFailed(c, errs...)
		return
	}

	ctx := c.Request.Context()

	user, err := h.userService.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		validationFailed(c, dto.FieldError{Msg: "Invalid Credentials"})
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	h.issueTokens(ctx, c, user.ID)
}

// RefreshToken trades a live refresh token for a new pair. The old token is
// revoked in the same step so it cannot be replayed.
func (h *AuthHandler) RefreshToken(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}
	if req.RefreshToken == "" {
		validationFailed(c, dto.FieldError{Msg: "Refresh token is required", Param: "refresh_token", Location: "body"})
		return
	}

	userID, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		message(c, http.StatusUnauthorized, "Token is not valid")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.userService.GetByID(ctx, userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			message(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		serverError(c, h.logger, err)
		return
	}

	pair, err := h.jwtService.GenerateTokenPair(userID)
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	err = h.tokenService.RotateRefreshToken(ctx, userID,
		services.HashToken(req.RefreshToken), services.HashToken(pair.RefreshToken), expiresAt)
	if errors.Is(err, services.ErrRefreshTokenNotFound) {
		message(c, http.StatusUnauthorized, "Token is not valid")
		return
	}
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, tokenResponse(pair))
}

func (h *AuthHandler) Logout(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	if req.RefreshToken != "" {
		if err := h.tokenService.RevokeRefreshToken(c.Request.Context(), services.HashToken(req.RefreshToken)); err != nil {
			serverError(c, h.logger, err)
			return
		}
	}

	message(c, http.StatusOK, "Logged out")
}

func (h *AuthHandler) GetConsentURL(c *drift.Context) {
	p, ok := h.providers[c.Param("provider")]
	if !ok {
		message(c, http.StatusBadRequest, "Unsupported provider")
		return
	}

	state, err := h.states.Issue(p.Name())
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, dto.ConsentURLResponse{URL: p.GetConsentURL(state)})
}

func (h *AuthHandler) Callback(c *drift.Context) {
	p, ok := h.providers[c.Param("provider")]
	if !ok {
		message(c, http.StatusBadRequest, "Unsupported provider")
		return
	}

	if !h.states.Consume(c.QueryParam("state"), p.Name()) {
		message(c, http.StatusBadRequest, "Invalid or expired state")
		return
	}

	code := c.QueryParam("code")
	if code == "" {
		message(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), oauthExchangeTimeout)
	defer cancel()

	info, err := p.ExchangeCode(ctx, code)
	if err != nil {
		h.logger.Warn("oauth exchange failed", zap.String("provider", p.Name()), zap.Error(err))
		message(c, http.StatusUnauthorized, "OAuth sign-in failed")
		return
	}

	user, err := h.userService.FindOrCreateFromOAuth(ctx, info)
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	h.issueTokens(ctx, c, user.ID)
}

func (h *AuthHandler) issueTokens(ctx context.Context, c *drift.Context, userID uuid.UUID) {
	pair, err := h.jwtService.GenerateTokenPair(userID)
	if err != nil {
		serverError(c, h.logger, err)
		return
	}

	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	if err := h.tokenService.StoreRefreshToken(ctx, userID, services.HashToken(pair.RefreshToken), expiresAt); err != nil {
		serverError(c, h.logger, err)
		return
	}

	_ = c.JSON(http.StatusOK, tokenResponse(pair))
}

func tokenResponse(pair *services.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}
