package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/recipebox-api/internal/config"
	"github.com/dimitrije/recipebox-api/internal/database"
	"github.com/dimitrije/recipebox-api/internal/logging"
	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/dimitrije/recipebox-api/internal/server"
	"github.com/dimitrije/recipebox-api/internal/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const (
	tokenCleanupInterval = time.Hour
	oauthStateTTL        = 10 * time.Minute
	oauthSweepInterval   = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db, services.NewPasswordHasher(bcrypt.DefaultCost))
	tokenService := services.NewTokenService(db)

	states := oauth.NewStateStore(oauthStateTTL)

	handler := server.NewHandler(cfg, server.Deps{
		JWT:           jwtService,
		Users:         userService,
		Tokens:        tokenService,
		Recipes:       services.NewRecipeService(db),
		RecipeBooks:   services.NewRecipeBookService(db),
		ShoppingLists: services.NewShoppingListService(db),
		Providers:     oauth.NewProviders(cfg),
		States:        states,
		Store:         db,
	}, logger)

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("ownership_policy", cfg.OwnershipPolicy),
		zap.Float64("rate_limit", cfg.RateLimit))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.New(cfg.Port, handler, cfg.ShutdownTimeout, logger).Run(gctx)
	})
	g.Go(func() error {
		states.RunSweeper(gctx, oauthSweepInterval)
		return nil
	})
	g.Go(func() error {
		cleanupRefreshTokens(gctx, tokenService, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}

func cleanupRefreshTokens(ctx context.Context, tokens *services.TokenService, logger *zap.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := tokens.CleanupExpired(ctx)
			if err != nil {
				logger.Warn("refresh token cleanup failed", zap.Error(err))
				continue
			}
			logger.Debug("refresh tokens cleaned up", zap.Int64("removed", removed))
		}
	}
}
