package server

import (
	"context"
	"net/http"
	"time"

	"github.com/dimitrije/recipebox-api/internal/config"
	"github.com/dimitrije/recipebox-api/internal/handlers"
	authmw "github.com/dimitrije/recipebox-api/internal/middleware"
	"github.com/dimitrije/recipebox-api/internal/oauth"
	"github.com/dimitrije/recipebox-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the routes are built from.
type Deps struct {
	JWT           *services.JWTService
	Users         handlers.UserServiceInterface
	Tokens        handlers.TokenServiceInterface
	Recipes       handlers.RecipeServiceInterface
	RecipeBooks   handlers.RecipeBookServiceInterface
	ShoppingLists handlers.ShoppingListServiceInterface
	Providers     map[string]oauth.Provider
	States        *oauth.StateStore
	Store         Pinger
}

// NewHandler assembles the API. Every request passes the rate limiter and
// is counted in the metrics before reaching the router.
func NewHandler(cfg *config.Config, deps Deps, logger *zap.Logger) http.Handler {
	strict := cfg.StrictOwnership()

	authHandler := handlers.NewAuthHandler(deps.Providers, deps.States, deps.Users, deps.Tokens, deps.JWT, logger)
	userHandler := handlers.NewUserHandler(deps.Users, logger)
	recipeHandler := handlers.NewRecipeHandler(deps.Recipes, deps.Users, strict, logger)
	bookHandler := handlers.NewRecipeBookHandler(deps.RecipeBooks, deps.Users, strict, logger)
	listHandler := handlers.NewShoppingListHandler(deps.ShoppingLists, deps.Users, strict, logger)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(authmw.RequestID())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", authmw.TokenHeader, authmw.RequestIDHeader},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Post("/users", authHandler.Register)
	api.Post("/auth", authHandler.Login)

	auth := api.Group("/auth")
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)

	api.Get("/health", func(c *drift.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := deps.Store.Ping(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			_ = c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	protected := api.Group("")
	protected.Use(authmw.Auth(deps.JWT))

	protected.Get("/auth", userHandler.GetMe)

	protected.Post("/recipes", recipeHandler.Create)
	protected.Get("/recipes", recipeHandler.List)
	protected.Get("/recipes/:id", authmw.ValidateID(recipeHandler.Get))
	protected.Put("/recipes/:id", authmw.ValidateID(recipeHandler.Update))
	protected.Delete("/recipes/:id", authmw.ValidateID(recipeHandler.Delete))

	protected.Post("/recipe_books", bookHandler.Create)
	protected.Get("/recipe_books", bookHandler.List)
	protected.Get("/recipe_books/:id", authmw.ValidateID(bookHandler.Get))
	protected.Put("/recipe_books/:id", authmw.ValidateID(bookHandler.Update))
	protected.Delete("/recipe_books/:id", authmw.ValidateID(bookHandler.Delete))

	protected.Post("/shopping_lists", listHandler.Create)
	protected.Get("/shopping_lists", listHandler.List)
	protected.Get("/shopping_lists/:id", authmw.ValidateID(listHandler.Get))
	protected.Put("/shopping_lists/:id", authmw.ValidateID(listHandler.Update))
	protected.Delete("/shopping_lists/:id", authmw.ValidateID(listHandler.Delete))

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", metricsMiddleware(rateLimitMiddleware(limiter, app)))

	return mux
}
