package router

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/platefull/backend/config"
	"github.com/platefull/backend/internal/api"
	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/service"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Log    *zap.Logger

	Auth       *service.AuthService
	Users      *service.UserService
	Recipes    *service.RecipeService
	Picks      *service.PicksService
	Categories *service.CategoryService
	Favorites  *service.FavoriteService
	Generation *service.GenerationService
}

// New builds the gin engine with all middleware and routes registered.
func New(d Deps) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestid.New())
	engine.Use(middleware.CORS())

	health := api.NewHealthHandler(d.DB, d.Redis)
	engine.GET("/health", health.Health)

	authHandler := api.NewAuthHandler(d.Auth, d.Log)
	userHandler := api.NewUserHandler(d.Users, d.Log)
	recipeHandler := api.NewRecipeHandler(d.Recipes, d.Picks, d.Log)
	categoryHandler := api.NewCategoryHandler(d.Categories, d.Log)
	favoriteHandler := api.NewFavoriteHandler(d.Favorites, d.Log)
	generateHandler := api.NewGenerateHandler(d.Generation, d.Log)

	requireAuth := middleware.AuthMiddleware(d.Auth)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		v1.GET("/recipes", recipeHandler.List)
		v1.GET("/recipes/picks", recipeHandler.DailyPicks)
		v1.GET("/recipes/:id", recipeHandler.Get)

		v1.GET("/recipes/:id/favorites/count", favoriteHandler.Count)

		v1.GET("/categories", categoryHandler.List)

		authed := v1.Group("")
		authed.Use(requireAuth)
		{
			authed.GET("/users/me", userHandler.Me)
			authed.PUT("/users/me", userHandler.UpdateMe)

			authed.POST("/recipes", recipeHandler.Create)
			authed.PUT("/recipes/:id", recipeHandler.Update)
			authed.DELETE("/recipes/:id", recipeHandler.Delete)

			authed.POST("/categories", categoryHandler.Create)
			authed.PUT("/categories/:id", categoryHandler.Update)
			authed.DELETE("/categories/:id", categoryHandler.Delete)

			authed.GET("/favorites", favoriteHandler.List)
			authed.POST("/recipes/:id/favorite", favoriteHandler.Save)
			authed.DELETE("/recipes/:id/favorite", favoriteHandler.Remove)
			authed.GET("/recipes/:id/favorite", favoriteHandler.Check)

			generate := authed.Group("/generate")
			if d.Redis != nil {
				limiter := middleware.NewGenerationRateLimiter(d.Redis, d.Config.RateLimit.Requests, d.Config.RateLimit.Window)
				generate.Use(limiter.Middleware())
			}
			generate.POST("/candidates", generateHandler.Candidates)
			generate.POST("/recipe", generateHandler.Recipe)
		}
	}

	return engine
}
