package http

import (
	"time"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/http/handlers"
	"github.com/creator-marketplace/backend/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	directoryHandler *handlers.DirectoryHandler,
	campaignHandler *handlers.CampaignHandler,
	adminHandler *handlers.AdminHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/creator-categories", metaHandler.GetCreatorCategories)
	api.Get("/meta/brand-categories", metaHandler.GetBrandCategories)
	api.Get("/meta/platforms", metaHandler.GetPlatforms)
	api.Get("/meta/follower-ranges", metaHandler.GetFollowerRanges)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Own profile
	protected.Get("/me", profileHandler.GetMe)
	protected.Put("/me", profileHandler.UpdateProfile)
	protected.Post("/me/submit-review", profileHandler.SubmitForReview)
	protected.Put("/me/visibility", profileHandler.SetVisibility)

	// Directories
	protected.Get("/creators", directoryHandler.ListCreators)
	protected.Get("/brands", directoryHandler.ListBrands)
	protected.Get("/campaigns/browse", directoryHandler.ListCampaigns)

	// Profiles
	protected.Get("/profiles/:id", profileHandler.GetProfile)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListOwnCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Put("/campaigns/:id/status", campaignHandler.SetCampaignStatus)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Moderation
	admin := protected.Group("/admin", middleware.AdminMiddleware(cfg))
	admin.Get("/profiles/under-review", adminHandler.ListUnderReview)
	admin.Post("/profiles/:id/approve", adminHandler.ApproveProfile)
	admin.Post("/profiles/:id/reject", adminHandler.RejectProfile)
	admin.Get("/moderation/pending", adminHandler.ListPendingRetries)
	admin.Post("/moderation/retry", adminHandler.RetryPending)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
