package main

import (
	"database/sql"
	"fmt"

	"github.com/bizreview/backend/internal/auth"
	"github.com/bizreview/backend/internal/config"
	"github.com/bizreview/backend/internal/handlers"
	"github.com/bizreview/backend/internal/middleware"
	"github.com/bizreview/backend/internal/repositories"
	"github.com/bizreview/backend/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// newRouter wires repositories, services and handlers into the HTTP router
func newRouter(cfg *config.Config, db *sql.DB, logger *zap.Logger) chi.Router {
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	passwordHasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	photoRepo := repositories.NewPhotoRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo, passwordHasher, tokenGenerator, logger)
	businessService := services.NewBusinessService(businessRepo, photoRepo, reviewRepo, logger)
	photoService := services.NewPhotoService(photoRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, logger)

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(db, logger)
	businessHandler := handlers.NewBusinessHandler(businessService, logger)
	photoHandler := handlers.NewPhotoHandler(photoService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	userHandler := handlers.NewUserHandler(userService, businessService, photoService, reviewService, logger)

	// Initialize auth middleware
	requireAuth := middleware.RequireAuthentication(tokenGenerator, userService, logger)
	optionalAuth := middleware.AdminOptional(tokenGenerator, userService, logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.RequestSizeLimit(cfg.Server.MaxRequestSize))

	systemHandler.RegisterRoutes(r)

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	businessHandler.RegisterRoutes(r, requireAuth)
	photoHandler.RegisterRoutes(r, requireAuth)
	reviewHandler.RegisterRoutes(r, requireAuth)
	userHandler.RegisterRoutes(r, requireAuth, optionalAuth)

	return r
}
