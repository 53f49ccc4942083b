package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"goeventcity/internal/cache"
	"goeventcity/internal/config"
	"goeventcity/internal/database"
	"goeventcity/internal/middleware"
	"goeventcity/internal/modules/auth"
	"goeventcity/internal/modules/booking"
	"goeventcity/internal/modules/catalog"
	"goeventcity/internal/notification"
	jwtsvc "goeventcity/internal/pkg/jwt"
	"goeventcity/internal/repository"
	"goeventcity/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// One client per process, injected everywhere. Handlers never construct
	// their own connections.
	identityRepo := repository.NewIdentityRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	roleRepo := repository.NewRoleAssignmentRepository(db)
	permissionRepo := repository.NewPermissionGrantRepository(db)
	sessionRepo := repository.NewBookingSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewEventRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	performerRepo := repository.NewPerformerRepository(db)

	rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	listingCache := cache.New(rdb, cfg.CacheTTL)

	mailer := notification.NewConsoleMailer(cfg.MailEnabled)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(identityRepo, accountRepo, roleRepo, j, mailer)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(sessionRepo, bookingRepo, mailer, cfg.BookingSessionTTL)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(eventRepo, venueRepo, performerRepo, listingCache)
	catalogHandler := catalog.NewHandler(catalogService, listingCache)

	guard := middleware.NewPermissionGuard(permissionRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)

			manage := protected.Group("/")
			manage.Use(guard.Require("manage_events"))
			catalogHandler.RegisterManageRoutes(manage)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweep := scheduler.New(sessionRepo, cfg.SweepInterval)
	go sweep.Start(ctx)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
