// File: tourbase/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"tourbase/config"
	"tourbase/cron"
	"tourbase/database"
	bookingRepoPkg "tourbase/database/repository/booking"
	mediaRepoPkg "tourbase/database/repository/media"
	reviewRepoPkg "tourbase/database/repository/review"
	tourRepoPkg "tourbase/database/repository/tour"
	userRepoPkg "tourbase/database/repository/user"
	"tourbase/handlers"
	"tourbase/middleware"
	"tourbase/routes"
	"tourbase/services/booking"
	"tourbase/services/gallery"
	"tourbase/services/notification"
	"tourbase/services/review"
	"tourbase/services/tour"
	"tourbase/services/user"
	"tourbase/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	mediaRepo := mediaRepoPkg.NewMongoMediaRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	notificationService := &notification.DefaultNotificationService{
		User: userService,
	}

	tourService := &tour.DefaultTourService{
		Repo:  tourRepo,
		Cache: utils.GetCacheClient(),
	}

	reminderClient := asynq.NewClient(cron.ReminderRedisOpt())
	defer reminderClient.Close()

	bookingService := &booking.DefaultBookingSessionService{
		Tours:        tourService,
		Repo:         bookingRepo,
		Notification: notificationService,
		Payments:     booking.NewStripePaymentHandler(logger),
		SessionCache: utils.GetSessionCacheClient(),
		ReminderQ:    reminderClient,
	}

	galleryService := &gallery.DefaultGalleryService{
		Repo:    mediaRepo,
		Storage: storageService,
	}

	reviewService := &review.DefaultReviewService{
		Repo:  reviewRepo,
		Tours: tourRepo,
	}

	routes.Register(router, &routes.Handlers{
		Auth:    handlers.NewAuthHandler(userService),
		Tour:    handlers.NewTourHandler(tourService),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Gallery: handlers.NewGalleryHandler(galleryService),
		Review:  handlers.NewReviewHandler(reviewService),
	})

	// Background workers and monitors.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
