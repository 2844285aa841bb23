package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"homestay/internal/config"
	"homestay/internal/database"
	"homestay/internal/middleware"
	"homestay/internal/modules/booking"
	"homestay/internal/modules/catalog"
	"homestay/internal/modules/chat"
	"homestay/internal/modules/notification"
	"homestay/internal/modules/review"
	"homestay/internal/modules/services"
	jwtsvc "homestay/internal/pkg/jwt"
	"homestay/internal/pkg/validator"
	"homestay/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := validator.RegisterCustom(); err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.EnsureBookingConstraints(db); err != nil {
		log.Fatal(err)
	}

	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	offeringRepo := repository.NewServiceOfferingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	notifService := notification.NewService(notificationRepo)
	notifHandler := notification.NewHandler(notifService)

	bookingService := booking.NewService(bookingRepo, listingRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(listingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, bookingRepo, listingRepo, notifService)
	reviewHandler := review.NewHandler(reviewService)

	offeringService := services.NewService(offeringRepo, listingRepo)
	offeringHandler := services.NewHandler(offeringService)

	hub := chat.NewHub()
	defer hub.Close()
	chatService := chat.NewService(messageRepo, listingRepo, notifService, hub)
	chatHandler := chat.NewHandler(chatService, hub)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public: search, listing detail, calendars, reviews, offerings
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)
		offeringHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
			chatHandler.RegisterRoutes(protected)

			host := protected.Group("/")
			host.Use(middleware.HostOnly())
			{
				catalogHandler.RegisterRoutes(host)
				offeringHandler.RegisterRoutes(host)
			}
		}
	}

	log.Println("Listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
