package main

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"rebooks/internal/adapter/api"
	"rebooks/internal/adapter/api/handler"
	apimiddleware "rebooks/internal/adapter/api/middleware"
	"rebooks/internal/adapter/api/router"
	"rebooks/internal/adapter/repository"
	"rebooks/internal/domain/service"
	"rebooks/internal/infrastructure/cache"
	"rebooks/internal/infrastructure/token"
	"rebooks/internal/usecase"
	"rebooks/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	} else if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GoogleProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var categoryCache *cache.Cache
	if cfg.RedisAddr != "" {
		categoryCache, err = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer categoryCache.Close()
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)

	tokenManager := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)
	paymentGateway := service.NewStripePaymentService(cfg.StripeSecretKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo, categoryCache, time.Duration(cfg.CategoryTTL)*time.Second)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, paymentRepo)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo, productRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, router.Handlers{
		Auth:     handler.NewAuthHandler(authUseCase),
		User:     handler.NewUserHandler(userUseCase),
		Category: handler.NewCategoryHandler(categoryUseCase),
		Product:  handler.NewProductHandler(productUseCase, authUseCase),
		Order:    handler.NewOrderHandler(orderUseCase),
		Wishlist: handler.NewWishlistHandler(wishlistUseCase),
		Payment:  handler.NewPaymentHandler(paymentUseCase),
	}, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
