package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"returnex/internal/adapter/api"
	"returnex/internal/adapter/api/handler"
	apimiddleware "returnex/internal/adapter/api/middleware"
	"returnex/internal/adapter/api/router"
	"returnex/internal/adapter/repository"
	"returnex/internal/infrastructure/mail"
	"returnex/internal/infrastructure/ratelimit"
	"returnex/internal/infrastructure/shopify"
	"returnex/internal/infrastructure/storage"
	"returnex/internal/usecase"
	"returnex/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := ""
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath != "" {
			if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
				log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
			}
			log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
			opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
		}
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	shopifyClient := shopify.NewClient(cfg.ShopifyStoreURL, cfg.ShopifyAccessToken, cfg.ShopifyAPIVersion)
	if shopifyClient.Configured() {
		if err := shopifyClient.VerifyConnection(ctx); err != nil {
			log.Printf("Shopify connection check failed: %v", err)
		} else {
			log.Printf("Shopify connection verified for %s", cfg.ShopifyStoreURL)
		}
	} else {
		log.Printf("Shopify credentials not configured; order verification will be unavailable")
	}

	mailer := mail.NewSMTPSender(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword, cfg.EmailFrom)

	requestRepo := repository.NewFirestoreReturnRequestRepository(firestoreClient)
	adminUserRepo := repository.NewFirestoreAdminUserRepository(firestoreClient)

	verificationUseCase := usecase.NewVerificationUseCase(shopifyClient, cfg.ReturnWindowDays)
	returnUseCase := usecase.NewReturnUseCase(requestRepo, mailer, cfg.CreditValidDays)
	adminUseCase := usecase.NewAdminUseCase(requestRepo, mailer, cfg.ReturnWindowDays, cfg.CreditValidDays)
	authUseCase := usecase.NewAuthUseCase(adminUserRepo, cfg.JWTSecret, cfg.JWTExpiry)

	if err := authUseCase.EnsureDefaultAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, "Administrator"); err != nil {
		log.Fatalf("Failed to ensure default admin account: %v", err)
	}

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)

	handlers := router.Handlers{
		Order:  handler.NewOrderHandler(verificationUseCase),
		Return: handler.NewReturnHandler(returnUseCase, storageClient),
		Admin:  handler.NewAdminHandler(adminUseCase),
		Auth:   handler.NewAuthHandler(authUseCase),
		Health: handler.NewHealthHandler(),
	}

	router.Setup(e, handlers, authMiddleware, limiter)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
