// @title           UCPMAROC Backend API
// @version         1.0.0
// @description     Backend API for the UCPMAROC talent marketplace. Handles order intake, Stripe payment intents, order material uploads to Supabase Storage, actor recordings and audio-cleanup webhook callbacks.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a Supabase JWT.

package main

import (
	"log"
	"net/http"
	"strings"

	"ucpmaroc-backend/internal/audioclean"
	"ucpmaroc-backend/internal/config"
	"ucpmaroc-backend/internal/database"
	"ucpmaroc-backend/internal/handlers"
	"ucpmaroc-backend/internal/middleware"
	"ucpmaroc-backend/internal/payments"
	"ucpmaroc-backend/internal/supabase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Outbound clients
	paymentsClient := payments.NewClient(cfg.StripeSecretKey)

	var cleanupClient *audioclean.Client
	switch {
	case cfg.AudioCleanupAPIKey == "":
		log.Println("Warning: AUDIO_CLEANUP_API_KEY not set. Recordings will stay in the processing state.")
	case cfg.WebhookCallbackURL == "":
		// A job submitted without a callback URL completes upstream but can
		// never report back, leaving the recording stuck in processing.
		log.Println("Warning: WEBHOOK_CALLBACK_URL not set. Cleanup jobs will not be submitted and recordings will stay in the processing state.")
	default:
		cleanupClient = audioclean.NewClient(cfg.AudioCleanupAPIBaseURL, cfg.AudioCleanupAPIKey)
	}

	// Supabase clients
	restClient, err := supabase.NewRestClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	var dbClient *supabase.DatabaseClient
	if cfg.DatabaseURL != "" {
		dbClient, err = supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
		} else {
			defer dbClient.Close()

			migrator, err := database.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				log.Printf("Warning: Failed to initialize migrator: %v", err)
			} else {
				defer migrator.Close()
				if err := migrator.Run(); err != nil {
					log.Printf("Warning: Migration failed: %v", err)
				} else {
					log.Println("Migrations completed successfully")
				}
			}
		}
	} else {
		log.Println("Warning: DATABASE_URL not set. Order and recording endpoints will be unavailable.")
	}

	ordersHandler := newOrdersHandler(dbClient)
	paymentsHandler := handlers.NewPaymentsHandler(paymentsClient)
	materialsHandler := newMaterialsHandler(dbClient, storageClient)
	actorsHandler := handlers.NewActorsHandler(restClient)
	recordingsHandler := newRecordingsHandler(dbClient, storageClient, cleanupClient, cfg.WebhookCallbackURL)
	webhookHandler := newWebhookHandler(cfg, dbClient)

	router := gin.Default()
	router.HandleMethodNotAllowed = true

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Public browser-facing endpoints
	api.POST("/orders", ordersHandler.CreateOrder)
	api.POST("/orders/:order_id/materials", materialsHandler.UploadMaterials)
	api.POST("/payments/intent", paymentsHandler.CreateIntent)
	api.GET("/actors", actorsHandler.ListActors)
	api.GET("/actors/:slug", actorsHandler.GetActor)

	// Actor endpoints
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	authed.GET("/orders", ordersHandler.ListOrders)
	authed.GET("/orders/:order_id", ordersHandler.GetOrder)
	authed.POST("/recordings", recordingsHandler.CreateRecording)
	authed.GET("/recordings/:recording_id", recordingsHandler.GetRecording)

	// Webhook: called by the audio cleanup service, shared-secret check only
	api.POST("/webhooks/audio-cleanup", webhookHandler.HandleAudioCleanup)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// The gin handlers take interfaces; passing a typed nil pointer through
// would dodge their nil checks, so a missing database client is mapped to a
// nil interface here.

func newOrdersHandler(dbClient *supabase.DatabaseClient) *handlers.OrdersHandler {
	if dbClient == nil {
		return handlers.NewOrdersHandler(nil)
	}
	return handlers.NewOrdersHandler(dbClient)
}

func newMaterialsHandler(dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient) *handlers.MaterialsHandler {
	if dbClient == nil {
		return handlers.NewMaterialsHandler(nil, nil)
	}
	return handlers.NewMaterialsHandler(dbClient, storageClient)
}

func newRecordingsHandler(dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient, cleanupClient *audioclean.Client, callbackURL string) *handlers.RecordingsHandler {
	if dbClient == nil {
		return handlers.NewRecordingsHandler(nil, nil, nil, callbackURL)
	}
	if cleanupClient == nil {
		return handlers.NewRecordingsHandler(dbClient, storageClient, nil, callbackURL)
	}
	if !strings.HasSuffix(callbackURL, "/webhooks/audio-cleanup") && callbackURL != "" {
		callbackURL = strings.TrimSuffix(callbackURL, "/") + "/api/v1/webhooks/audio-cleanup"
	}
	return handlers.NewRecordingsHandler(dbClient, storageClient, cleanupClient, callbackURL)
}

func newWebhookHandler(cfg *config.Config, dbClient *supabase.DatabaseClient) *handlers.WebhookHandler {
	if dbClient == nil {
		return handlers.NewWebhookHandler(cfg, nil)
	}
	return handlers.NewWebhookHandler(cfg, dbClient)
}
