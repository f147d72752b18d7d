package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/aijalabs/aija-backend/internal/config"
	"github.com/aijalabs/aija-backend/internal/database"
	"github.com/aijalabs/aija-backend/internal/handlers"
	"github.com/aijalabs/aija-backend/internal/middleware"
	"github.com/aijalabs/aija-backend/internal/routes"
	"github.com/aijalabs/aija-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to PostgreSQL
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Wire up the journal store and ensure its indexes
	journalStore := services.NewJournalStore(database.DB)
	if err := journalStore.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure journal indexes: %v", err)
	} else {
		log.Println("✅ MongoDB journal indexes ensured")
	}
	handlers.InitJournalStore(journalStore)

	// AI services share one completion client. A missing key degrades to a
	// disabled client so journaling keeps working without AI features.
	var completions services.CompletionClient
	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠️  WARNING: OPENAI_API_KEY not set. AI features will not be available.")
		completions = services.DisabledCompletionClient{}
	} else {
		client, err := services.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
		if err != nil {
			log.Fatal("Failed to initialize completion client:", err)
		}
		completions = client
		log.Println("✅ AI services initialized")
	}
	handlers.InitSummaryServices(services.NewSummarizer(completions), services.NewSummaryStore(database.DB))
	handlers.InitChatService(services.NewChatService(completions, cfg.OpenAIChatModel))
	handlers.InitQuizService(services.NewQuizService(completions))

	// Initialize Cloudinary for avatar uploads
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Avatar uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Avatar uploads will not be available")
	}

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Production: full security chain. Non-production: Redis rate limit only.
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, host check, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Printf("🚀 AIJA backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
