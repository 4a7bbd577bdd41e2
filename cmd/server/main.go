package main

import (
	"log"
	"net/http"

	"github.com/Arnobrizwan/intellinote-app/internal/ai"
	"github.com/Arnobrizwan/intellinote-app/internal/auth"
	"github.com/Arnobrizwan/intellinote-app/internal/config"
	"github.com/Arnobrizwan/intellinote-app/internal/database"
	"github.com/Arnobrizwan/intellinote-app/internal/handlers"
	"github.com/Arnobrizwan/intellinote-app/internal/kafka"
	"github.com/Arnobrizwan/intellinote-app/internal/middleware"
	"github.com/Arnobrizwan/intellinote-app/internal/redis"
	"github.com/Arnobrizwan/intellinote-app/internal/repositories"
	"github.com/Arnobrizwan/intellinote-app/internal/router"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	logger.InitLogger()

	if cfg.SecretKey == "" {
		logger.Log.Warn().Msg("SECRET_KEY not set; token issuance and verification will fail")
	}
	if cfg.Algorithm != "HS256" {
		logger.Log.Warn().Str("algorithm", cfg.Algorithm).Msg("Only HS256 is supported; ignoring ALGORITHM")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	tokens := auth.NewManager(cfg.SecretKey, cfg.AccessTokenTTL)
	users := repositories.NewUserRepository(db)
	notes := repositories.NewNoteRepository(db)
	summarizer := ai.NewSummarizer(cfg)
	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()
	sessions := redis.NewService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	userHandler := handlers.NewUserHandler(users, tokens, sessions, cfg.BcryptCost)
	noteHandler := handlers.NewNoteHandler(notes, summarizer, producer)

	r := gin.New()
	r.Use(gin.Recovery())

	middleware.SetupPrometheus(r)
	r.Use(middleware.LoggerMiddleware())

	router.SetupRouter(r, tokens, users, sessions, userHandler, noteHandler)

	logger.Log.Info().Str("port", cfg.Port).Msg("Server starting")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
