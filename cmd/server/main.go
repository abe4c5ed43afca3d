package main

import (
	"log"
	"net/http"

	_ "brnaccounts/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"brnaccounts/internal/auth"
	"brnaccounts/internal/cache"
	"brnaccounts/internal/config"
	"brnaccounts/internal/db"
	"brnaccounts/internal/form"
	"brnaccounts/internal/handler"
	"brnaccounts/internal/repository"
	"brnaccounts/internal/router"
	"brnaccounts/internal/service"
	"brnaccounts/internal/upload"
)

// @title BRN Accounts API
// @version 1.0
// @description User account backend: signup, login, profile update and deletion with bcrypt credentials and JWT issuance.
// @host localhost:8000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	if cfg.UsingDefaultSecret() {
		log.Printf("WARNING: JWT_SECRET is not set, signing tokens with the insecure default %q", config.DefaultJWTSecret)
	}

	e := echo.New()

	mongoClient, err := db.NewMongo(cfg.MongoURI)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	uploadStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewMongoRepository(mongoClient.Database(cfg.MongoDB))
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	accountService := service.NewAccountService(userRepo, jwtService, cacheClient)
	accountHandler := handler.NewAccountHandler(accountService, form.NewNormalizer(uploadStore))

	router.Register(e, cfg, accountHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
