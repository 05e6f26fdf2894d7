package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/tagadplatforms/contact-api/internal/auth"
	"github.com/tagadplatforms/contact-api/internal/config"
	"github.com/tagadplatforms/contact-api/internal/database"
	"github.com/tagadplatforms/contact-api/internal/handler"
	middlewarepkg "github.com/tagadplatforms/contact-api/internal/middleware"
	"github.com/tagadplatforms/contact-api/internal/repository"
	"github.com/tagadplatforms/contact-api/internal/router"
	"github.com/tagadplatforms/contact-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	policy := auth.NewPolicy(cfg.AuthMode, jwtManager, cfg.AdminTokenHash)
	originPolicy := middlewarepkg.NewOriginPolicy(cfg.AllowedOrigins, cfg.AllowedOriginSuffixes)

	contactsRepo := repository.NewPGXContactsRepository(pool)
	contactsService := service.NewContactsService(contactsRepo, cfg.DefaultPhoneRegion)

	assistant := handler.NewAssistantClient(nil, cfg.DeepSeekBaseURL, cfg.DeepSeekAPIKey)

	handlers := router.Handlers{
		Health:   handler.NewHealthHandler(pool),
		Contacts: handler.NewContactsHandler(contactsService, cfg.IsDevelopment()),
		Chat:     handler.NewChatHandler(assistant),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(middlewarepkg.CORS(originPolicy))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, policy, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Printf("server listening on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
