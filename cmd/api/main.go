package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"docshare/internal/config"
	"docshare/internal/database"
	"docshare/internal/middleware"
	jwtsvc "docshare/internal/pkg/jwt"
	"docshare/internal/share"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	repo, err := buildRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}

	hub := share.NewHub()

	shareService, err := share.NewService(repo, cfg.ShareRoot, cfg.BaseURL, hub)
	if err != nil {
		log.Fatal(err)
	}
	shareHandler := share.NewHandler(shareService, hub)

	var guard gin.HandlerFunc
	if cfg.JWTSecret != "" {
		guard = middleware.RequireAuth(jwtsvc.New(cfg.JWTSecret, 24*time.Hour))
	} else {
		log.Println("JWT_SECRET not set; link administration routes are unguarded")
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	share.RegisterRoutes(api, shareHandler, guard)

	log.Printf("sharing %s on :%s", cfg.ShareRoot, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// buildRepository picks the link store: flat JSON file by default, SQL when
// DATABASE_URL is set.
func buildRepository(cfg *config.Config) (share.Repository, error) {
	if cfg.DatabaseURL == "" {
		log.Println("link store: using JSON file at", cfg.StorePath)
		return share.NewFileRepository(cfg.StorePath), nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&share.ShareLink{}); err != nil {
		return nil, err
	}
	return share.NewGormRepository(db), nil
}
