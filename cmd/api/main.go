package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/alytantawyy/Ehgezli-sub000/internal/auth"
	"github.com/alytantawyy/Ehgezli-sub000/internal/db"
	"github.com/alytantawyy/Ehgezli-sub000/internal/discovery"
	"github.com/alytantawyy/Ehgezli-sub000/internal/router"
	"github.com/alytantawyy/Ehgezli-sub000/internal/saved"
	"github.com/alytantawyy/Ehgezli-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	restaurantRepo := discovery.NewPostgresRepository(pgDB)
	savedRepo := saved.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo, r2Client)
	savedService := saved.NewService(savedRepo)

	discoveryService := discovery.NewService(
		restaurantRepo,
		savedService,
		authService,
	)

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	r := router.NewRouter(
		auth.NewHandler(authService),
		discovery.NewHandler(discoveryService),
		saved.NewHandler(savedService),
	)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal(err)
	}
}
