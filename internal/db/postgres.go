package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL DEFAULT '',
			favorite_cuisines TEXT[] NOT NULL DEFAULT '{}',
			photo_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			cuisine_type VARCHAR(100) NOT NULL,
			price_range VARCHAR(10) NOT NULL DEFAULT '$$',
			status VARCHAR(50) NOT NULL DEFAULT 'approved',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BRANCHES
	// -------------------------------
	// slots and available_slots stay jsonb: historical writers stored at
	// least four different slot shapes and the discovery normalizer is the
	// single place that reconciles them.
	branchesSQL := `
		CREATE TABLE IF NOT EXISTS branches (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			branch_index INT NOT NULL,
			address VARCHAR(500) NOT NULL DEFAULT '',
			city VARCHAR(100) NOT NULL DEFAULT '',
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			slots JSONB,
			available_slots JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, branch_index)
		)
	`
	if _, err := db.Exec(ctx, branchesSQL); err != nil {
		return err
	}

	// -------------------------------
	// SAVED BRANCHES
	// -------------------------------
	savedSQL := `
		CREATE TABLE IF NOT EXISTS saved_branches (
			user_id UUID NOT NULL REFERENCES users(id),
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			branch_index INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (user_id, restaurant_id, branch_index)
		)
	`
	if _, err := db.Exec(ctx, savedSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
