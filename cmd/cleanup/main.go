package main

import (
	"context"
	"log"
	"os"

	"goeventcity/internal/database"
	"goeventcity/internal/repository"
)

// One-shot expired-session cleanup for cron-style deployments that don't
// keep the API process (and its background sweep) running.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewBookingSessionRepository(db)
	removed, err := sessions.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup booking_sessions failed: %v", err)
	}

	log.Printf("cleanup completed: booking_sessions=%d", removed)
}
