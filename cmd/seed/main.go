package main

import (
	"context"
	"log"
	"time"

	"goeventcity/internal/database"
	"goeventcity/internal/domain"
	"goeventcity/internal/modules/auth"
	jwtsvc "goeventcity/internal/pkg/jwt"
	"goeventcity/internal/repository"
)

var grants = []domain.PermissionGrant{
	{Role: domain.RoleVenueManager, Permission: domain.PermManageVenue},
	{Role: domain.RoleVenueManager, Permission: domain.PermManageEvents},
	{Role: domain.RolePerformer, Permission: domain.PermManagePerformer},
	{Role: domain.RoleFan, Permission: domain.PermCreateBooking},
	{Role: domain.RoleAdmin, Permission: domain.PermManageVenue},
	{Role: domain.RoleAdmin, Permission: domain.PermManageEvents},
	{Role: domain.RoleAdmin, Permission: domain.PermManagePerformer},
	{Role: domain.RoleAdmin, Permission: domain.PermCreateBooking},
	{Role: domain.RoleAdmin, Permission: domain.PermModerateContent},
}

func main() {
	db, err := database.Connect("goeventcity.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM booking_sessions")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM performers")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM role_assignments")
	db.Exec("DELETE FROM accounts")
	db.Exec("DELETE FROM identities")
	db.Exec("DELETE FROM permission_grants")

	ctx := context.Background()

	permissionRepo := repository.NewPermissionGrantRepository(db)
	for _, g := range grants {
		if err := permissionRepo.Upsert(ctx, g); err != nil {
			log.Fatal("seed permission grants failed:", err)
		}
	}
	log.Printf("Seeded %d permission grants", len(grants))

	identityRepo := repository.NewIdentityRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	roleRepo := repository.NewRoleAssignmentRepository(db)
	authService := auth.NewService(identityRepo, accountRepo, roleRepo, jwtsvc.New("seed-only", time.Hour), nil)

	demoUsers := []auth.SignUpRequest{
		{Name: "Fiona Fan", Email: "fan@goeventcity.dev", Password: "password123", Role: "fan"},
		{Name: "Pete Performer", Email: "performer@goeventcity.dev", Password: "password123", Role: "performer"},
		{Name: "Vera Venue", Email: "venue@goeventcity.dev", Password: "password123", Role: "venue_manager"},
		{Name: "Ivy Influencer", Email: "influencer@goeventcity.dev", Password: "password123", Role: "influencer"},
		{Name: "Ada Admin", Email: "admin@goeventcity.dev", Password: "password123", Role: "admin"},
	}
	for _, req := range demoUsers {
		if _, _, err := authService.SignUp(ctx, req); err != nil {
			log.Fatalf("seed user %s failed: %v", req.Email, err)
		}
	}
	log.Printf("Seeded %d demo identities", len(demoUsers))

	venueRepo := repository.NewVenueRepository(db)
	venues := []*domain.Venue{
		{Name: "The Velvet Room", City: "Austin", Address: "301 Brazos St", Capacity: 350},
		{Name: "Riverside Amphitheater", City: "Portland", Address: "98 Waterfront Way", Capacity: 2200},
		{Name: "Cellar Door", City: "Chicago", Address: "14 N Halsted St", Capacity: 120},
	}
	for _, v := range venues {
		if err := venueRepo.Create(ctx, v); err != nil {
			log.Fatal("seed venues failed:", err)
		}
	}

	performerRepo := repository.NewPerformerRepository(db)
	performers := []*domain.Performer{
		{Name: "Midnight Static", Genre: "indie rock"},
		{Name: "DJ Lumen", Genre: "house"},
		{Name: "The Brass Collective", Genre: "jazz"},
	}
	for _, p := range performers {
		if err := performerRepo.Create(ctx, p); err != nil {
			log.Fatal("seed performers failed:", err)
		}
	}

	eventRepo := repository.NewEventRepository(db)
	events := []*domain.Event{
		{Title: "Summer Kickoff", EventType: "concert", VenueID: venues[0].ID, StartsAt: time.Now().AddDate(0, 1, 0), Capacity: 300},
		{Title: "Riverside Nights", EventType: "festival", VenueID: venues[1].ID, StartsAt: time.Now().AddDate(0, 2, 0), Capacity: 2000},
		{Title: "Late Set Sessions", EventType: "club_night", VenueID: venues[2].ID, StartsAt: time.Now().AddDate(0, 0, 14), Capacity: 120},
	}
	for _, e := range events {
		if err := eventRepo.Create(ctx, e); err != nil {
			log.Fatal("seed events failed:", err)
		}
	}

	log.Printf("Seeded %d venues, %d performers, %d events", len(venues), len(performers), len(events))
	log.Println("Done.")
}
