package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/salespulse/salespulse-backend/internal/adapter/repository"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
	"github.com/salespulse/salespulse-backend/internal/infrastructure/database"
	"github.com/salespulse/salespulse-backend/pkg/config"
	"github.com/salespulse/salespulse-backend/pkg/jwt"
)

// Seeds a demo tenant with a profile, a few leads, and survey responses,
// then prints an access token scoped to that tenant for manual API testing.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	profileRepo := repository.NewProfileRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	responseRepo := repository.NewResponseRepository(db)

	profile := entities.NewBusinessProfile(tenantID)
	profile.CompanyName = "Padaria do Bairro"
	profile.Description = "A neighborhood bakery serving fresh bread, pastries and coffee every morning since 1998."
	profile.TargetAudience = "Families and office workers within walking distance of the shop."
	profile.GooglePlaceID = "ChIJdemo0000000000000000000"
	profile.Instagram = "@padariadobairro"
	if err := profileRepo.Upsert(ctx, profile); err != nil {
		log.Fatalf("Failed to seed profile: %v", err)
	}

	leads := []struct {
		title  string
		value  float64
		status entities.OpportunityStatus
		age    time.Duration
	}{
		{"Corporate breakfast catering", 2500, entities.OpportunityStatusWon, 60 * 24 * time.Hour},
		{"Weekly office pastry delivery", 800, entities.OpportunityStatusNegotiation, 30 * 24 * time.Hour},
		{"Birthday cake order", 150, entities.OpportunityStatusNew, 2 * 24 * time.Hour},
	}
	for _, l := range leads {
		lead := entities.NewOpportunity(tenantID, l.title, l.value)
		lead.Status = l.status
		lead.CreatedAt = time.Now().UTC().Add(-l.age)
		if err := opportunityRepo.Create(ctx, lead); err != nil {
			log.Fatalf("Failed to seed lead: %v", err)
		}
	}

	scores := []int{10, 9, 9, 8, 7, 10, 4, 6, 9, 10}
	for i, score := range scores {
		respondedAt := time.Now().UTC().Add(-time.Duration(i*3) * 24 * time.Hour)
		response := entities.NewSatisfactionResponse(tenantID, score, nil, respondedAt)
		if err := responseRepo.Create(ctx, response); err != nil {
			log.Fatalf("Failed to seed response: %v", err)
		}
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	token, err := jwtManager.GenerateAccessToken(userID, tenantID, "demo@salespulse.dev", "owner")
	if err != nil {
		log.Fatalf("Failed to generate access token: %v", err)
	}
	refresh, err := jwtManager.GenerateRefreshToken(userID, tenantID, "demo@salespulse.dev", "owner")
	if err != nil {
		log.Fatalf("Failed to generate refresh token: %v", err)
	}

	log.Printf("✅ Seeded tenant %s", tenantID)
	log.Printf("🔑 Access token:\n%s", token)
	log.Printf("🔁 Refresh token:\n%s", refresh)
}
