package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"therapist-match/internal/config"
	"therapist-match/internal/database/migration"
	dbpostgres "therapist-match/internal/database/postgres"
	"therapist-match/internal/domain/therapist"
	"therapist-match/internal/infrastructure/persistence/postgres"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
)

var specialtyPool = [][]string{
	{"Anxiety", "Stress Management", "Cognitive Behavioral Therapy"},
	{"Depression", "Grief Counseling"},
	{"LGBTQ+ Affirming Therapy", "Identity Exploration"},
	{"Family Therapy", "Couples Counseling"},
	{"Trauma", "EMDR"},
	{"Addiction Recovery", "Mindfulness"},
}

var insurancePool = []string{"Aetna", "Blue Cross", "Cigna", "UnitedHealth", "Kaiser"}

func main() {
	extra := flag.Int("extra", 25, "number of generated therapists beyond the demo catalogue")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Database.Configured() {
		log.Fatal("seed requires DB_HOST and DB_NAME to be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	repo := postgres.NewTherapistRepository(db)

	for _, t := range therapist.DemoCatalog() {
		if err := repo.Save(ctx, t); err != nil {
			log.Fatalf("failed to seed %s: %v", t.ID, err)
		}
	}

	for i := 0; i < *extra; i++ {
		t := fakeTherapist(i)
		if err := repo.Save(ctx, t); err != nil {
			log.Fatalf("failed to seed %s: %v", t.ID, err)
		}
	}

	log.Printf("Seed complete | demo=%d generated=%d", len(therapist.DemoCatalog()), *extra)
}

func fakeTherapist(i int) therapist.Therapist {
	rating := float64(int(gofakeit.Float64Range(3.0, 5.0)*10)) / 10

	return therapist.Therapist{
		ID:                fmt.Sprintf("seed-therapist-%d", i+1),
		Name:              "Dr. " + gofakeit.Name(),
		PhotoURL:          fmt.Sprintf("https://i.pravatar.cc/150?u=seed-%d", i+1),
		Location:          gofakeit.City() + ", " + gofakeit.StateAbr(),
		Specialties:       specialtyPool[i%len(specialtyPool)],
		InsuranceAccepted: []string{insurancePool[i%len(insurancePool)], insurancePool[(i+2)%len(insurancePool)]},
		Availability:      gofakeit.RandomString([]string{"Weekdays", "Evenings", "Weekends", "Flexible"}),
		ContactInfo:       gofakeit.Email(),
		SessionFormats:    []string{"Video", "In-person"},
		Languages:         []string{"English"},
		Rating:            &rating,
	}
}
