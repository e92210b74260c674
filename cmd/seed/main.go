// Command seed provisions a fresh database with the default admin account, a
// demo customer and a small product catalog. Running it repeatedly is safe:
// records that already exist are left untouched.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
	"github.com/pharmaplus/pharmacy-system/internal/core/service"
	mongorepo "github.com/pharmaplus/pharmacy-system/internal/infrastructure/db/mongo"
	"github.com/pharmaplus/pharmacy-system/internal/pkg/config"
	"github.com/pharmaplus/pharmacy-system/pkg/logger"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

var seedUsers = []seedUser{
	{Name: "Pharmacy Admin", Email: "admin@pharmacy.com", Password: "admin123", Role: domain.RoleAdmin},
	{Name: "Demo Customer", Email: "customer@pharmacy.com", Password: "customer123", Role: domain.RoleCustomer},
}

var seedProducts = []domain.Product{
	{Name: "Aspirin", Description: "Pain reliever and fever reducer", Dosage: "500mg", Category: "Pain Relief", Price: 5.99, Quantity: 120, Supplier: "Bayer"},
	{Name: "Amoxicillin", Description: "Broad-spectrum antibiotic", Dosage: "250mg", Category: "Antibiotics", Price: 12.50, Quantity: 60, Supplier: "GSK"},
	{Name: "Ibuprofen", Description: "Anti-inflammatory pain relief", Dosage: "200mg", Category: "Pain Relief", Price: 7.25, Quantity: 8, Supplier: "Pfizer"},
	{Name: "Cetirizine", Description: "Antihistamine for allergy relief", Dosage: "10mg", Category: "Allergy", Price: 9.99, Quantity: 45, Supplier: "UCB"},
	{Name: "Metformin", Description: "Type 2 diabetes management", Dosage: "850mg", Category: "Diabetes", Price: 14.75, Quantity: 0, Supplier: "Merck"},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer client.Disconnect(context.Background())

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
	}

	seedAccounts(ctx, db, log)
	seedCatalog(ctx, db, log)

	log.Info().Msg("seed complete")
}

func seedAccounts(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	repo := mongorepo.NewUserRepository(db)

	for _, su := range seedUsers {
		if _, err := repo.FindByEmail(ctx, su.Email); err == nil {
			log.Info().Str("email", su.Email).Msg("user already exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			log.Fatal().Err(err).Str("email", su.Email).Msg("failed to look up user")
		}

		hash, err := service.HashPassword(su.Password)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.Email).Msg("failed to hash password")
		}

		created, err := repo.Create(ctx, &domain.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: hash,
			Role:         su.Role,
		})
		if err != nil {
			log.Fatal().Err(err).Str("email", su.Email).Msg("failed to create user")
		}
		log.Info().Str("email", created.Email).Str("role", created.Role).Msg("user created")
	}
}

func seedCatalog(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	repo := mongorepo.NewProductRepository(db)

	for i := range seedProducts {
		p := seedProducts[i]
		if _, err := repo.FindByNameFold(ctx, p.Name, ""); err == nil {
			log.Info().Str("name", p.Name).Msg("product already exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			log.Fatal().Err(err).Str("name", p.Name).Msg("failed to look up product")
		}

		created, err := repo.Create(ctx, &p)
		if err != nil {
			log.Fatal().Err(err).Str("name", p.Name).Msg("failed to create product")
		}
		log.Info().Str("name", created.Name).Str("id", created.ID).Msg("product created")
	}
}
