// Command migratepw upgrades legacy plaintext passwords to bcrypt hashes.
// Accounts whose stored password already looks like a bcrypt hash are left
// alone, as are accounts with an empty password, so the tool is idempotent.
package main

import (
	"context"
	"time"

	"github.com/pharmaplus/pharmacy-system/internal/core/service"
	mongorepo "github.com/pharmaplus/pharmacy-system/internal/infrastructure/db/mongo"
	"github.com/pharmaplus/pharmacy-system/internal/pkg/config"
	"github.com/pharmaplus/pharmacy-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer client.Disconnect(context.Background())

	repo := mongorepo.NewUserRepository(db)

	users, err := repo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list users")
	}

	var migrated, skipped, failed int
	for i := range users {
		u := users[i]

		if u.PasswordHash == "" || service.IsHashed(u.PasswordHash) {
			skipped++
			continue
		}

		hash, err := service.HashPassword(u.PasswordHash)
		if err != nil {
			log.Error().Err(err).Str("email", u.Email).Msg("failed to hash password")
			failed++
			continue
		}

		u.PasswordHash = hash
		u.UpdatedAt = time.Now().UTC()
		if _, err := repo.Update(ctx, &u); err != nil {
			log.Error().Err(err).Str("email", u.Email).Msg("failed to update user")
			failed++
			continue
		}

		log.Info().Str("email", u.Email).Msg("password migrated")
		migrated++
	}

	log.Info().
		Int("migrated", migrated).
		Int("skipped", skipped).
		Int("failed", failed).
		Int("total", len(users)).
		Msg("password migration finished")
}
