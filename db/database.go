// Package db opens and tunes the PostgreSQL connection pool.
package db

import (
	"context"
	"database/sql"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Jugal-Chanda/demo-CICD-github/config"
)

// Connect opens the pool and verifies connectivity, retrying with
// exponential backoff so the service survives the database coming up
// after it during deployment.
func Connect(cfg config.DBConfig) (*sql.DB, error) {
	database, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, pkgerrors.Wrap(err, "open database")
	}

	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = cfg.ConnectMaxElapsed

	err = backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
		defer cancel()

		if err := database.PingContext(ctx); err != nil {
			log.Warn().Err(err).Str("host", cfg.Host).Msg("database not ready, retrying")
			return err
		}
		return nil
	}, bo)
	if err != nil {
		_ = database.Close()
		return nil, pkgerrors.Wrap(err, "connect database")
	}

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to database")
	return database, nil
}
