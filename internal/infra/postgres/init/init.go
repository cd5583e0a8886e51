package infra_pg_init

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/humanbelnik/kinoswap/prefform/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog_options (
	field    TEXT    NOT NULL CHECK (field IN ('genres', 'actors', 'directors')),
	label    TEXT    NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (field, label)
)`

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// MustEstablishConn connects and makes sure the catalog table exists.
func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	db, err := sqlx.Connect("postgres", DSN(cfg))
	if err != nil {
		log.Fatal(err)
	}
	db.SetMaxOpenConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := Migrate(ctx, db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create catalog_options: %w", err)
	}
	return nil
}
