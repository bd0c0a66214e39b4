package pg

import (
	"context"
	"database/sql"
	"embed"

	"github.com/nadeuri-dev/nadeuri/shared/config"
	"github.com/nadeuri-dev/nadeuri/shared/logger"
	sharedpg "github.com/nadeuri-dev/nadeuri/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	db *sql.DB
}

// New connects to postgres and brings the schema up to date.
func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(cfg.Private.Pg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if err := sharedpg.Migrate(db, cfg.Private.Pg.Dbname, migrations, "migrations"); err != nil {
		db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

// NewFromDB wraps an already opened connection. Migrations are not applied.
func NewFromDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
