package app

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/manu2699/nutri-track/internal/catalog"
	"github.com/manu2699/nutri-track/internal/db"
	"github.com/manu2699/nutri-track/internal/logger"
)

// App holds the initialized collaborators every use case needs: the open
// database, the food catalog and the logger. It replaces any notion of
// process-wide shared state; callers receive it explicitly.
type App struct {
	DB      *sql.DB
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

// Initialize opens the database at path, applies pending migrations and
// loads the embedded catalog. Close must be called when done.
func Initialize(path string) (*App, error) {
	log, err := logger.New()
	if err != nil {
		return nil, err
	}

	if err := EnsureDBDir(path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb, log); err != nil {
		sqldb.Close()
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		sqldb.Close()
		return nil, err
	}

	log.Debug("app initialized", zap.String("db", path), zap.Int("catalog_foods", cat.Len()))
	return &App{DB: sqldb, Catalog: cat, Log: log}, nil
}

// Close tears the application state down.
func (a *App) Close() error {
	_ = a.Log.Sync()
	return a.DB.Close()
}
