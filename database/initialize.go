package database

import (
	_ "embed"
	"fmt"
	"os"

	"mascotas-shop/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/umakantv/go-utils/db"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// InitializeDatabase opens the sqlite database named by cfg.DatabaseDSN and
// creates the tables the sqlite repositories need.
func InitializeDatabase(cfg *config.Config) *sqlx.DB {
	dbConn := db.GetDBConnection(db.DatabaseConfig{
		DRIVER: "sqlite3",
		DB:     cfg.DatabaseDSN,
	})

	if err := ApplySchema(dbConn); err != nil {
		logger.Error("Error while applying schema", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database initialized successfully", zap.String("dsn", cfg.DatabaseDSN))
	return dbConn
}

// ApplySchema creates the users and cart_lines tables when missing.
func ApplySchema(dbConn *sqlx.DB) error {
	if _, err := dbConn.Exec(schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// OpenMemory opens a private in-memory sqlite database with the schema
// applied. The pool is pinned to one connection since every sqlite
// ":memory:" connection is its own database.
func OpenMemory() (*sqlx.DB, error) {
	dbConn, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	dbConn.SetMaxOpenConns(1)
	if err := ApplySchema(dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	return dbConn, nil
}
