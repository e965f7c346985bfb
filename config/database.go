package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Provider hands out one database connection per request.
//
// Connect returns nil (not an error) when the database is unreachable;
// callers check for nil and answer with a connection-failure response,
// distinct from query failures. Every successful Connect must be paired with
// a Release on every exit path.
type Provider interface {
	Connect() *gorm.DB
	Release(db *gorm.DB)
}

// PostgresProvider opens a short-lived PostgreSQL connection per request.
type PostgresProvider struct {
	dsn string
}

// NewPostgresProvider creates a provider for the configured database
func NewPostgresProvider(cfg *Config) *PostgresProvider {
	return &PostgresProvider{dsn: cfg.DSN()}
}

// Connect opens a new database connection. gorm pings at open, so an
// unreachable database fails here rather than at first query.
func (p *PostgresProvider) Connect() *gorm.DB {
	db, err := gorm.Open(postgres.Open(p.dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return nil
	}
	return db
}

// Release closes the connection obtained from Connect. Safe to call with nil.
func (p *PostgresProvider) Release(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get database instance for release: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}
}
