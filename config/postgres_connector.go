package config

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
)

// SetupPostgres opens a connection pool for the database named by DB_URL.
func SetupPostgres() (*sql.DB, error) {
	db, err := sql.Open("postgres", os.Getenv("DB_URL"))
	if err != nil {
		return nil, err
	}
	return db, db.Ping()
}
