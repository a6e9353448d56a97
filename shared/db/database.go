package db

import (
	"database/sql"
)

// Database abstracts the lifecycle of a SQL-backed store so the server can
// connect, migrate, and close without knowing which driver is underneath.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
