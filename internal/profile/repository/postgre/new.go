package postgre

import (
	"database/sql"
	"fmt"

	"tastoria/internal/profile/repository"
	"tastoria/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL backed favorites Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("profile/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/postgre.%s", method)
}
