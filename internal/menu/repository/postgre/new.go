package postgre

import (
	"database/sql"
	"fmt"

	"tastoria/internal/menu/repository"
	"tastoria/pkg/log"

	"github.com/google/uuid"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
}

// New creates a PostgreSQL backed menu Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("menu/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("menu/repository/postgre.%s", method)
}
