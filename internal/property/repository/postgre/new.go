package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"property-listing/internal/property/repository"
	"property-listing/pkg/log"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for the property domain.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("property/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("property/repository/postgre.%s", method)
}
