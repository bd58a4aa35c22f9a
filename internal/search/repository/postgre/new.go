package postgre

import (
	"github.com/jmoiron/sqlx"

	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
)

type implProductRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New - Factory
func New(db *sqlx.DB, l log.Logger) repository.ProductRepository {
	return &implProductRepository{
		db: db,
		l:  l,
	}
}
