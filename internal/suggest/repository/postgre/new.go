package postgre

import (
	"github.com/jmoiron/sqlx"

	"search-srv/internal/suggest/repository"
	"search-srv/pkg/log"
)

type implPoolRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New - Factory
func New(db *sqlx.DB, l log.Logger) repository.PoolRepository {
	return &implPoolRepository{
		db: db,
		l:  l,
	}
}
