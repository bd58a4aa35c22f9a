package postgre

import (
	"github.com/jmoiron/sqlx"

	"search-srv/internal/analytics/repository"
	"search-srv/pkg/log"
)

type implEventRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New - Factory
func New(db *sqlx.DB, l log.Logger) repository.EventRepository {
	return &implEventRepository{
		db: db,
		l:  l,
	}
}
