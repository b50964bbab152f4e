package repository

import (
	"context"

	"go.uber.org/zap"
)

var _ AuthorRepository = (*postgresRepository)(nil)
var _ BooksRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DB
}

func New(logger *zap.Logger, db DB) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// q returns the transaction injected by the transactor when there is one,
// falling back to the pool. Repository methods never begin or commit
// transactions themselves; scoping belongs to the caller.
func (p *postgresRepository) q(ctx context.Context) Querier {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}
