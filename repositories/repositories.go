package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// CoverdeskDbRepository carries all the data access methods for the coverdesk
// database. Executors are passed per call, never stored.
type CoverdeskDbRepository struct{}

func NewCoverdeskDbRepository() *CoverdeskDbRepository {
	return &CoverdeskDbRepository{}
}

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	CoverdeskDbRepository *CoverdeskDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		CoverdeskDbRepository: NewCoverdeskDbRepository(),
	}
}
