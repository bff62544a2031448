package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
)

func (repo *CoverdeskDbRepository) Liveness(ctx context.Context, exec Executor) error {
	var value int
	err := exec.QueryRow(ctx, "SELECT 1").Scan(&value)
	return errors.Wrap(err, "database liveness check failed")
}
