package executor_factory

import (
	"context"

	"github.com/coverdesk/coverdesk-backend/repositories"
)

// TransactionReturnValue runs fn inside a transaction and passes its return
// value back to the caller, working around the fact that closures cannot
// return values directly through Transaction.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Executor) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Executor) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}
