package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/coverdesk/coverdesk-backend/repositories"
)

// ExecutorFactoryStub returns a pgxmock pool as executor, for usecase tests.
type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, err := pgxmock.NewPool()
	if err != nil {
		panic(err)
	}
	return ExecutorFactoryStub{Mock: pool}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Mock
}

// TransactionFactoryStub runs the callback directly on the mock pool, without
// issuing Begin/Commit, so tests only have to set expectations on the queries
// themselves.
type TransactionFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewTransactionFactoryStub(stub ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{Mock: stub.Mock}
}

func (stub TransactionFactoryStub) Transaction(
	ctx context.Context,
	fn func(tx repositories.Executor) error,
) error {
	return fn(stub.Mock)
}
