package usecases

import (
	"github.com/coverdesk/coverdesk-backend/repositories"
	"github.com/coverdesk/coverdesk-backend/usecases/executor_factory"
)

// Usecases is the composition root: it owns the repositories and builds one
// usecase value per request handler.
type Usecases struct {
	Repositories repositories.Repositories
}

func NewUsecases(repos repositories.Repositories) Usecases {
	return Usecases{
		Repositories: repos,
	}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases Usecases) NewTagRegistry() TagRegistry {
	return TagRegistry{
		repository: usecases.Repositories.CoverdeskDbRepository,
	}
}

func (usecases Usecases) NewClientUseCase() ClientUseCase {
	return ClientUseCase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.CoverdeskDbRepository,
		tagRegistry:        usecases.NewTagRegistry(),
	}
}

func (usecases Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.CoverdeskDbRepository,
	}
}

func (usecases Usecases) NewSeedUseCase() SeedUseCase {
	return SeedUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		clientUseCase:   usecases.NewClientUseCase(),
		repository:      usecases.Repositories.CoverdeskDbRepository,
	}
}
