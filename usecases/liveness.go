package usecases

import (
	"context"

	"github.com/coverdesk/coverdesk-backend/repositories"
	"github.com/coverdesk/coverdesk-backend/usecases/executor_factory"
)

type LivenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      LivenessRepository
}

func (usecase LivenessUsecase) Liveness(ctx context.Context) error {
	return usecase.repository.Liveness(ctx, usecase.executorFactory.NewExecutor())
}
