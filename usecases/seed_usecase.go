package usecases

import (
	"context"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/usecases/executor_factory"
	"github.com/coverdesk/coverdesk-backend/utils"
)

type SeedUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	clientUseCase   ClientUseCase
	repository      ClientUseCaseRepository
}

// SeedSampleClients inserts a handful of demo coverage profiles, skipping any
// client whose name already exists so the seeder can run repeatedly.
func (usecase *SeedUseCase) SeedSampleClients(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)
	exec := usecase.executorFactory.NewExecutor()

	for _, input := range sampleClients() {
		existing, err := usecase.repository.GetClientByName(ctx, exec, input.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			logger.DebugContext(ctx, "seed: client already present", "name", input.Name)
			continue
		}

		if _, err := usecase.clientUseCase.CreateClient(ctx, input); err != nil {
			return err
		}
		logger.InfoContext(ctx, "seed: created client", "name", input.Name)
	}
	return nil
}

func sampleClients() []models.ClientCreateInput {
	ptr := func(s string) *string { return &s }
	flag := func(b bool) *bool { return &b }
	list := func(values ...string) *[]string { return &values }

	return []models.ClientCreateInput{
		{
			Name:                  "RBIB",
			Tickers:               list("AAPL", "MSFT"),
			Currencies:            list("CAD", "GBP"),
			TenorsMin:             ptr("2Y"),
			TenorsMax:             ptr("10Y"),
			TenorsSweetspot:       ptr("5Y"),
			FrnBuyer:              flag(true),
			CallableBuyer:         flag(false),
			PrivatePlacementBuyer: ptr("Yes"),
			EsgGreen:              flag(true),
			EsgSocial:             flag(false),
			EsgSustainable:        flag(false),
			TargetSpreadOis:       ptr("OIS+110"),
			TargetGSpread:         ptr("G+140"),
			TomsCode:              ptr("RBIB-01"),
			ClientNotes:           ptr("Prefers high quality issuers."),
			Region:                ptr("NA"),
		},
		{
			Name:                  "Blue Harbor",
			Tickers:               list("TSLA"),
			Currencies:            list("USD"),
			TenorsMin:             ptr("1Y"),
			TenorsMax:             ptr("7Y"),
			TenorsSweetspot:       ptr("3Y"),
			FrnBuyer:              flag(false),
			CallableBuyer:         flag(true),
			PrivatePlacementBuyer: ptr("No"),
			EsgGreen:              flag(false),
			EsgSocial:             flag(true),
			EsgSustainable:        flag(true),
			TargetSpreadOis:       ptr("OIS+90"),
			TargetGSpread:         ptr("G+120"),
			TomsCode:              ptr("BH-88"),
			ClientNotes:           ptr("Likes callable structures."),
			Region:                ptr("US"),
		},
		{
			Name:                  "Northwind Capital",
			Tickers:               list("NVDA", "AAPL"),
			Currencies:            list("EUR", "USD"),
			TenorsMin:             ptr("3Y"),
			TenorsMax:             ptr("12Y"),
			TenorsSweetspot:       ptr("7Y"),
			FrnBuyer:              flag(true),
			CallableBuyer:         flag(true),
			PrivatePlacementBuyer: ptr("Maybe"),
			EsgGreen:              flag(true),
			EsgSocial:             flag(true),
			EsgSustainable:        flag(false),
			TargetSpreadOis:       ptr("OIS+130"),
			TargetGSpread:         ptr("G+160"),
			TomsCode:              ptr("NWC-12"),
			ClientNotes:           ptr("Sensitive to spread volatility."),
			Region:                ptr("EU"),
		},
	}
}
