package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/pure_utils"
	"github.com/coverdesk/coverdesk-backend/repositories"
	"github.com/coverdesk/coverdesk-backend/usecases/executor_factory"
)

type ClientUseCaseRepository interface {
	GetClientById(ctx context.Context, exec repositories.Executor,
		clientId uuid.UUID) (models.Client, error)
	GetClientByName(ctx context.Context, exec repositories.Executor,
		name string) (*models.Client, error)
	CreateClient(ctx context.Context, exec repositories.Executor,
		input models.ClientCreateInput, newClientId uuid.UUID) error
	UpdateClientScalars(ctx context.Context, exec repositories.Executor,
		clientId uuid.UUID, input models.ClientUpdateInput) error
	SearchClients(ctx context.Context, exec repositories.Executor,
		filters models.ClientFilters) ([]models.Client, error)
	ListClientTags(ctx context.Context, exec repositories.Executor,
		kind models.TagKind, clientIds []uuid.UUID) ([]models.ClientTag, error)
	DeleteClientTags(ctx context.Context, exec repositories.Executor,
		kind models.TagKind, clientId uuid.UUID) error
	InsertClientTags(ctx context.Context, exec repositories.Executor,
		kind models.TagKind, clientId uuid.UUID, tagIds []uuid.UUID) error
	CreateAuditLogEntries(ctx context.Context, exec repositories.Executor,
		entries []models.AuditLogEntry) error
	ListClientAuditLogEntries(ctx context.Context, exec repositories.Executor,
		clientId uuid.UUID) ([]models.AuditLogEntry, error)
}

type ClientUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ClientUseCaseRepository
	tagRegistry        TagRegistry
}

// ListClients runs the intersection search and returns matching clients with
// their ticker and currency associations attached.
func (uc ClientUseCase) ListClients(ctx context.Context, filters models.ClientFilters,
) ([]models.Client, error) {
	exec := uc.executorFactory.NewExecutor()

	filters.Tickers = pure_utils.NormalizeTagValues(filters.Tickers)
	filters.Currencies = pure_utils.NormalizeTagValues(filters.Currencies)

	clients, err := uc.repository.SearchClients(ctx, exec, filters)
	if err != nil {
		return nil, err
	}
	return uc.hydrateClientTags(ctx, exec, clients)
}

func (uc ClientUseCase) CreateClient(ctx context.Context, input models.ClientCreateInput,
) (models.Client, error) {
	if input.Name == "" {
		return models.Client{}, errors.Wrap(models.BadParameterError,
			"client name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Executor) (models.Client, error) {
			newClientId := uuid.New()
			if err := uc.repository.CreateClient(ctx, tx, input, newClientId); err != nil {
				return models.Client{}, err
			}

			if input.Tickers != nil {
				if _, err := uc.replaceClientTags(ctx, tx,
					models.TagKindTicker, newClientId, *input.Tickers); err != nil {
					return models.Client{}, err
				}
			}
			if input.Currencies != nil {
				if _, err := uc.replaceClientTags(ctx, tx,
					models.TagKindCurrency, newClientId, *input.Currencies); err != nil {
					return models.Client{}, err
				}
			}

			return uc.getClientWithTags(ctx, tx, newClientId)
		})
}

// UpdateClient applies a partial update and records one audit log entry per
// field whose value actually changed. An update submitting only identical
// values writes nothing, including to the audit trail.
func (uc ClientUseCase) UpdateClient(ctx context.Context, clientId uuid.UUID,
	input models.ClientUpdateInput,
) (models.Client, error) {
	if input.Name != nil && *input.Name == "" {
		return models.Client{}, errors.Wrap(models.BadParameterError,
			"client name cannot be empty")
	}

	return executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Executor) (models.Client, error) {
			client, err := uc.getClientWithTags(ctx, tx, clientId)
			if err != nil {
				return models.Client{}, err
			}

			changes := computeScalarChanges(client, input)
			if len(changes) > 0 {
				if err := uc.repository.UpdateClientScalars(ctx, tx, clientId, input); err != nil {
					return models.Client{}, err
				}
			}

			if input.Tickers != nil {
				tagChanges, err := uc.replaceClientTagsIfChanged(ctx, tx,
					models.TagKindTicker, clientId, "tickers",
					client.TickerSymbols(), *input.Tickers)
				if err != nil {
					return models.Client{}, err
				}
				changes = append(changes, tagChanges...)
			}
			if input.Currencies != nil {
				tagChanges, err := uc.replaceClientTagsIfChanged(ctx, tx,
					models.TagKindCurrency, clientId, "currencies",
					client.CurrencyCodes(), *input.Currencies)
				if err != nil {
					return models.Client{}, err
				}
				changes = append(changes, tagChanges...)
			}

			if err := uc.repository.CreateAuditLogEntries(ctx, tx,
				buildAuditLogEntries(clientId, changes)); err != nil {
				return models.Client{}, err
			}

			return uc.getClientWithTags(ctx, tx, clientId)
		})
}

// GetAuditTrail returns the client's change history, newest first. An unknown
// client id yields an empty trail rather than an error.
func (uc ClientUseCase) GetAuditTrail(ctx context.Context, clientId uuid.UUID,
) ([]models.AuditLogEntry, error) {
	exec := uc.executorFactory.NewExecutor()
	return uc.repository.ListClientAuditLogEntries(ctx, exec, clientId)
}

func (uc ClientUseCase) getClientWithTags(ctx context.Context, exec repositories.Executor,
	clientId uuid.UUID,
) (models.Client, error) {
	client, err := uc.repository.GetClientById(ctx, exec, clientId)
	if err != nil {
		return models.Client{}, err
	}
	hydrated, err := uc.hydrateClientTags(ctx, exec, []models.Client{client})
	if err != nil {
		return models.Client{}, err
	}
	return hydrated[0], nil
}

// hydrateClientTags attaches ticker and currency associations to the given
// clients with one query per tag kind.
func (uc ClientUseCase) hydrateClientTags(ctx context.Context, exec repositories.Executor,
	clients []models.Client,
) ([]models.Client, error) {
	if len(clients) == 0 {
		return clients, nil
	}

	clientIds := pure_utils.Map(clients, func(c models.Client) uuid.UUID { return c.Id })

	tickers, err := uc.listTagsByClient(ctx, exec, models.TagKindTicker, clientIds)
	if err != nil {
		return nil, err
	}
	currencies, err := uc.listTagsByClient(ctx, exec, models.TagKindCurrency, clientIds)
	if err != nil {
		return nil, err
	}

	for i := range clients {
		clients[i].Tickers = tickers[clients[i].Id]
		clients[i].Currencies = currencies[clients[i].Id]
	}
	return clients, nil
}

func (uc ClientUseCase) listTagsByClient(ctx context.Context, exec repositories.Executor,
	kind models.TagKind, clientIds []uuid.UUID,
) (map[uuid.UUID][]models.Tag, error) {
	clientTags, err := uc.repository.ListClientTags(ctx, exec, kind, clientIds)
	if err != nil {
		return nil, err
	}

	byClient := make(map[uuid.UUID][]models.Tag, len(clientIds))
	for _, id := range clientIds {
		byClient[id] = make([]models.Tag, 0)
	}
	for _, ct := range clientTags {
		byClient[ct.ClientId] = append(byClient[ct.ClientId], ct.Tag)
	}
	return byClient, nil
}

// replaceClientTags resolves the raw values and rewrites the client's join
// rows for the kind, preserving the submitted order. It returns the canonical
// values actually stored.
func (uc ClientUseCase) replaceClientTags(ctx context.Context, exec repositories.Executor,
	kind models.TagKind, clientId uuid.UUID, rawValues []string,
) ([]string, error) {
	tags, err := uc.tagRegistry.ResolveOrCreate(ctx, exec, kind, rawValues)
	if err != nil {
		return nil, err
	}

	if err := uc.repository.DeleteClientTags(ctx, exec, kind, clientId); err != nil {
		return nil, err
	}
	tagIds := pure_utils.Map(tags, func(t models.Tag) uuid.UUID { return t.Id })
	if err := uc.repository.InsertClientTags(ctx, exec, kind, clientId, tagIds); err != nil {
		return nil, err
	}

	return pure_utils.Map(tags, func(t models.Tag) string { return t.Value }), nil
}

// replaceClientTagsIfChanged rewrites an association list only when the
// submitted set differs from the stored one, so a pure reorder or a resend of
// the same values leaves the rows and the audit trail untouched.
func (uc ClientUseCase) replaceClientTagsIfChanged(ctx context.Context, exec repositories.Executor,
	kind models.TagKind, clientId uuid.UUID, fieldName string,
	currentValues []string, rawValues []string,
) ([]models.FieldChange, error) {
	newValues := pure_utils.NormalizeTagValues(rawValues)
	if pure_utils.ContainsSameElements(currentValues, newValues) {
		return nil, nil
	}

	storedValues, err := uc.replaceClientTags(ctx, exec, kind, clientId, rawValues)
	if err != nil {
		return nil, err
	}

	return []models.FieldChange{{
		FieldName: fieldName,
		OldValue:  tagAuditValue(currentValues),
		NewValue:  tagAuditValue(storedValues),
	}}, nil
}

func buildAuditLogEntries(clientId uuid.UUID, changes []models.FieldChange) []models.AuditLogEntry {
	return pure_utils.Map(changes, func(change models.FieldChange) models.AuditLogEntry {
		return models.AuditLogEntry{
			Id:        uuid.New(),
			ClientId:  clientId,
			FieldName: change.FieldName,
			OldValue:  change.OldValue,
			NewValue:  change.NewValue,
		}
	})
}
