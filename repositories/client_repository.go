package repositories

import (
	"context"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/pure_utils"
	"github.com/coverdesk/coverdesk-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (repo *CoverdeskDbRepository) GetClientById(ctx context.Context, exec Executor,
	clientId uuid.UUID,
) (models.Client, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectClientColumn...).
		From(dbmodels.TABLE_CLIENTS).
		Where(squirrel.Eq{"id": clientId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptClient)
}

// GetClientByName returns the first client with the exact name, or nil when
// none exists. Names are not unique; the seeder only needs presence.
func (repo *CoverdeskDbRepository) GetClientByName(ctx context.Context, exec Executor,
	name string,
) (*models.Client, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectClientColumn...).
		From(dbmodels.TABLE_CLIENTS).
		Where(squirrel.Eq{"client_name": name}).
		Limit(1)

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptClient)
}

func (repo *CoverdeskDbRepository) CreateClient(ctx context.Context, exec Executor,
	input models.ClientCreateInput, newClientId uuid.UUID,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CLIENTS).
			Columns(
				"id",
				"client_name",
				"tenors_min",
				"tenors_max",
				"tenors_sweetspot",
				"frn_buyer",
				"callable_buyer",
				"private_placement_buyer",
				"esg_green",
				"esg_social",
				"esg_sustainable",
				"target_spread_ois",
				"target_g_spread",
				"toms_code",
				"client_notes",
				"region",
			).
			Values(
				newClientId,
				input.Name,
				input.TenorsMin,
				input.TenorsMax,
				input.TenorsSweetspot,
				pure_utils.PtrValueOrDefault(input.FrnBuyer, false),
				pure_utils.PtrValueOrDefault(input.CallableBuyer, false),
				input.PrivatePlacementBuyer,
				pure_utils.PtrValueOrDefault(input.EsgGreen, false),
				pure_utils.PtrValueOrDefault(input.EsgSocial, false),
				pure_utils.PtrValueOrDefault(input.EsgSustainable, false),
				input.TargetSpreadOis,
				input.TargetGSpread,
				input.TomsCode,
				input.ClientNotes,
				input.Region,
			),
	)
}

// UpdateClientScalars writes every scalar field present in the input; absent
// (nil) fields keep their stored value. Association lists are handled
// separately through the join tables.
func (repo *CoverdeskDbRepository) UpdateClientScalars(ctx context.Context, exec Executor,
	clientId uuid.UUID, input models.ClientUpdateInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CLIENTS).
		Where(squirrel.Eq{"id": clientId}).
		Set("updated_at", squirrel.Expr("NOW()"))

	if input.Name != nil {
		query = query.Set("client_name", *input.Name)
	}
	if input.TenorsMin != nil {
		query = query.Set("tenors_min", *input.TenorsMin)
	}
	if input.TenorsMax != nil {
		query = query.Set("tenors_max", *input.TenorsMax)
	}
	if input.TenorsSweetspot != nil {
		query = query.Set("tenors_sweetspot", *input.TenorsSweetspot)
	}
	if input.FrnBuyer != nil {
		query = query.Set("frn_buyer", *input.FrnBuyer)
	}
	if input.CallableBuyer != nil {
		query = query.Set("callable_buyer", *input.CallableBuyer)
	}
	if input.PrivatePlacementBuyer != nil {
		query = query.Set("private_placement_buyer", *input.PrivatePlacementBuyer)
	}
	if input.EsgGreen != nil {
		query = query.Set("esg_green", *input.EsgGreen)
	}
	if input.EsgSocial != nil {
		query = query.Set("esg_social", *input.EsgSocial)
	}
	if input.EsgSustainable != nil {
		query = query.Set("esg_sustainable", *input.EsgSustainable)
	}
	if input.TargetSpreadOis != nil {
		query = query.Set("target_spread_ois", *input.TargetSpreadOis)
	}
	if input.TargetGSpread != nil {
		query = query.Set("target_g_spread", *input.TargetGSpread)
	}
	if input.TomsCode != nil {
		query = query.Set("toms_code", *input.TomsCode)
	}
	if input.ClientNotes != nil {
		query = query.Set("client_notes", *input.ClientNotes)
	}
	if input.Region != nil {
		query = query.Set("region", *input.Region)
	}

	return ExecBuilder(ctx, exec, query)
}

// SearchClients runs the multi-predicate intersection search. Every supplied
// filter combines with AND; tag filters use superset semantics (the client
// must carry ALL requested values). Grouping by the client id keeps each
// client in the result exactly once however many tag rows it joins against.
func (repo *CoverdeskDbRepository) SearchClients(ctx context.Context, exec Executor,
	filters models.ClientFilters,
) ([]models.Client, error) {
	query := NewQueryBuilder().
		Select(columnsNames("c", dbmodels.SelectClientColumn)...).
		From(dbmodels.TABLE_CLIENTS + " AS c").
		GroupBy("c.id").
		OrderBy("c.created_at DESC", "c.id DESC")

	if len(filters.Tickers) > 0 {
		query = query.
			Join(dbmodels.TABLE_CLIENT_TICKERS + " AS ct ON ct.client_id = c.id").
			Join(dbmodels.TABLE_TICKERS + " AS t ON t.id = ct.ticker_id").
			Where(squirrel.Eq{"t.symbol": filters.Tickers}).
			Having("count(distinct t.id) >= ?", len(filters.Tickers))
	}

	if len(filters.Currencies) > 0 {
		query = query.
			Join(dbmodels.TABLE_CLIENT_CURRENCIES + " AS cc ON cc.client_id = c.id").
			Join(dbmodels.TABLE_CURRENCIES + " AS cur ON cur.id = cc.currency_id").
			Where(squirrel.Eq{"cur.code": filters.Currencies}).
			Having("count(distinct cur.id) >= ?", len(filters.Currencies))
	}

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.
			LeftJoin(dbmodels.TABLE_CLIENT_TICKERS + " AS qct ON qct.client_id = c.id").
			LeftJoin(dbmodels.TABLE_TICKERS + " AS qt ON qt.id = qct.ticker_id").
			Where(squirrel.Or{
				squirrel.ILike{"c.client_name": pattern},
				squirrel.ILike{"qt.symbol": pattern},
			})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptClient)
}
