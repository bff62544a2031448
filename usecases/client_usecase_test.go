package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/repositories"
	"github.com/coverdesk/coverdesk-backend/repositories/dbmodels"
	"github.com/coverdesk/coverdesk-backend/usecases/executor_factory"
)

const selectClientSql = `SELECT id, client_name, tenors_min, tenors_max, tenors_sweetspot,
	frn_buyer, callable_buyer, private_placement_buyer, esg_green, esg_social, esg_sustainable,
	target_spread_ois, target_g_spread, toms_code, client_notes, region, created_at, updated_at
	FROM clients WHERE id = $1`

const listClientTickersSql = `SELECT ct.client_id, t.id, t.symbol AS value
	FROM client_tickers AS ct JOIN tickers AS t ON t.id = ct.ticker_id
	WHERE ct.client_id = ANY($1) ORDER BY ct.client_id, ct.ord`

const listClientCurrenciesSql = `SELECT ct.client_id, t.id, t.code AS value
	FROM client_currencies AS ct JOIN currencies AS t ON t.id = ct.currency_id
	WHERE ct.client_id = ANY($1) ORDER BY ct.client_id, ct.ord`

func buildClientUsecaseMock() (ClientUseCase, executor_factory.ExecutorFactoryStub) {
	exec := executor_factory.NewExecutorFactoryStub()
	repo := repositories.NewCoverdeskDbRepository()
	uc := ClientUseCase{
		executorFactory:    exec,
		transactionFactory: executor_factory.NewTransactionFactoryStub(exec),
		repository:         repo,
		tagRegistry:        TagRegistry{repository: repo},
	}
	return uc, exec
}

func clientRow(id uuid.UUID, name string) []any {
	now := time.Now()
	return []any{
		id, name, nil, nil, nil, false, false, nil, false, false, false,
		nil, nil, nil, nil, nil, now, now,
	}
}

func expectGetClientWithTags(exec executor_factory.ExecutorFactoryStub,
	clientId uuid.UUID, name string, tickerRows *pgxmock.Rows, currencyRows *pgxmock.Rows,
) {
	exec.Mock.ExpectQuery(escapeSql(selectClientSql)).
		WithArgs(clientId).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectClientColumn).
			AddRow(clientRow(clientId, name)...))
	exec.Mock.ExpectQuery(escapeSql(listClientTickersSql)).
		WithArgs([]uuid.UUID{clientId}).
		WillReturnRows(tickerRows)
	exec.Mock.ExpectQuery(escapeSql(listClientCurrenciesSql)).
		WithArgs([]uuid.UUID{clientId}).
		WillReturnRows(currencyRows)
}

func tagRows(clientId uuid.UUID, values ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"client_id", "id", "value"})
	for _, value := range values {
		rows.AddRow(clientId, uuid.New(), value)
	}
	return rows
}

func TestListClients_NoFilters(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	exec.Mock.ExpectQuery(escapeSql(`SELECT c.id, c.client_name,`) + `.+` +
		escapeSql(`FROM clients AS c GROUP BY c.id ORDER BY c.created_at DESC, c.id DESC`)).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectClientColumn).
			AddRow(clientRow(clientId, "RBIB")...))
	exec.Mock.ExpectQuery(escapeSql(listClientTickersSql)).
		WithArgs([]uuid.UUID{clientId}).
		WillReturnRows(tagRows(clientId, "AAPL", "MSFT"))
	exec.Mock.ExpectQuery(escapeSql(listClientCurrenciesSql)).
		WithArgs([]uuid.UUID{clientId}).
		WillReturnRows(tagRows(clientId))

	clients, err := uc.ListClients(context.TODO(), models.ClientFilters{})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Len(t, clients, 1)
	assert.Equal(t, "RBIB", clients[0].Name)
	assert.Equal(t, []string{"AAPL", "MSFT"}, clients[0].TickerSymbols())
	assert.Empty(t, clients[0].CurrencyCodes())
	assert.NotNil(t, clients[0].Currencies)
}

func TestListClients_TickerSupersetFilter(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	exec.Mock.ExpectQuery(`SELECT c\.id, .+ FROM clients AS c ` +
		escapeSql(`JOIN client_tickers AS ct ON ct.client_id = c.id `+
			`JOIN tickers AS t ON t.id = ct.ticker_id `+
			`WHERE t.symbol IN ($1,$2) GROUP BY c.id `+
			`HAVING count(distinct t.id) >= $3 `+
			`ORDER BY c.created_at DESC, c.id DESC`)).
		WithArgs("AAPL", "MSFT", 2).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectClientColumn).
			AddRow(clientRow(clientId, "RBIB")...))
	exec.Mock.ExpectQuery(escapeSql(listClientTickersSql)).
		WithArgs([]uuid.UUID{clientId}).
		WillReturnRows(tagRows(clientId, "AAPL", "MSFT"))
	exec.Mock.ExpectQuery(escapeSql(listClientCurrenciesSql)).
		WithArgs([]uuid.UUID{clientId}).
		WillReturnRows(tagRows(clientId, "CAD"))

	clients, err := uc.ListClients(context.TODO(), models.ClientFilters{
		Tickers: []string{"aapl,msft"},
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Len(t, clients, 1)
}

func TestListClients_FreeTextFilter(t *testing.T) {
	uc, exec := buildClientUsecaseMock()

	exec.Mock.ExpectQuery(`SELECT c\.id, .+ FROM clients AS c ` +
		escapeSql(`LEFT JOIN client_tickers AS qct ON qct.client_id = c.id `+
			`LEFT JOIN tickers AS qt ON qt.id = qct.ticker_id `+
			`WHERE (c.client_name ILIKE $1 OR qt.symbol ILIKE $2) `+
			`GROUP BY c.id ORDER BY c.created_at DESC, c.id DESC`)).
		WithArgs("%harbor%", "%harbor%").
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectClientColumn))

	clients, err := uc.ListClients(context.TODO(), models.ClientFilters{Query: "harbor"})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Empty(t, clients)
}

func TestCreateClient_RequiresName(t *testing.T) {
	uc, exec := buildClientUsecaseMock()

	_, err := uc.CreateClient(context.TODO(), models.ClientCreateInput{})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestCreateClient_WithTickers(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	tagId := uuid.New()
	tickers := []string{"AAPL"}

	exec.Mock.ExpectExec(escapeSql(`INSERT INTO clients (id,client_name,tenors_min,tenors_max,`+
		`tenors_sweetspot,frn_buyer,callable_buyer,private_placement_buyer,esg_green,esg_social,`+
		`esg_sustainable,target_spread_ois,target_g_spread,toms_code,client_notes,region) `+
		`VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, symbol AS value FROM tickers WHERE symbol = $1`)).
		WithArgs("AAPL").
		WillReturnRows(pgxmock.NewRows([]string{"id", "value"}).AddRow(tagId, "AAPL"))
	exec.Mock.ExpectExec(escapeSql(`DELETE FROM client_tickers WHERE client_id = $1`)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	exec.Mock.ExpectExec(escapeSql(`INSERT INTO client_tickers (client_id,ticker_id,ord) VALUES ($1,$2,$3)`)).
		WithArgs(pgxmock.AnyArg(), tagId, 0).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	clientId := uuid.New()
	expectGetClientWithTags(exec, clientId, "Blue Harbor",
		tagRows(clientId, "AAPL"), tagRows(clientId))

	client, err := uc.CreateClient(context.TODO(), models.ClientCreateInput{
		Name:    "Blue Harbor",
		Tickers: &tickers,
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "Blue Harbor", client.Name)
	assert.Equal(t, []string{"AAPL"}, client.TickerSymbols())
}

func TestUpdateClient_UnknownClient(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	exec.Mock.ExpectQuery(escapeSql(selectClientSql)).
		WithArgs(clientId).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectClientColumn))

	_, err := uc.UpdateClient(context.TODO(), clientId, models.ClientUpdateInput{
		Region: ptr("EU"),
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, models.NotFoundError)
}

// Submitting the stored values again must not touch the row nor the audit log.
func TestUpdateClient_IdenticalValuesWriteNothing(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	expectGetClientWithTags(exec, clientId, "RBIB",
		tagRows(clientId, "AAPL"), tagRows(clientId))
	expectGetClientWithTags(exec, clientId, "RBIB",
		tagRows(clientId, "AAPL"), tagRows(clientId))

	tickers := []string{"AAPL"}
	client, err := uc.UpdateClient(context.TODO(), clientId, models.ClientUpdateInput{
		Name:    ptr("RBIB"),
		Tickers: &tickers,
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "RBIB", client.Name)
}

// Reordering an association list keeps the same set and is silent.
func TestUpdateClient_TickerReorderIsSilent(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	expectGetClientWithTags(exec, clientId, "RBIB",
		tagRows(clientId, "AAPL", "MSFT"), tagRows(clientId))
	expectGetClientWithTags(exec, clientId, "RBIB",
		tagRows(clientId, "AAPL", "MSFT"), tagRows(clientId))

	tickers := []string{"MSFT", "AAPL"}
	_, err := uc.UpdateClient(context.TODO(), clientId, models.ClientUpdateInput{
		Tickers: &tickers,
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
}

func TestUpdateClient_ScalarChangeIsAudited(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	expectGetClientWithTags(exec, clientId, "RBIB",
		tagRows(clientId), tagRows(clientId))

	exec.Mock.ExpectExec(escapeSql(`UPDATE clients SET updated_at = NOW(), client_name = $1 WHERE id = $2`)).
		WithArgs("RBIB Capital", clientId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	exec.Mock.ExpectExec(escapeSql(`INSERT INTO audit_log (id,client_id,user_id,field_name,old_value,new_value) `+
		`VALUES ($1,$2,$3,$4,$5,$6)`)).
		WithArgs(pgxmock.AnyArg(), clientId, nil, "client_name", ptr("RBIB"), ptr("RBIB Capital")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	expectGetClientWithTags(exec, clientId, "RBIB Capital",
		tagRows(clientId), tagRows(clientId))

	client, err := uc.UpdateClient(context.TODO(), clientId, models.ClientUpdateInput{
		Name: ptr("RBIB Capital"),
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "RBIB Capital", client.Name)
}

// Growing the ticker set replaces the join rows and records a single entry
// with the comma-joined before and after lists.
func TestUpdateClient_TickerSetGrowthIsAuditedOnce(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()
	appleId := uuid.New()
	nvidiaId := uuid.New()

	expectGetClientWithTags(exec, clientId, "Northwind Capital",
		tagRows(clientId, "AAPL"), tagRows(clientId))

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, symbol AS value FROM tickers WHERE symbol = $1`)).
		WithArgs("AAPL").
		WillReturnRows(pgxmock.NewRows([]string{"id", "value"}).AddRow(appleId, "AAPL"))
	exec.Mock.ExpectQuery(escapeSql(`SELECT id, symbol AS value FROM tickers WHERE symbol = $1`)).
		WithArgs("NVDA").
		WillReturnRows(pgxmock.NewRows([]string{"id", "value"}).AddRow(nvidiaId, "NVDA"))
	exec.Mock.ExpectExec(escapeSql(`DELETE FROM client_tickers WHERE client_id = $1`)).
		WithArgs(clientId).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	exec.Mock.ExpectExec(escapeSql(`INSERT INTO client_tickers (client_id,ticker_id,ord) `+
		`VALUES ($1,$2,$3),($4,$5,$6)`)).
		WithArgs(clientId, appleId, 0, clientId, nvidiaId, 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	exec.Mock.ExpectExec(escapeSql(`INSERT INTO audit_log (id,client_id,user_id,field_name,old_value,new_value) `+
		`VALUES ($1,$2,$3,$4,$5,$6)`)).
		WithArgs(pgxmock.AnyArg(), clientId, nil, "tickers", ptr("AAPL"), ptr("AAPL, NVDA")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	expectGetClientWithTags(exec, clientId, "Northwind Capital",
		tagRows(clientId, "AAPL", "NVDA"), tagRows(clientId))

	client, err := uc.UpdateClient(context.TODO(), clientId, models.ClientUpdateInput{
		Tickers: &[]string{"aapl", "nvda"},
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "NVDA"}, client.TickerSymbols())
}

func TestGetAuditTrail(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()
	now := time.Now()

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, client_id, user_id, field_name, old_value, new_value, changed_at `+
		`FROM audit_log WHERE client_id = $1 ORDER BY changed_at DESC`)).
		WithArgs(clientId).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectAuditLogColumn).
			AddRow(uuid.New(), clientId, nil, "client_name", ptr("RBIB"), ptr("RBIB Capital"), now).
			AddRow(uuid.New(), clientId, nil, "region", nil, ptr("EU"), now.Add(-time.Hour)))

	entries, err := uc.GetAuditTrail(context.TODO(), clientId)

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "client_name", entries[0].FieldName)
	assert.True(t, entries[0].ChangedAt.After(entries[1].ChangedAt))
}

func TestGetAuditTrail_UnknownClientIsEmpty(t *testing.T) {
	uc, exec := buildClientUsecaseMock()
	clientId := uuid.New()

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, client_id, user_id, field_name, old_value, new_value, changed_at `+
		`FROM audit_log WHERE client_id = $1 ORDER BY changed_at DESC`)).
		WithArgs(clientId).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectAuditLogColumn))

	entries, err := uc.GetAuditTrail(context.TODO(), clientId)

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
