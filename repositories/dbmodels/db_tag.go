package dbmodels

import (
	"github.com/coverdesk/coverdesk-backend/models"

	"github.com/google/uuid"
)

// DBTag is scanned from either tag table; the kind-specific value column is
// selected with an "AS value" alias.
type DBTag struct {
	Id    uuid.UUID `db:"id"`
	Value string    `db:"value"`
}

type DBClientTag struct {
	ClientId uuid.UUID `db:"client_id"`
	DBTag
}

const (
	TABLE_TICKERS           = "tickers"
	TABLE_CURRENCIES        = "currencies"
	TABLE_CLIENT_TICKERS    = "client_tickers"
	TABLE_CLIENT_CURRENCIES = "client_currencies"
)

// TagTables names the physical tables and columns of one tag kind.
type TagTables struct {
	Table       string
	ValueColumn string
	JoinTable   string
	JoinColumn  string
}

func TagTablesFor(kind models.TagKind) TagTables {
	switch kind {
	case models.TagKindCurrency:
		return TagTables{
			Table:       TABLE_CURRENCIES,
			ValueColumn: "code",
			JoinTable:   TABLE_CLIENT_CURRENCIES,
			JoinColumn:  "currency_id",
		}
	default:
		return TagTables{
			Table:       TABLE_TICKERS,
			ValueColumn: "symbol",
			JoinTable:   TABLE_CLIENT_TICKERS,
			JoinColumn:  "ticker_id",
		}
	}
}

func AdaptTag(db DBTag) (models.Tag, error) {
	return models.Tag{
		Id:    db.Id,
		Value: db.Value,
	}, nil
}

func AdaptClientTag(db DBClientTag) (models.ClientTag, error) {
	tag, err := AdaptTag(db.DBTag)
	if err != nil {
		return models.ClientTag{}, err
	}
	return models.ClientTag{
		ClientId: db.ClientId,
		Tag:      tag,
	}, nil
}
