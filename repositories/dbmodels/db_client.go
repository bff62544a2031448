package dbmodels

import (
	"time"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/utils"

	"github.com/google/uuid"
)

type DBClient struct {
	Id                    uuid.UUID `db:"id"`
	ClientName            string    `db:"client_name"`
	TenorsMin             *string   `db:"tenors_min"`
	TenorsMax             *string   `db:"tenors_max"`
	TenorsSweetspot       *string   `db:"tenors_sweetspot"`
	FrnBuyer              bool      `db:"frn_buyer"`
	CallableBuyer         bool      `db:"callable_buyer"`
	PrivatePlacementBuyer *string   `db:"private_placement_buyer"`
	EsgGreen              bool      `db:"esg_green"`
	EsgSocial             bool      `db:"esg_social"`
	EsgSustainable        bool      `db:"esg_sustainable"`
	TargetSpreadOis       *string   `db:"target_spread_ois"`
	TargetGSpread         *string   `db:"target_g_spread"`
	TomsCode              *string   `db:"toms_code"`
	ClientNotes           *string   `db:"client_notes"`
	Region                *string   `db:"region"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

const TABLE_CLIENTS = "clients"

var SelectClientColumn = utils.ColumnList[DBClient]()

func AdaptClient(db DBClient) (models.Client, error) {
	return models.Client{
		Id:                    db.Id,
		Name:                  db.ClientName,
		TenorsMin:             db.TenorsMin,
		TenorsMax:             db.TenorsMax,
		TenorsSweetspot:       db.TenorsSweetspot,
		FrnBuyer:              db.FrnBuyer,
		CallableBuyer:         db.CallableBuyer,
		PrivatePlacementBuyer: db.PrivatePlacementBuyer,
		EsgGreen:              db.EsgGreen,
		EsgSocial:             db.EsgSocial,
		EsgSustainable:        db.EsgSustainable,
		TargetSpreadOis:       db.TargetSpreadOis,
		TargetGSpread:         db.TargetGSpread,
		TomsCode:              db.TomsCode,
		ClientNotes:           db.ClientNotes,
		Region:                db.Region,
		CreatedAt:             db.CreatedAt,
		UpdatedAt:             db.UpdatedAt,
	}, nil
}
