package dbmodels

import (
	"time"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/utils"

	"github.com/google/uuid"
)

type DBAuditLogEntry struct {
	Id        uuid.UUID  `db:"id"`
	ClientId  uuid.UUID  `db:"client_id"`
	UserId    *uuid.UUID `db:"user_id"`
	FieldName string     `db:"field_name"`
	OldValue  *string    `db:"old_value"`
	NewValue  *string    `db:"new_value"`
	ChangedAt time.Time  `db:"changed_at"`
}

const TABLE_AUDIT_LOG = "audit_log"

var SelectAuditLogColumn = utils.ColumnList[DBAuditLogEntry]()

func AdaptAuditLogEntry(db DBAuditLogEntry) (models.AuditLogEntry, error) {
	return models.AuditLogEntry{
		Id:        db.Id,
		ClientId:  db.ClientId,
		UserId:    db.UserId,
		FieldName: db.FieldName,
		OldValue:  db.OldValue,
		NewValue:  db.NewValue,
		ChangedAt: db.ChangedAt,
	}, nil
}
