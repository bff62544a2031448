package dto

import (
	"time"

	"github.com/coverdesk/coverdesk-backend/models"
)

type APIAuditLogEntry struct {
	Id        string    `json:"id"`
	ClientId  string    `json:"client_id"`
	UserId    *string   `json:"user_id"`
	FieldName string    `json:"field_name"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	ChangedAt time.Time `json:"changed_at"`
}

func AdaptAuditLogEntryDto(entry models.AuditLogEntry) APIAuditLogEntry {
	var userId *string
	if entry.UserId != nil {
		id := entry.UserId.String()
		userId = &id
	}
	return APIAuditLogEntry{
		Id:        entry.Id.String(),
		ClientId:  entry.ClientId.String(),
		UserId:    userId,
		FieldName: entry.FieldName,
		OldValue:  entry.OldValue,
		NewValue:  entry.NewValue,
		ChangedAt: entry.ChangedAt,
	}
}

type AuditListResponse struct {
	Items []APIAuditLogEntry `json:"items"`
}
