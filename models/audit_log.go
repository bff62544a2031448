package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is the immutable record of one field change on one client.
// Old and new values are stored in their textual form; a nil value means the
// field was absent, not the string "null".
type AuditLogEntry struct {
	Id        uuid.UUID
	ClientId  uuid.UUID
	UserId    *uuid.UUID
	FieldName string
	OldValue  *string
	NewValue  *string
	ChangedAt time.Time
}

// FieldChange is one pending (field, old, new) diff computed during an update,
// before it is persisted as an audit log entry.
type FieldChange struct {
	FieldName string
	OldValue  *string
	NewValue  *string
}
