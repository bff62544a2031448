package repositories

import (
	"context"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// CreateAuditLogEntries appends one row per field change. The change timestamp
// is assigned by the database; entries are never updated or deleted afterward.
func (repo *CoverdeskDbRepository) CreateAuditLogEntries(ctx context.Context, exec Executor,
	entries []models.AuditLogEntry,
) error {
	if len(entries) == 0 {
		return nil
	}

	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_AUDIT_LOG).
		Columns(
			"id",
			"client_id",
			"user_id",
			"field_name",
			"old_value",
			"new_value",
		)
	for _, entry := range entries {
		query = query.Values(
			entry.Id,
			entry.ClientId,
			entry.UserId,
			entry.FieldName,
			entry.OldValue,
			entry.NewValue,
		)
	}

	return ExecBuilder(ctx, exec, query)
}

// ListClientAuditLogEntries returns a client's change history, newest first.
// The timestamp is the sole sort key.
func (repo *CoverdeskDbRepository) ListClientAuditLogEntries(ctx context.Context, exec Executor,
	clientId uuid.UUID,
) ([]models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditLogColumn...).
		From(dbmodels.TABLE_AUDIT_LOG).
		Where(squirrel.Eq{"client_id": clientId}).
		OrderBy("changed_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditLogEntry)
}
