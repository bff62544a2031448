package repositories

import (
	"context"
	"fmt"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/repositories/dbmodels"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (repo *CoverdeskDbRepository) GetTagByValue(ctx context.Context, exec Executor,
	kind models.TagKind, value string,
) (*models.Tag, error) {
	tt := dbmodels.TagTablesFor(kind)

	query := NewQueryBuilder().
		Select("id", fmt.Sprintf("%s AS value", tt.ValueColumn)).
		From(tt.Table).
		Where(squirrel.Eq{tt.ValueColumn: value})

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptTag)
}

// CreateTagIfAbsent inserts a new tag, skipping the insert when another
// transaction won the race on the value's uniqueness constraint. The caller
// re-reads the row either way.
func (repo *CoverdeskDbRepository) CreateTagIfAbsent(ctx context.Context, exec Executor,
	kind models.TagKind, newTagId uuid.UUID, value string,
) error {
	tt := dbmodels.TagTablesFor(kind)

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(tt.Table).
			Columns("id", tt.ValueColumn).
			Values(newTagId, value).
			Suffix(fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", tt.ValueColumn)),
	)
}

// ListClientTags returns the association rows of the given clients, in the
// position order of the last replace.
func (repo *CoverdeskDbRepository) ListClientTags(ctx context.Context, exec Executor,
	kind models.TagKind, clientIds []uuid.UUID,
) ([]models.ClientTag, error) {
	if len(clientIds) == 0 {
		return nil, nil
	}
	tt := dbmodels.TagTablesFor(kind)

	query := NewQueryBuilder().
		Select("ct.client_id", "t.id", fmt.Sprintf("t.%s AS value", tt.ValueColumn)).
		From(tt.JoinTable+" AS ct").
		Join(fmt.Sprintf("%s AS t ON t.id = ct.%s", tt.Table, tt.JoinColumn)).
		Where("ct.client_id = ANY(?)", clientIds).
		OrderBy("ct.client_id", "ct.ord")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptClientTag)
}

func (repo *CoverdeskDbRepository) DeleteClientTags(ctx context.Context, exec Executor,
	kind models.TagKind, clientId uuid.UUID,
) error {
	tt := dbmodels.TagTablesFor(kind)

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(tt.JoinTable).
			Where(squirrel.Eq{"client_id": clientId}),
	)
}

// InsertClientTags writes one join row per tag id, keeping the given order in
// the ord column. tagIds must already be de-duplicated.
func (repo *CoverdeskDbRepository) InsertClientTags(ctx context.Context, exec Executor,
	kind models.TagKind, clientId uuid.UUID, tagIds []uuid.UUID,
) error {
	if len(tagIds) == 0 {
		return nil
	}
	tt := dbmodels.TagTablesFor(kind)

	query := NewQueryBuilder().
		Insert(tt.JoinTable).
		Columns("client_id", tt.JoinColumn, "ord")
	for i, tagId := range tagIds {
		query = query.Values(clientId, tagId, i)
	}

	return ExecBuilder(ctx, exec, query)
}
