package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/coverdesk/coverdesk-backend/models"
	"github.com/coverdesk/coverdesk-backend/pure_utils"
	"github.com/coverdesk/coverdesk-backend/repositories"
)

type TagRegistryRepository interface {
	GetTagByValue(ctx context.Context, exec repositories.Executor,
		kind models.TagKind, value string) (*models.Tag, error)
	CreateTagIfAbsent(ctx context.Context, exec repositories.Executor,
		kind models.TagKind, newTagId uuid.UUID, value string) error
}

// TagRegistry resolves ticker and currency values to tag rows, creating the
// rows on first use.
type TagRegistry struct {
	repository TagRegistryRepository
}

// ResolveOrCreate normalizes the raw values, then returns one tag per distinct
// value, in first-occurrence order. Values unknown to the registry are
// inserted; a concurrent insert of the same value is resolved by re-reading
// the row the other transaction committed.
func (registry TagRegistry) ResolveOrCreate(ctx context.Context, exec repositories.Executor,
	kind models.TagKind, rawValues []string,
) ([]models.Tag, error) {
	values := pure_utils.NormalizeTagValues(rawValues)

	tags := make([]models.Tag, 0, len(values))
	for _, value := range values {
		tag, err := registry.repository.GetTagByValue(ctx, exec, kind, value)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			if err := registry.repository.CreateTagIfAbsent(ctx, exec, kind, uuid.New(), value); err != nil {
				return nil, err
			}
			tag, err = registry.repository.GetTagByValue(ctx, exec, kind, value)
			if err != nil {
				return nil, err
			}
			if tag == nil {
				return nil, errors.Newf("tag %s %q missing after insert", kind, value)
			}
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
