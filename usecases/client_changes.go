package usecases

import (
	"strconv"
	"strings"

	"github.com/coverdesk/coverdesk-backend/models"
)

// scalarFieldDiff describes one audited scalar field: its audit name, how to
// read the stored value and how to read the submitted value. Updated returns
// nil when the field was not part of the request.
type scalarFieldDiff struct {
	name    string
	current func(client models.Client) *string
	updated func(input models.ClientUpdateInput) *string
}

// scalarFields fixes the set of audited fields and the order audit entries
// are written in for a single update.
var scalarFields = []scalarFieldDiff{
	{
		name:    "client_name",
		current: func(c models.Client) *string { return &c.Name },
		updated: func(in models.ClientUpdateInput) *string { return in.Name },
	},
	{
		name:    "tenors_min",
		current: func(c models.Client) *string { return c.TenorsMin },
		updated: func(in models.ClientUpdateInput) *string { return in.TenorsMin },
	},
	{
		name:    "tenors_max",
		current: func(c models.Client) *string { return c.TenorsMax },
		updated: func(in models.ClientUpdateInput) *string { return in.TenorsMax },
	},
	{
		name:    "tenors_sweetspot",
		current: func(c models.Client) *string { return c.TenorsSweetspot },
		updated: func(in models.ClientUpdateInput) *string { return in.TenorsSweetspot },
	},
	{
		name:    "frn_buyer",
		current: func(c models.Client) *string { return boolText(c.FrnBuyer) },
		updated: func(in models.ClientUpdateInput) *string { return optBoolText(in.FrnBuyer) },
	},
	{
		name:    "callable_buyer",
		current: func(c models.Client) *string { return boolText(c.CallableBuyer) },
		updated: func(in models.ClientUpdateInput) *string { return optBoolText(in.CallableBuyer) },
	},
	{
		name:    "private_placement_buyer",
		current: func(c models.Client) *string { return c.PrivatePlacementBuyer },
		updated: func(in models.ClientUpdateInput) *string { return in.PrivatePlacementBuyer },
	},
	{
		name:    "esg_green",
		current: func(c models.Client) *string { return boolText(c.EsgGreen) },
		updated: func(in models.ClientUpdateInput) *string { return optBoolText(in.EsgGreen) },
	},
	{
		name:    "esg_social",
		current: func(c models.Client) *string { return boolText(c.EsgSocial) },
		updated: func(in models.ClientUpdateInput) *string { return optBoolText(in.EsgSocial) },
	},
	{
		name:    "esg_sustainable",
		current: func(c models.Client) *string { return boolText(c.EsgSustainable) },
		updated: func(in models.ClientUpdateInput) *string { return optBoolText(in.EsgSustainable) },
	},
	{
		name:    "target_spread_ois",
		current: func(c models.Client) *string { return c.TargetSpreadOis },
		updated: func(in models.ClientUpdateInput) *string { return in.TargetSpreadOis },
	},
	{
		name:    "target_g_spread",
		current: func(c models.Client) *string { return c.TargetGSpread },
		updated: func(in models.ClientUpdateInput) *string { return in.TargetGSpread },
	},
	{
		name:    "toms_code",
		current: func(c models.Client) *string { return c.TomsCode },
		updated: func(in models.ClientUpdateInput) *string { return in.TomsCode },
	},
	{
		name:    "client_notes",
		current: func(c models.Client) *string { return c.ClientNotes },
		updated: func(in models.ClientUpdateInput) *string { return in.ClientNotes },
	},
	{
		name:    "region",
		current: func(c models.Client) *string { return c.Region },
		updated: func(in models.ClientUpdateInput) *string { return in.Region },
	},
}

// computeScalarChanges compares a client with a partial update and returns one
// change per scalar field whose submitted value differs from the stored one.
// Fields absent from the update never produce a change.
func computeScalarChanges(client models.Client, input models.ClientUpdateInput) []models.FieldChange {
	var changes []models.FieldChange
	for _, field := range scalarFields {
		updated := field.updated(input)
		if updated == nil {
			continue
		}
		current := field.current(client)
		if current != nil && *current == *updated {
			continue
		}
		changes = append(changes, models.FieldChange{
			FieldName: field.name,
			OldValue:  current,
			NewValue:  updated,
		})
	}
	return changes
}

func boolText(value bool) *string {
	text := strconv.FormatBool(value)
	return &text
}

func optBoolText(value *bool) *string {
	if value == nil {
		return nil
	}
	return boolText(*value)
}

// tagAuditValue renders an association list for the audit trail.
func tagAuditValue(values []string) *string {
	text := strings.Join(values, ", ")
	return &text
}
