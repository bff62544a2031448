package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a counterparty profile: who the sales desk covers, what they buy
// and where. Scalar preference fields are free text by design (tenors like
// "2Y" or "10Y+" are descriptors, not parsed numbers).
type Client struct {
	Id                    uuid.UUID
	Name                  string
	TenorsMin             *string
	TenorsMax             *string
	TenorsSweetspot       *string
	FrnBuyer              bool
	CallableBuyer         bool
	PrivatePlacementBuyer *string
	EsgGreen              bool
	EsgSocial             bool
	EsgSustainable        bool
	TargetSpreadOis       *string
	TargetGSpread         *string
	TomsCode              *string
	ClientNotes           *string
	Region                *string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Tickers    []Tag
	Currencies []Tag
}

// TickerSymbols returns the associated ticker values in stored order.
func (c Client) TickerSymbols() []string {
	return tagValues(c.Tickers)
}

// CurrencyCodes returns the associated currency values in stored order.
func (c Client) CurrencyCodes() []string {
	return tagValues(c.Currencies)
}

func tagValues(tags []Tag) []string {
	values := make([]string, len(tags))
	for i, t := range tags {
		values[i] = t.Value
	}
	return values
}

// ClientCreateInput carries the fields of a new client. A nil Tickers or
// Currencies pointer means "no association list submitted", which is distinct
// from an empty list. Booleans left nil default to false.
type ClientCreateInput struct {
	Name                  string
	Tickers               *[]string
	Currencies            *[]string
	TenorsMin             *string
	TenorsMax             *string
	TenorsSweetspot       *string
	FrnBuyer              *bool
	CallableBuyer         *bool
	PrivatePlacementBuyer *string
	EsgGreen              *bool
	EsgSocial             *bool
	EsgSustainable        *bool
	TargetSpreadOis       *string
	TargetGSpread         *string
	TomsCode              *string
	ClientNotes           *string
	Region                *string
}

// ClientUpdateInput is a partial update: nil fields are left untouched, non-nil
// fields are candidates for change.
type ClientUpdateInput struct {
	Name                  *string
	Tickers               *[]string
	Currencies            *[]string
	TenorsMin             *string
	TenorsMax             *string
	TenorsSweetspot       *string
	FrnBuyer              *bool
	CallableBuyer         *bool
	PrivatePlacementBuyer *string
	EsgGreen              *bool
	EsgSocial             *bool
	EsgSustainable        *bool
	TargetSpreadOis       *string
	TargetGSpread         *string
	TomsCode              *string
	ClientNotes           *string
	Region                *string
}

// ClientFilters are the optional search predicates; all supplied filters
// combine with AND. Tickers and Currencies are expected in canonical form.
type ClientFilters struct {
	Query      string
	Tickers    []string
	Currencies []string
}
