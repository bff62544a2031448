package models

import "github.com/google/uuid"

// TagKind discriminates the two independent tag registries. Ticker symbols and
// currency codes live in separate tables and are never compared to each other.
type TagKind int

const (
	TagKindTicker TagKind = iota
	TagKindCurrency
)

func (k TagKind) String() string {
	switch k {
	case TagKindTicker:
		return "ticker"
	case TagKindCurrency:
		return "currency"
	}
	return "unknown"
}

// Tag is a canonical short string (ticker symbol or currency code), unique
// within its kind, created lazily and never mutated or deleted.
type Tag struct {
	Id    uuid.UUID
	Value string
}

// ClientTag is one row of a client/tag association table.
type ClientTag struct {
	ClientId uuid.UUID
	Tag      Tag
}
