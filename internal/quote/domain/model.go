package domain

import "github.com/folio-site/folio-backend/internal/locale"

// MaxQueryLen caps the free-text project description before estimation.
const MaxQueryLen = 2000

// Request is a single quote estimation request. Nothing about it survives
// the request that carried it.
type Request struct {
	Query  string `json:"query"`
	Locale string `json:"locale,omitempty"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Estimate is the deterministic output of the keyword heuristic: a price
// band in USD, a timeline, the localized baseline feature list plus one
// bullet per matched trigger, and the standing assumptions.
type Estimate struct {
	PriceRangeUSD PriceRange    `json:"priceRangeUSD"`
	TimelineWeeks int           `json:"timelineWeeks"`
	MVP           []string      `json:"mvp"`
	Assumptions   []string      `json:"assumptions"`
	Locale        locale.Locale `json:"locale"`
}
