// Package service implements the quote estimation heuristic: a fixed set of
// keyword trigger groups scanned against the client's free-text project
// description, each match adding a fixed cost and timeline delta.
package service

import (
	"math"
	"strings"

	"github.com/folio-site/folio-backend/internal/locale"
	"github.com/folio-site/folio-backend/internal/quote/domain"
)

const (
	baseCostUSD = 2500
	baseWeeks   = 2
	minWeeks    = 2
	minFactor   = 0.9
	maxFactor   = 1.2
)

// Keys for the extra MVP bullet a trigger group contributes when matched.
const (
	bulletRealtime = "realtime"
	bulletPayment  = "payment"
	bulletAI       = "ai"
	bulletWebGL    = "webgl"
)

type triggerGroup struct {
	name     string
	keywords []string
	costUSD  int
	weeks    int
	bullet   string // MVP bullet key, empty when the group adds no bullet
}

// Groups are checked in this fixed order. They are independent: every
// matching group contributes its delta, there is no precedence or exclusivity.
var triggerGroups = []triggerGroup{
	{name: "mobile", keywords: []string{"mobile", "android", "ios"}, costUSD: 3000, weeks: 4},
	{name: "realtime", keywords: []string{"realtime", "websocket", "live"}, costUSD: 2000, weeks: 2, bullet: bulletRealtime},
	{name: "payments", keywords: []string{"payment", "billing", "stripe"}, costUSD: 1800, weeks: 2, bullet: bulletPayment},
	{name: "ai", keywords: []string{"ai", "ml", "openai", "llm"}, costUSD: 2500, weeks: 3, bullet: bulletAI},
	{name: "dashboard", keywords: []string{"dashboard", "admin"}, costUSD: 1500, weeks: 2},
	{name: "i18n", keywords: []string{"multilang", "rtl", "hebrew"}, costUSD: 800, weeks: 1},
	{name: "seo", keywords: []string{"seo", "sitemap"}, costUSD: 500, weeks: 1},
	{name: "3d", keywords: []string{"native", "three", "webgl"}, costUSD: 2200, weeks: 3, bullet: bulletWebGL},
}

// truncateRunes caps s at n characters. The cap counts characters, not
// bytes: Hebrew queries are two bytes per letter, and a byte cut could also
// split a rune mid-sequence.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (g triggerGroup) matches(lowered string) bool {
	for _, kw := range g.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Estimate derives a quote from the free-text query. Pure and deterministic:
// the same (query, locale) pair always yields the same estimate.
func Estimate(query string, loc locale.Locale) domain.Estimate {
	query = truncateRunes(query, domain.MaxQueryLen)
	lowered := strings.ToLower(query)

	base := baseCostUSD
	weeks := baseWeeks

	mvp := append([]string(nil), baselineMVP[loc]...)
	for _, g := range triggerGroups {
		if !g.matches(lowered) {
			continue
		}
		base += g.costUSD
		weeks += g.weeks
		if g.bullet != "" {
			mvp = append(mvp, triggerBullets[loc][g.bullet])
		}
	}

	if weeks < minWeeks {
		weeks = minWeeks
	}

	return domain.Estimate{
		PriceRangeUSD: domain.PriceRange{
			Min: int(math.Round(float64(base) * minFactor)),
			Max: int(math.Round(float64(base) * maxFactor)),
		},
		TimelineWeeks: weeks,
		MVP:           mvp,
		Assumptions:   append([]string(nil), assumptions[loc]...),
		Locale:        loc,
	}
}
