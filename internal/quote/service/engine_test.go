package service

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-site/folio-backend/internal/locale"
)

func TestEstimate_EmptyQuery(t *testing.T) {
	est := Estimate("", locale.English)

	assert.Equal(t, 2250, est.PriceRangeUSD.Min)
	assert.Equal(t, 3000, est.PriceRangeUSD.Max)
	assert.Equal(t, 2, est.TimelineWeeks)
	assert.Equal(t, baselineMVP[locale.English], est.MVP)
	assert.Equal(t, locale.English, est.Locale)
}

func TestEstimate_MobileWithPayments(t *testing.T) {
	// mobile (+3000, +4w) and payments (+1800, +2w) on top of the base
	// 2500/2w: base becomes 7300, timeline 8 weeks.
	est := Estimate("I need a mobile app with payments", locale.English)

	assert.Equal(t, 6570, est.PriceRangeUSD.Min) // round(7300 * 0.9)
	assert.Equal(t, 8760, est.PriceRangeUSD.Max) // round(7300 * 1.2)
	assert.Equal(t, 8, est.TimelineWeeks)

	require.Len(t, est.MVP, len(baselineMVP[locale.English])+1)
	assert.Equal(t, triggerBullets[locale.English][bulletPayment], est.MVP[len(est.MVP)-1])
}

func TestEstimate_CaseInsensitive(t *testing.T) {
	lower := Estimate("websocket dashboard with stripe", locale.Hebrew)
	upper := Estimate("WebSocket DASHBOARD with Stripe", locale.Hebrew)
	assert.Equal(t, lower, upper)
}

func TestEstimate_Deterministic(t *testing.T) {
	q := "realtime admin dashboard with openai integration and rtl"
	first := Estimate(q, locale.Hebrew)
	second := Estimate(q, locale.Hebrew)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("estimate not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestEstimate_GroupsAccumulate(t *testing.T) {
	// Every trigger group matched at once: deltas sum, nothing is exclusive.
	q := "mobile realtime payment ai dashboard rtl seo webgl"
	est := Estimate(q, locale.English)

	base := baseCostUSD
	weeks := baseWeeks
	for _, g := range triggerGroups {
		base += g.costUSD
		weeks += g.weeks
	}
	assert.Equal(t, int(float64(base)*0.9+0.5), est.PriceRangeUSD.Min)
	assert.Equal(t, weeks, est.TimelineWeeks)
	// baseline + one bullet per bullet-carrying group
	assert.Len(t, est.MVP, len(baselineMVP[locale.English])+4)
}

func TestEstimate_Monotonic(t *testing.T) {
	none := Estimate("simple brochure page", locale.English)
	for _, g := range triggerGroups {
		with := Estimate("project with "+g.keywords[0], locale.English)
		if with.PriceRangeUSD.Max < none.PriceRangeUSD.Max {
			t.Errorf("group %s lowered max price: %d < %d", g.name, with.PriceRangeUSD.Max, none.PriceRangeUSD.Max)
		}
		if with.TimelineWeeks < none.TimelineWeeks {
			t.Errorf("group %s lowered timeline: %d < %d", g.name, with.TimelineWeeks, none.TimelineWeeks)
		}
	}
}

func TestEstimate_TruncatesQuery(t *testing.T) {
	// A trigger keyword past the 2000-char cap must not count.
	long := strings.Repeat("x", 2000) + " mobile"
	est := Estimate(long, locale.English)
	assert.Equal(t, 2250, est.PriceRangeUSD.Min)
	assert.Equal(t, 2, est.TimelineWeeks)
}

func TestEstimate_TruncationCountsCharacters(t *testing.T) {
	// The cap counts characters, not bytes. A Hebrew query of 1500 letters
	// (3000 bytes) plus a trigger keyword is well inside the 2000-character
	// budget, so the keyword still counts.
	hebrew := strings.Repeat("א", 1500) + " mobile app"
	est := Estimate(hebrew, locale.Hebrew)
	assert.Equal(t, 4950, est.PriceRangeUSD.Min) // round((2500+3000) * 0.9)
	assert.Equal(t, 6, est.TimelineWeeks)

	// Past 2000 characters the keyword is dropped again.
	over := strings.Repeat("א", 2000) + " mobile"
	est = Estimate(over, locale.Hebrew)
	assert.Equal(t, 2250, est.PriceRangeUSD.Min)
}

func TestLocalizedTablesComplete(t *testing.T) {
	for _, loc := range locale.Supported() {
		require.NotEmpty(t, baselineMVP[loc], "baseline MVP missing for %s", loc)
		require.NotEmpty(t, assumptions[loc], "assumptions missing for %s", loc)
		for _, g := range triggerGroups {
			if g.bullet == "" {
				continue
			}
			require.NotEmpty(t, triggerBullets[loc][g.bullet], "bullet %s missing for %s", g.bullet, loc)
		}
	}
}
