package pricing

import (
	"testing"
	"time"
)

// Regression fixture for the free-text destination classifier; these inputs
// come from real search traffic shapes and must keep matching.
func TestClassifyDestination(t *testing.T) {
	cases := []struct {
		location string
		profile  string
	}{
		{"Uludağ", "ski"},
		{"Uludağ Kayak Merkezi", "ski"},
		{"BURSA ULUDAĞ", "ski"},
		{"Erciyes", "ski"},
		{"Palandöken Otelleri", "ski"},
		{"Kartepe", "ski"},
		{"Antalya", "default"},
		{"Bodrum", "default"},
		{"İstanbul", "default"},
		{"", "default"},
	}
	for _, tc := range cases {
		if got := ClassifyDestination(tc.location); got.Name != tc.profile {
			t.Fatalf("%q classified as %s, want %s", tc.location, got.Name, tc.profile)
		}
	}
}

func TestSeasonRuleDefaultProfile(t *testing.T) {
	cases := []struct {
		month   time.Month
		percent int
		applies bool
	}{
		{time.January, 15, true},
		{time.March, 15, true},
		{time.April, 10, true},
		{time.May, 10, true},
		{time.June, 0, false},
		{time.July, 0, false},
		{time.August, 0, false},
		{time.September, 10, true},
		{time.October, 10, true},
		{time.November, 15, true},
		{time.December, 15, true},
	}
	for _, tc := range cases {
		d, ok := seasonRule(tc.month, defaultProfile)
		if ok != tc.applies {
			t.Fatalf("month=%s: applies=%v, want %v", tc.month, ok, tc.applies)
		}
		if ok && d.Percent != tc.percent {
			t.Fatalf("month=%s: percent=%d, want %d", tc.month, d.Percent, tc.percent)
		}
	}
}

func TestSeasonRuleSkiProfile(t *testing.T) {
	// Winter is high season on the slopes: no discount December through March.
	for _, m := range []time.Month{time.December, time.January, time.February, time.March} {
		if _, ok := seasonRule(m, skiProfile); ok {
			t.Fatalf("month=%s: expected no ski discount", m)
		}
	}
	for _, m := range []time.Month{time.April, time.November} {
		d, ok := seasonRule(m, skiProfile)
		if !ok || d.Percent != 10 {
			t.Fatalf("month=%s: expected 10%% mid season, got %+v ok=%v", m, d, ok)
		}
	}
	for _, m := range []time.Month{time.May, time.June, time.July, time.August, time.September, time.October} {
		d, ok := seasonRule(m, skiProfile)
		if !ok || d.Percent != 15 {
			t.Fatalf("month=%s: expected 15%% low season, got %+v ok=%v", m, d, ok)
		}
	}
}

func TestSeasonNeedsLocationAndDate(t *testing.T) {
	items := []Item{{Category: CategoryTour, BasePrice: 500}}

	q := Compute(items, Context{TravelDate: date(2026, time.January, 10)})
	if len(q.Discounts) != 0 {
		t.Fatalf("season applied without location: %+v", q.Discounts)
	}

	q = Compute(items, Context{Location: "Antalya"})
	if len(q.Discounts) != 0 {
		t.Fatalf("season applied without travel date: %+v", q.Discounts)
	}
}
