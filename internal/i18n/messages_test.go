package i18n

import (
	"strings"
	"testing"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

func TestDiscountReasonCoversAllKeys(t *testing.T) {
	keys := []string{
		pricing.ReasonBundle,
		pricing.ReasonEarlyBooking,
		pricing.ReasonLongStay,
		pricing.ReasonLowSeason,
		pricing.ReasonMidSeason,
		pricing.ReasonLoyalty,
	}
	for _, key := range keys {
		text := DiscountReason(pricing.Discount{Reason: key, Detail: 3})
		if text == "" || text == key {
			t.Fatalf("key %q did not resolve, got %q", key, text)
		}
	}
}

func TestDiscountBadgeCoversAllKeys(t *testing.T) {
	keys := []string{
		pricing.BadgeBundle,
		pricing.BadgeEarlyBooking,
		pricing.BadgeLongStay,
		pricing.BadgeSeason,
		pricing.BadgeLoyalty,
	}
	for _, key := range keys {
		text := DiscountBadge(pricing.Discount{Badge: key})
		if text == "" || text == key {
			t.Fatalf("key %q did not resolve, got %q", key, text)
		}
	}
}

func TestRecommendationMessageNamesPercent(t *testing.T) {
	rec := pricing.Recommend([]pricing.Category{pricing.CategoryHotel})
	msg := RecommendationMessage(rec)
	if !strings.Contains(msg, "%5") {
		t.Fatalf("expected message to reference %%5, got %q", msg)
	}
	if RecommendationMessage(nil) != "" {
		t.Fatal("nil recommendation should render empty")
	}
}

func TestUnknownKeysFallBack(t *testing.T) {
	d := pricing.Discount{Reason: "unknown.key", Badge: "unknown.badge"}
	if DiscountReason(d) != "unknown.key" {
		t.Fatalf("unexpected fallback %q", DiscountReason(d))
	}
	if DiscountBadge(d) != "unknown.badge" {
		t.Fatalf("unexpected fallback %q", DiscountBadge(d))
	}
}
