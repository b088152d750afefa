// Package i18n resolves the message keys produced by the pricing engine into
// customer-facing Turkish copy. Keeping the catalog here means the engine
// never carries marketing text.
package i18n

import (
	"fmt"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

// Templates keyed by pricing message keys. Reason templates take the
// discount's Detail figure as their single argument.
var reasons = map[string]string{
	pricing.ReasonBundle:       "%d farklı hizmeti birlikte aldınız",
	pricing.ReasonEarlyBooking: "%d gün önceden rezervasyon yaptınız",
	pricing.ReasonLongStay:     "%d gece uzun konaklama",
	pricing.ReasonLowSeason:    "Düşük sezon fırsatı",
	pricing.ReasonMidSeason:    "Ara sezon fırsatı",
	pricing.ReasonLoyalty:      "%d+ mil sadakat seviyesi",
}

var badges = map[string]string{
	pricing.BadgeBundle:       "🎁 Paket İndirimi",
	pricing.BadgeEarlyBooking: "🐦 Erken Rezervasyon",
	pricing.BadgeLongStay:     "🏨 Uzun Konaklama",
	pricing.BadgeSeason:       "🍂 Sezon İndirimi",
	pricing.BadgeLoyalty:      "⭐ Sadık Üye",
}

const recommendationTemplate = "Sepetinize farklı bir kategoriden bir hizmet daha ekleyin, %%%d indirim kazanın!"

// DiscountReason renders the human readable justification for a discount.
func DiscountReason(d pricing.Discount) string {
	tpl, ok := reasons[d.Reason]
	if !ok {
		return d.Reason
	}
	switch d.Reason {
	case pricing.ReasonLowSeason, pricing.ReasonMidSeason:
		return tpl
	}
	return fmt.Sprintf(tpl, d.Detail)
}

// DiscountBadge renders the short marketing label for a discount.
func DiscountBadge(d pricing.Discount) string {
	if label, ok := badges[d.Badge]; ok {
		return label
	}
	return d.Badge
}

// RecommendationMessage renders the next-tier upsell message.
func RecommendationMessage(rec *pricing.Recommendation) string {
	if rec == nil {
		return ""
	}
	return fmt.Sprintf(recommendationTemplate, rec.Percent)
}
