package pricing

// Money represents a monetary value stored in whole lira.
type Money = int64

// Category identifies the service vertical a cart line belongs to.
type Category string

// Service categories sold by the platform.
const (
	CategoryHotel    Category = "hotel"
	CategoryCar      Category = "car"
	CategoryFlight   Category = "flight"
	CategoryTour     Category = "tour"
	CategoryTransfer Category = "transfer"
)

// Categories lists every known category in canonical order.
var Categories = []Category{CategoryHotel, CategoryCar, CategoryFlight, CategoryTour, CategoryTransfer}

// ParseCategory maps a raw string onto a known category.
func ParseCategory(value string) (Category, bool) {
	switch Category(value) {
	case CategoryHotel, CategoryCar, CategoryFlight, CategoryTour, CategoryTransfer:
		return Category(value), true
	}
	return "", false
}

// Item describes one cart line used for bundle pricing. BasePrice is the
// per-unit price; Quantity covers nights, days or instances and defaults to 1.
type Item struct {
	Category  Category `json:"category"`
	Name      string   `json:"name"`
	BasePrice Money    `json:"basePrice"`
	Quantity  int      `json:"quantity,omitempty"`
}

// LineTotal returns the effective total for the line.
func (it Item) LineTotal() Money {
	qty := it.Quantity
	if qty <= 0 {
		qty = 1
	}
	return Money(qty) * it.BasePrice
}

// Message keys attached to discounts and recommendations. The texts themselves
// live in the i18n catalog so the engine stays free of marketing copy.
const (
	ReasonBundle       = "pricing.bundle.reason"
	BadgeBundle        = "pricing.bundle.badge"
	ReasonEarlyBooking = "pricing.early_booking.reason"
	BadgeEarlyBooking  = "pricing.early_booking.badge"
	ReasonLongStay     = "pricing.long_stay.reason"
	BadgeLongStay      = "pricing.long_stay.badge"
	ReasonLowSeason    = "pricing.low_season.reason"
	ReasonMidSeason    = "pricing.mid_season.reason"
	BadgeSeason        = "pricing.season.badge"
	ReasonLoyalty      = "pricing.loyalty.reason"
	BadgeLoyalty       = "pricing.loyalty.badge"
	MessageBundleNext  = "pricing.bundle.next_tier"
)

// Discount is one applied promotional reduction. Reason and Badge carry
// message keys; Detail holds the rule figure the reason template renders
// (distinct category count, lead days, nights, or the loyalty tier floor).
type Discount struct {
	Percent int    `json:"percent"`
	Amount  Money  `json:"amount"`
	Reason  string `json:"reason"`
	Badge   string `json:"badge"`
	Detail  int    `json:"detail,omitempty"`
}

// Quote is the final bundle pricing result. Discounts keep rule evaluation
// order since callers render them top to bottom.
type Quote struct {
	Items              []Item     `json:"items"`
	Subtotal           Money      `json:"subtotal"`
	Discounts          []Discount `json:"discounts"`
	TotalDiscount      Money      `json:"totalDiscount"`
	FinalTotal         Money      `json:"finalTotal"`
	SavingsPercent     int        `json:"savingsPercent"`
	LoyaltyMilesEarned int64      `json:"loyaltyMilesEarned"`
}
