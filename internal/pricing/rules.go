package pricing

// Each rule inspects its inputs and reports whether a discount applies.
// Rules never compute amounts; Compute multiplies the percent against the
// rule's base afterwards.

func bundleRule(distinct int) (Discount, bool) {
	var pct int
	switch {
	case distinct >= 5:
		pct = 20
	case distinct == 4:
		pct = 15
	case distinct == 3:
		pct = 10
	case distinct == 2:
		pct = 5
	default:
		return Discount{}, false
	}
	return Discount{Percent: pct, Reason: ReasonBundle, Badge: BadgeBundle, Detail: distinct}, true
}

func earlyBookingRule(leadDays int) (Discount, bool) {
	var pct int
	switch {
	case leadDays >= 90:
		pct = 15
	case leadDays >= 60:
		pct = 10
	case leadDays >= 30:
		pct = 5
	default:
		return Discount{}, false
	}
	return Discount{Percent: pct, Reason: ReasonEarlyBooking, Badge: BadgeEarlyBooking, Detail: leadDays}, true
}

func longStayRule(nights int) (Discount, bool) {
	var pct int
	switch {
	case nights >= 30:
		pct = 20
	case nights >= 14:
		pct = 15
	case nights >= 7:
		pct = 10
	default:
		return Discount{}, false
	}
	return Discount{Percent: pct, Reason: ReasonLongStay, Badge: BadgeLongStay, Detail: nights}, true
}

func loyaltyRule(miles int64) (Discount, bool) {
	var (
		pct  int
		tier int
	)
	switch {
	case miles >= 10000:
		pct, tier = 10, 10000
	case miles >= 5000:
		pct, tier = 5, 5000
	case miles >= 1000:
		pct, tier = 2, 1000
	default:
		return Discount{}, false
	}
	return Discount{Percent: pct, Reason: ReasonLoyalty, Badge: BadgeLoyalty, Detail: tier}, true
}

func distinctCategories(items []Item) int {
	seen := make(map[Category]struct{}, len(items))
	for _, it := range items {
		seen[it.Category] = struct{}{}
	}
	return len(seen)
}

func firstHotelLine(items []Item) (Item, bool) {
	for _, it := range items {
		if it.Category == CategoryHotel {
			return it, true
		}
	}
	return Item{}, false
}
