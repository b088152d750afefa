package pricing

import "math"

// Compute prices a bundle cart. Rules run in a fixed order (bundle size,
// early booking, long stay, season, loyalty) and the resulting discount list
// keeps that order. Missing context fields skip their rule; nothing here ever
// fails, an unpriceable input just degrades to a zero quote.
func Compute(items []Item, ctx Context) Quote {
	var subtotal Money
	for _, it := range items {
		subtotal += it.LineTotal()
	}

	discounts := make([]Discount, 0, 5)

	if d, ok := bundleRule(distinctCategories(items)); ok {
		d.Amount = percentOf(subtotal, d.Percent)
		discounts = append(discounts, d)
	}
	if ctx.hasDates() {
		if d, ok := earlyBookingRule(ctx.LeadDays()); ok {
			d.Amount = percentOf(subtotal, d.Percent)
			discounts = append(discounts, d)
		}
	}
	if ctx.Nights > 0 {
		if hotel, found := firstHotelLine(items); found {
			if d, ok := longStayRule(ctx.Nights); ok {
				// Long stay discounts only the hotel portion of the cart.
				d.Amount = percentOf(hotel.LineTotal(), d.Percent)
				discounts = append(discounts, d)
			}
		}
	}
	if ctx.hasSeasonInputs() {
		if d, ok := seasonRule(ctx.TravelDate.Month(), ClassifyDestination(ctx.Location)); ok {
			d.Amount = percentOf(subtotal, d.Percent)
			discounts = append(discounts, d)
		}
	}
	if ctx.UserMiles > 0 {
		if d, ok := loyaltyRule(ctx.UserMiles); ok {
			d.Amount = percentOf(subtotal, d.Percent)
			discounts = append(discounts, d)
		}
	}

	var totalDiscount Money
	for _, d := range discounts {
		totalDiscount += d.Amount
	}
	// Individual rules stack without a cap; only the final total is floored.
	finalTotal := subtotal - totalDiscount
	if finalTotal < 0 {
		finalTotal = 0
	}
	savings := 0
	if subtotal > 0 {
		savings = int(math.Round(float64(totalDiscount) / float64(subtotal) * 100))
	}

	return Quote{
		Items:              items,
		Subtotal:           subtotal,
		Discounts:          discounts,
		TotalDiscount:      totalDiscount,
		FinalTotal:         finalTotal,
		SavingsPercent:     savings,
		LoyaltyMilesEarned: finalTotal,
	}
}

// percentOf applies a whole percentage to a base amount, rounding half up.
func percentOf(base Money, percent int) Money {
	return (base*Money(percent) + 50) / 100
}
