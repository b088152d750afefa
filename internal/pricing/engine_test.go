package pricing

import (
	"reflect"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeLongStayOnly(t *testing.T) {
	items := []Item{{Category: CategoryHotel, Name: "Otel", BasePrice: 1000, Quantity: 7}}
	q := Compute(items, Context{Nights: 7})

	if q.Subtotal != 7000 {
		t.Fatalf("expected subtotal 7000, got %d", q.Subtotal)
	}
	if len(q.Discounts) != 1 {
		t.Fatalf("expected a single discount, got %d", len(q.Discounts))
	}
	d := q.Discounts[0]
	if d.Percent != 10 || d.Amount != 700 || d.Reason != ReasonLongStay {
		t.Fatalf("unexpected long stay discount %+v", d)
	}
	if q.TotalDiscount != 700 || q.FinalTotal != 6300 {
		t.Fatalf("unexpected totals %d/%d", q.TotalDiscount, q.FinalTotal)
	}
	if q.SavingsPercent != 10 {
		t.Fatalf("expected savings 10%%, got %d", q.SavingsPercent)
	}
	if q.LoyaltyMilesEarned != 6300 {
		t.Fatalf("expected 6300 miles, got %d", q.LoyaltyMilesEarned)
	}
}

func TestComputeTwoCategoryBundle(t *testing.T) {
	items := []Item{
		{Category: CategoryHotel, BasePrice: 1000},
		{Category: CategoryTransfer, BasePrice: 200},
	}
	q := Compute(items, Context{})

	if q.Subtotal != 1200 {
		t.Fatalf("expected subtotal 1200, got %d", q.Subtotal)
	}
	if len(q.Discounts) != 1 || q.Discounts[0].Reason != ReasonBundle {
		t.Fatalf("expected only the bundle discount, got %+v", q.Discounts)
	}
	if q.Discounts[0].Percent != 5 || q.Discounts[0].Amount != 60 {
		t.Fatalf("unexpected bundle discount %+v", q.Discounts[0])
	}
	if q.FinalTotal != 1140 {
		t.Fatalf("expected final total 1140, got %d", q.FinalTotal)
	}
}

func TestComputeEarlyBooking(t *testing.T) {
	items := []Item{{Category: CategoryTour, BasePrice: 500}}
	ctx := Context{BookingDate: date(2026, time.January, 1), TravelDate: date(2026, time.April, 6)}
	q := Compute(items, ctx)

	if len(q.Discounts) != 1 || q.Discounts[0].Percent != 15 {
		t.Fatalf("expected 15%% early booking discount, got %+v", q.Discounts)
	}
	if q.Discounts[0].Amount != 75 || q.FinalTotal != 425 {
		t.Fatalf("unexpected totals %+v final %d", q.Discounts[0], q.FinalTotal)
	}
}

func TestComputeEmptyCart(t *testing.T) {
	q := Compute(nil, Context{})
	if q.Subtotal != 0 || len(q.Discounts) != 0 || q.TotalDiscount != 0 {
		t.Fatalf("expected zero quote, got %+v", q)
	}
	if q.FinalTotal != 0 || q.SavingsPercent != 0 || q.LoyaltyMilesEarned != 0 {
		t.Fatalf("expected zero totals, got %+v", q)
	}
}

func TestComputeDiscountOrderIsStable(t *testing.T) {
	items := []Item{
		{Category: CategoryHotel, BasePrice: 1000, Quantity: 14},
		{Category: CategoryCar, BasePrice: 300, Quantity: 3},
		{Category: CategoryTour, BasePrice: 400},
	}
	ctx := Context{
		BookingDate: date(2026, time.January, 1),
		TravelDate:  date(2026, time.July, 10),
		Nights:      14,
		Location:    "Uludağ",
		UserMiles:   12000,
	}
	q := Compute(items, ctx)

	want := []string{ReasonBundle, ReasonEarlyBooking, ReasonLongStay, ReasonLowSeason, ReasonLoyalty}
	if len(q.Discounts) != len(want) {
		t.Fatalf("expected %d discounts, got %d: %+v", len(want), len(q.Discounts), q.Discounts)
	}
	for i, d := range q.Discounts {
		if d.Reason != want[i] {
			t.Fatalf("discount %d: expected %s, got %s", i, want[i], d.Reason)
		}
	}
}

func TestComputeLongStayUsesHotelLineOnly(t *testing.T) {
	items := []Item{
		{Category: CategoryHotel, BasePrice: 1000, Quantity: 7},
		{Category: CategoryCar, BasePrice: 5000, Quantity: 2},
	}
	q := Compute(items, Context{Nights: 7})

	var longStay *Discount
	for i := range q.Discounts {
		if q.Discounts[i].Reason == ReasonLongStay {
			longStay = &q.Discounts[i]
		}
	}
	if longStay == nil {
		t.Fatalf("expected long stay discount, got %+v", q.Discounts)
	}
	// 10% of the 7000 hotel line, not of the 17000 cart subtotal.
	if longStay.Amount != 700 {
		t.Fatalf("expected 700, got %d", longStay.Amount)
	}
}

func TestComputeFinalTotalNeverNegative(t *testing.T) {
	// All five rules stack on a tiny cart; the zero floor must hold.
	items := []Item{
		{Category: CategoryHotel, BasePrice: 1, Quantity: 30},
		{Category: CategoryCar, BasePrice: 1},
		{Category: CategoryFlight, BasePrice: 1},
		{Category: CategoryTour, BasePrice: 1},
		{Category: CategoryTransfer, BasePrice: 1},
	}
	ctx := Context{
		BookingDate: date(2026, time.January, 1),
		TravelDate:  date(2026, time.July, 1),
		Nights:      30,
		Location:    "Palandöken",
		UserMiles:   20000,
	}
	q := Compute(items, ctx)
	if q.FinalTotal < 0 {
		t.Fatalf("final total went negative: %d", q.FinalTotal)
	}
}

func TestComputeSubtotalAdditivity(t *testing.T) {
	items := []Item{
		{Category: CategoryHotel, BasePrice: 950, Quantity: 3},
		{Category: CategoryCar, BasePrice: 410, Quantity: 2},
		{Category: CategoryTransfer, BasePrice: 120},
	}
	q := Compute(items, Context{})
	var want Money
	for _, it := range items {
		want += it.LineTotal()
	}
	if q.Subtotal != want {
		t.Fatalf("expected subtotal %d, got %d", want, q.Subtotal)
	}
}

func TestComputeIdempotent(t *testing.T) {
	items := []Item{
		{Category: CategoryHotel, BasePrice: 1000, Quantity: 7},
		{Category: CategoryTour, BasePrice: 350},
	}
	ctx := Context{
		BookingDate: date(2026, time.February, 1),
		TravelDate:  date(2026, time.June, 15),
		Nights:      7,
		Location:    "Antalya",
		UserMiles:   5000,
	}
	first := Compute(items, ctx)
	second := Compute(items, ctx)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs priced differently:\n%+v\n%+v", first, second)
	}
}

func TestPercentOfRoundsHalfUp(t *testing.T) {
	cases := []struct {
		base Money
		pct  int
		want Money
	}{
		{1200, 5, 60},
		{999, 5, 50},  // 49.95 rounds up
		{990, 5, 50},  // 49.5 rounds up
		{989, 5, 49},  // 49.45 rounds down
		{0, 20, 0},
	}
	for _, tc := range cases {
		if got := percentOf(tc.base, tc.pct); got != tc.want {
			t.Fatalf("percentOf(%d, %d) = %d, want %d", tc.base, tc.pct, got, tc.want)
		}
	}
}
