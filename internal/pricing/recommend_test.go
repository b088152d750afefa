package pricing

import "testing"

func TestRecommendTiers(t *testing.T) {
	cases := []struct {
		count   int
		percent int
	}{
		{1, 5},
		{2, 10},
		{3, 15},
		{4, 20},
	}
	for _, tc := range cases {
		cats := make([]Category, tc.count)
		for i := range cats {
			cats[i] = CategoryHotel
		}
		rec := Recommend(cats)
		if rec == nil {
			t.Fatalf("count=%d: expected recommendation", tc.count)
		}
		if rec.Percent != tc.percent {
			t.Fatalf("count=%d: percent=%d, want %d", tc.count, rec.Percent, tc.percent)
		}
		if rec.MessageKey != MessageBundleNext {
			t.Fatalf("count=%d: unexpected message key %q", tc.count, rec.MessageKey)
		}
	}
}

func TestRecommendDisappears(t *testing.T) {
	if rec := Recommend(nil); rec != nil {
		t.Fatalf("empty cart should not get a recommendation, got %+v", rec)
	}
	full := []Category{CategoryHotel, CategoryCar, CategoryFlight, CategoryTour, CategoryTransfer}
	if rec := Recommend(full); rec != nil {
		t.Fatalf("full bundle should not get a recommendation, got %+v", rec)
	}
	if rec := Recommend(append(full, CategoryHotel)); rec != nil {
		t.Fatalf("oversized list should not get a recommendation, got %+v", rec)
	}
}
