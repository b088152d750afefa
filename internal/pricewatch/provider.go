package pricewatch

import (
	"context"
	"hash/fnv"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

// Provider fetches current competitor prices for one service category.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, category pricing.Category) ([]CompetitorPrice, error)
}

// StaticProvider serves a fixed competitor price book. It stands in for the
// real agency scrapers and keeps local and CI runs deterministic.
type StaticProvider struct{}

func (StaticProvider) Name() string { return "static" }

var staticAgencies = []string{"GezginFirsat", "TatilRadar", "ErkenKapan"}

var staticBase = map[pricing.Category]pricing.Money{
	pricing.CategoryHotel:    1050,
	pricing.CategoryCar:      430,
	pricing.CategoryFlight:   820,
	pricing.CategoryTour:     540,
	pricing.CategoryTransfer: 160,
}

// Fetch returns one offer per agency. The price is the category base plus a
// small stable spread derived from the agency name, so repeated fetches agree.
func (p StaticProvider) Fetch(_ context.Context, category pricing.Category) ([]CompetitorPrice, error) {
	base, ok := staticBase[category]
	if !ok {
		return nil, nil
	}
	prices := make([]CompetitorPrice, 0, len(staticAgencies))
	for _, agency := range staticAgencies {
		h := fnv.New32a()
		_, _ = h.Write([]byte(agency))
		_, _ = h.Write([]byte(category))
		spread := pricing.Money(h.Sum32()%21) - 10
		prices = append(prices, CompetitorPrice{
			Provider: agency,
			Price:    base + base*spread/100,
		})
	}
	return prices, nil
}
