package pricewatch

import (
	"time"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

// Verdict classifies our price against the competitor snapshot.
type Verdict string

const (
	VerdictBestPrice          Verdict = "best_price"
	VerdictPriceMatchEligible Verdict = "price_match_eligible"
	VerdictAboveMarket        Verdict = "above_market"
)

// Competitor prices within this share of the cheapest offer still qualify
// for a price match.
const matchThresholdPercent = 5

// CompetitorPrice is one offer observed at a competitor agency.
type CompetitorPrice struct {
	Provider string        `json:"provider"`
	Price    pricing.Money `json:"price"`
}

// Snapshot holds the competitor prices fetched for one category.
type Snapshot struct {
	Category  pricing.Category  `json:"category"`
	Prices    []CompetitorPrice `json:"prices"`
	FetchedAt time.Time         `json:"fetchedAt"`
}

// Comparison is the result of ranking our price against a snapshot.
type Comparison struct {
	Category         pricing.Category  `json:"category"`
	OurPrice         pricing.Money     `json:"ourPrice"`
	Verdict          Verdict           `json:"verdict"`
	CheapestProvider string            `json:"cheapestProvider,omitempty"`
	CheapestPrice    pricing.Money     `json:"cheapestPrice,omitempty"`
	Difference       pricing.Money     `json:"difference,omitempty"`
	Competitors      []CompetitorPrice `json:"competitors"`
	FetchedAt        time.Time         `json:"fetchedAt"`
}

// Compare ranks our price against the snapshot. With no competitor data the
// verdict is best_price, since nobody undercuts us.
func Compare(ourPrice pricing.Money, snap Snapshot) Comparison {
	cmp := Comparison{
		Category:    snap.Category,
		OurPrice:    ourPrice,
		Verdict:     VerdictBestPrice,
		Competitors: snap.Prices,
		FetchedAt:   snap.FetchedAt,
	}
	if len(snap.Prices) == 0 {
		return cmp
	}

	cheapest := snap.Prices[0]
	for _, p := range snap.Prices[1:] {
		if p.Price < cheapest.Price {
			cheapest = p
		}
	}
	cmp.CheapestProvider = cheapest.Provider
	cmp.CheapestPrice = cheapest.Price

	switch {
	case ourPrice <= cheapest.Price:
		cmp.Verdict = VerdictBestPrice
	case ourPrice <= cheapest.Price+(cheapest.Price*matchThresholdPercent+50)/100:
		cmp.Verdict = VerdictPriceMatchEligible
	default:
		cmp.Verdict = VerdictAboveMarket
		cmp.Difference = ourPrice - cheapest.Price
	}
	return cmp
}
