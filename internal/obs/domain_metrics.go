package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesComputedTotal counts bundle pricing computations by outcome.
	QuotesComputedTotal *prometheus.CounterVec
	// QuoteDiscountAmount records the stacked discount per quote in lira.
	QuoteDiscountAmount prometheus.Histogram
	// QuoteSavingsPercent records the savings share per quote.
	QuoteSavingsPercent prometheus.Histogram
	// PriceWatchFetchTotal counts competitor price fetch outcomes.
	PriceWatchFetchTotal *prometheus.CounterVec
	// LoyaltyLookupTotal counts loyalty balance lookups by cache outcome.
	LoyaltyLookupTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuotesComputedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_computed_total",
			Help:      "Count of bundle pricing computations by result.",
		}, []string{"result"})
		QuoteDiscountAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_discount_lira",
			Help:      "Stacked discount amount per computed quote in lira.",
			Buckets:   []float64{0, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		})
		QuoteSavingsPercent = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_savings_percent",
			Help:      "Savings percentage per computed quote.",
			Buckets:   []float64{0, 5, 10, 15, 20, 30, 40, 60, 80, 100},
		})
		PriceWatchFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_watch_fetch_total",
			Help:      "Count of competitor price fetches by provider and result.",
		}, []string{"provider", "result"})
		LoyaltyLookupTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loyalty_lookup_total",
			Help:      "Count of loyalty balance lookups by cache outcome.",
		}, []string{"outcome"})

		register(reg, QuotesComputedTotal)
		register(reg, QuoteDiscountAmount)
		register(reg, QuoteSavingsPercent)
		register(reg, PriceWatchFetchTotal)
		register(reg, LoyaltyLookupTotal)
	})
}

// ObserveQuote records metrics for one computed quote. Safe to call before
// registration; it simply does nothing then.
func ObserveQuote(totalDiscount int64, savingsPercent int) {
	if QuotesComputedTotal == nil {
		return
	}
	QuotesComputedTotal.WithLabelValues("ok").Inc()
	QuoteDiscountAmount.Observe(float64(totalDiscount))
	QuoteSavingsPercent.Observe(float64(savingsPercent))
}
