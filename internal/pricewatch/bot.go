package pricewatch

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tatilgo/backend-travel/internal/obs"
	"github.com/tatilgo/backend-travel/internal/pricing"
)

// Bot periodically refreshes competitor snapshots for every category. The
// owner starts it once and stops it during shutdown; Stop blocks until the
// loop has drained.
type Bot struct {
	Provider Provider
	Store    *Store
	Interval time.Duration
	Log      zerolog.Logger
	Now      func() time.Time

	stop chan struct{}
	done chan struct{}
}

// NewBot constructs a stopped bot.
func NewBot(provider Provider, store *Store, interval time.Duration, log zerolog.Logger) *Bot {
	return &Bot{
		Provider: provider,
		Store:    store,
		Interval: interval,
		Log:      log,
	}
}

// Start refreshes once immediately, then keeps refreshing on the configured
// interval until Stop is called or ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	if b.stop != nil {
		return
	}
	b.stop = make(chan struct{})
	b.done = make(chan struct{})

	interval := b.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	go func() {
		defer close(b.done)
		b.RefreshOnce(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.stop:
				return
			case <-ticker.C:
				b.RefreshOnce(ctx)
			}
		}
	}()
}

// Stop signals the loop and waits for it to finish. Safe on a never-started bot.
func (b *Bot) Stop() {
	if b.stop == nil {
		return
	}
	close(b.stop)
	<-b.done
	b.stop = nil
	b.done = nil
}

// RefreshOnce fetches and stores a snapshot for every category.
func (b *Bot) RefreshOnce(ctx context.Context) {
	for _, category := range pricing.Categories {
		prices, err := b.Provider.Fetch(ctx, category)
		if err != nil {
			recordFetch(b.Provider.Name(), "error")
			b.Log.Error().Err(err).Str("category", string(category)).Msg("fetch competitor prices")
			continue
		}
		snap := Snapshot{
			Category:  category,
			Prices:    prices,
			FetchedAt: b.now(),
		}
		if err := b.Store.Save(ctx, snap); err != nil {
			recordFetch(b.Provider.Name(), "error")
			b.Log.Error().Err(err).Str("category", string(category)).Msg("store competitor snapshot")
			continue
		}
		recordFetch(b.Provider.Name(), "ok")
		b.Log.Debug().
			Str("category", string(category)).
			Int("offers", len(prices)).
			Msg("competitor snapshot refreshed")
	}
}

func (b *Bot) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now().UTC()
}

func recordFetch(provider, result string) {
	if obs.PriceWatchFetchTotal == nil {
		return
	}
	obs.PriceWatchFetchTotal.WithLabelValues(provider, result).Inc()
}
