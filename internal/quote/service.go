package quote

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tatilgo/backend-travel/internal/obs"
	"github.com/tatilgo/backend-travel/internal/pricing"
)

// MilesSource resolves and credits a user's loyalty mile balance.
type MilesSource interface {
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	Earn(ctx context.Context, userID uuid.UUID, miles int64) (int64, error)
}

// Service computes and persists bundle pricing quotes.
type Service struct {
	Store Store
	Cache *Cache
	Miles MilesSource
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func quoteCacheKey(id uuid.UUID) string {
	return "quote:" + id.String()
}

// Price computes a quote. When the caller identified the user but did not
// supply an explicit mile balance, the balance is resolved through the miles
// source; lookup failures just skip the loyalty rule since pricing must never
// block checkout.
func (s *Service) Price(ctx context.Context, items []pricing.Item, pctx pricing.Context, userID *uuid.UUID) pricing.Quote {
	if pctx.UserMiles == 0 && userID != nil && s != nil && s.Miles != nil {
		if miles, err := s.Miles.Balance(ctx, *userID); err == nil {
			pctx.UserMiles = miles
		}
	}
	q := pricing.Compute(items, pctx)
	obs.ObserveQuote(q.TotalDiscount, q.SavingsPercent)
	return q
}

// CreateQuote computes a quote and persists the snapshot.
func (s *Service) CreateQuote(ctx context.Context, items []pricing.Item, pctx pricing.Context, userID *uuid.UUID) (StoredQuote, error) {
	if s == nil || s.Store == nil {
		return StoredQuote{}, errors.New("quote service not configured")
	}
	stored := StoredQuote{
		ID:        uuid.New(),
		Quote:     s.Price(ctx, items, pctx, userID),
		CreatedAt: s.now(),
	}
	if err := s.Store.InsertQuote(ctx, stored); err != nil {
		return StoredQuote{}, err
	}
	_ = s.Cache.SetJSON(ctx, quoteCacheKey(stored.ID), stored)
	if userID != nil && s.Miles != nil && stored.Quote.LoyaltyMilesEarned > 0 {
		// Crediting miles is best effort; the quote already exists.
		_, _ = s.Miles.Earn(ctx, *userID, stored.Quote.LoyaltyMilesEarned)
	}
	return stored, nil
}

// GetQuote loads a stored quote, serving from the cache when possible.
func (s *Service) GetQuote(ctx context.Context, id uuid.UUID) (StoredQuote, error) {
	if s == nil || s.Store == nil {
		return StoredQuote{}, errors.New("quote service not configured")
	}
	var cached StoredQuote
	if found, err := s.Cache.GetJSON(ctx, quoteCacheKey(id), &cached); err == nil && found {
		return cached, nil
	}
	stored, err := s.Store.GetQuote(ctx, id)
	if err != nil {
		return StoredQuote{}, err
	}
	_ = s.Cache.SetJSON(ctx, quoteCacheKey(id), stored)
	return stored, nil
}
