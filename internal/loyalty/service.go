package loyalty

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tatilgo/backend-travel/internal/obs"
)

// Service resolves loyalty mile balances with a read-through redis cache.
type Service struct {
	Store Store
	R     *redis.Client
	TTL   time.Duration
}

func cacheKey(userID uuid.UUID) string {
	return "loyalty:miles:" + userID.String()
}

func (s *Service) ttl() time.Duration {
	if s == nil || s.TTL <= 0 {
		return 5 * time.Minute
	}
	return s.TTL
}

// Balance returns the user's cumulative mile balance.
func (s *Service) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	if s == nil || s.Store == nil {
		return 0, errors.New("loyalty service not configured")
	}
	if s.R != nil {
		cached, err := s.R.Get(ctx, cacheKey(userID)).Result()
		if err == nil {
			if miles, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				recordLookup("hit")
				return miles, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("loyalty cache get: %w", err)
		}
	}
	miles, err := s.Store.GetMiles(ctx, userID)
	if err != nil {
		return 0, err
	}
	recordLookup("miss")
	if s.R != nil {
		_ = s.R.Set(ctx, cacheKey(userID), strconv.FormatInt(miles, 10), s.ttl()).Err()
	}
	return miles, nil
}

// Earn credits miles to the user and invalidates the cached balance.
func (s *Service) Earn(ctx context.Context, userID uuid.UUID, miles int64) (int64, error) {
	if s == nil || s.Store == nil {
		return 0, errors.New("loyalty service not configured")
	}
	if miles <= 0 {
		balance, err := s.Balance(ctx, userID)
		return balance, err
	}
	balance, err := s.Store.AddMiles(ctx, userID, miles)
	if err != nil {
		return 0, err
	}
	if s.R != nil {
		_ = s.R.Del(ctx, cacheKey(userID)).Err()
	}
	return balance, nil
}

func recordLookup(outcome string) {
	if obs.LoyaltyLookupTotal != nil {
		obs.LoyaltyLookupTotal.WithLabelValues(outcome).Inc()
	}
}
