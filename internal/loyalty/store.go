package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store abstracts the loyalty mile ledger.
type Store interface {
	GetMiles(ctx context.Context, userID uuid.UUID) (int64, error)
	AddMiles(ctx context.Context, userID uuid.UUID, delta int64) (int64, error)
}

// PGStore persists loyalty miles in Postgres.
type PGStore struct {
	Pool *pgxpool.Pool
}

// GetMiles returns the cumulative balance for a user, zero when unknown.
func (s *PGStore) GetMiles(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `SELECT miles FROM user_miles WHERE user_id = $1`
	var miles int64
	err := s.Pool.QueryRow(ctx, query, userID).Scan(&miles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("select miles: %w", err)
	}
	return miles, nil
}

// AddMiles credits miles to a user and returns the new balance.
func (s *PGStore) AddMiles(ctx context.Context, userID uuid.UUID, delta int64) (int64, error) {
	const query = `
		INSERT INTO user_miles (user_id, miles)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET miles = user_miles.miles + EXCLUDED.miles, updated_at = now()
		RETURNING miles`
	var miles int64
	if err := s.Pool.QueryRow(ctx, query, userID, delta).Scan(&miles); err != nil {
		return 0, fmt.Errorf("upsert miles: %w", err)
	}
	return miles, nil
}
