package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

// ErrNotFound indicates the requested quote does not exist.
var ErrNotFound = errors.New("quote not found")

// StoredQuote is a persisted pricing snapshot.
type StoredQuote struct {
	ID        uuid.UUID     `json:"id"`
	Quote     pricing.Quote `json:"quote"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Store abstracts quote persistence.
type Store interface {
	InsertQuote(ctx context.Context, q StoredQuote) error
	GetQuote(ctx context.Context, id uuid.UUID) (StoredQuote, error)
}

// PGStore persists quotes in Postgres. The full quote is stored as JSONB;
// the aggregate columns exist for reporting queries only.
type PGStore struct {
	Pool *pgxpool.Pool
}

// InsertQuote writes a quote snapshot.
func (s *PGStore) InsertQuote(ctx context.Context, q StoredQuote) error {
	payload, err := json.Marshal(q.Quote)
	if err != nil {
		return fmt.Errorf("encode quote: %w", err)
	}
	const query = `
		INSERT INTO quotes (id, payload, subtotal, total_discount, final_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = s.Pool.Exec(ctx, query,
		q.ID, payload, q.Quote.Subtotal, q.Quote.TotalDiscount, q.Quote.FinalTotal, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetQuote loads a quote snapshot by id.
func (s *PGStore) GetQuote(ctx context.Context, id uuid.UUID) (StoredQuote, error) {
	const query = `SELECT payload, created_at FROM quotes WHERE id = $1`
	var (
		payload   []byte
		createdAt time.Time
	)
	if err := s.Pool.QueryRow(ctx, query, id).Scan(&payload, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StoredQuote{}, ErrNotFound
		}
		return StoredQuote{}, fmt.Errorf("select quote: %w", err)
	}
	var q pricing.Quote
	if err := json.Unmarshal(payload, &q); err != nil {
		return StoredQuote{}, fmt.Errorf("decode quote: %w", err)
	}
	return StoredQuote{ID: id, Quote: q, CreatedAt: createdAt}, nil
}
