package pricewatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tatilgo/backend-travel/internal/pricing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client)
}

func TestRefreshOnceStoresEveryCategory(t *testing.T) {
	store := newTestStore(t)
	fetchedAt := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)
	bot := NewBot(StaticProvider{}, store, time.Minute, zerolog.Nop())
	bot.Now = func() time.Time { return fetchedAt }

	bot.RefreshOnce(context.Background())

	for _, category := range pricing.Categories {
		snap, err := store.Get(context.Background(), category)
		require.NoError(t, err, "category %s", category)
		require.Equal(t, category, snap.Category)
		require.NotEmpty(t, snap.Prices)
		require.True(t, snap.FetchedAt.Equal(fetchedAt))
	}
}

func TestStoreGetMissingSnapshot(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Get(context.Background(), pricing.CategoryTour)
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestBotStartStop(t *testing.T) {
	store := newTestStore(t)
	bot := NewBot(StaticProvider{}, store, time.Hour, zerolog.Nop())

	bot.Start(context.Background())
	bot.Stop()
	// Stop on an already stopped bot is a no-op.
	bot.Stop()

	// The initial refresh ran before Stop returned the loop.
	_, err := store.Get(context.Background(), pricing.CategoryHotel)
	require.NoError(t, err)
}

func TestComparisonEndpoint(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), Snapshot{
		Category: pricing.CategoryHotel,
		Prices: []CompetitorPrice{
			{Provider: "GezginFirsat", Price: 1000},
			{Provider: "TatilRadar", Price: 1080},
		},
		FetchedAt: time.Now().UTC(),
	}))
	handler := &Handler{Store: store}

	do := func(category, price string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/comparisons/"+category+"?price="+price, nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("category", category)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		handler.Get(rec, req)
		return rec
	}

	rec := do("hotel", "1020")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data Comparison `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, VerdictPriceMatchEligible, resp.Data.Verdict)
	require.Equal(t, "GezginFirsat", resp.Data.CheapestProvider)

	require.Equal(t, http.StatusNotFound, do("tour", "100").Code)
	require.Equal(t, http.StatusBadRequest, do("cruise", "100").Code)
	require.Equal(t, http.StatusBadRequest, do("hotel", "abc").Code)
	require.Equal(t, http.StatusBadRequest, do("hotel", "-5").Code)
}
