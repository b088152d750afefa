package pricewatch

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tatilgo/backend-travel/internal/common"
	"github.com/tatilgo/backend-travel/internal/pricing"
)

// Handler exposes competitor comparisons over HTTP.
type Handler struct {
	Store *Store
}

// Get compares the caller's price against the stored competitor snapshot for
// a category.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "price watch not configured", nil)
		return
	}
	category, ok := pricing.ParseCategory(chi.URLParam(r, "category"))
	if !ok {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown category", nil)
		return
	}
	raw := r.URL.Query().Get("price")
	price, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || price < 0 {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "price must be a non-negative integer", nil)
		return
	}

	snap, err := h.Store.Get(r.Context(), category)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "no competitor data for category", nil)
			return
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to load competitor data", nil)
		return
	}

	common.JSON(w, http.StatusOK, map[string]any{"data": Compare(pricing.Money(price), snap)})
}
