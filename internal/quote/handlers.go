package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tatilgo/backend-travel/internal/common"
	"github.com/tatilgo/backend-travel/internal/i18n"
	"github.com/tatilgo/backend-travel/internal/pricing"
)

// Handler wires the quote service to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
	Currency string
}

type itemPayload struct {
	Category  string `json:"category" validate:"required,oneof=hotel car flight tour transfer"`
	Name      string `json:"name"`
	BasePrice int64  `json:"basePrice" validate:"min=0"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type quotePayload struct {
	Items       []itemPayload `json:"items" validate:"dive"`
	BookingDate *time.Time    `json:"bookingDate"`
	TravelDate  *time.Time    `json:"travelDate"`
	Nights      int           `json:"nights" validate:"omitempty,min=0"`
	Location    string        `json:"location"`
	UserMiles   *int64        `json:"userMiles" validate:"omitempty,min=0"`
	UserID      string        `json:"userId" validate:"omitempty,uuid"`
}

type discountView struct {
	Percent    int    `json:"percent"`
	Amount     int64  `json:"amount"`
	AmountText string `json:"amountText"`
	Reason     string `json:"reason"`
	Badge      string `json:"badge"`
}

type quoteView struct {
	Items              []pricing.Item `json:"items"`
	Subtotal           int64          `json:"subtotal"`
	SubtotalText       string         `json:"subtotalText"`
	Discounts          []discountView `json:"discounts"`
	TotalDiscount      int64          `json:"totalDiscount"`
	FinalTotal         int64          `json:"finalTotal"`
	FinalTotalText     string         `json:"finalTotalText"`
	SavingsPercent     int            `json:"savingsPercent"`
	LoyaltyMilesEarned int64          `json:"loyaltyMilesEarned"`
	Currency           string         `json:"currency"`
}

// Quote computes bundle pricing for the posted cart without persisting it.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	items, pctx, userID, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	q := h.Svc.Price(r.Context(), items, pctx, userID)
	common.JSON(w, http.StatusOK, map[string]any{"data": h.view(q)})
}

// Create computes bundle pricing and stores the quote snapshot.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	items, pctx, userID, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	stored, err := h.Svc.CreateQuote(r.Context(), items, pctx, userID)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to store quote", nil)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"data": map[string]any{
			"quoteId":   stored.ID.String(),
			"createdAt": stored.CreatedAt,
			"quote":     h.view(stored.Quote),
		},
	})
}

// Get returns a stored quote by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.loadStored(w, r)
	if !ok {
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"quoteId":   stored.ID.String(),
			"createdAt": stored.CreatedAt,
			"quote":     h.view(stored.Quote),
		},
	})
}

// PDF renders a stored quote as a downloadable PDF voucher.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.loadStored(w, r)
	if !ok {
		return
	}
	data, err := RenderPDF(stored)
	if err != nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to render pdf", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=quote-%s.pdf", stored.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Recommendation suggests the next bundle tier for the given category list.
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("categories"))
	var categories []pricing.Category
	if raw != "" {
		for _, part := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			cat, ok := pricing.ParseCategory(trimmed)
			if !ok {
				common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unknown category: "+trimmed, nil)
				return
			}
			categories = append(categories, cat)
		}
	}
	rec := pricing.Recommend(categories)
	if rec == nil {
		common.JSON(w, http.StatusOK, map[string]any{"data": nil})
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"percent": rec.Percent,
			"message": i18n.RecommendationMessage(rec),
		},
	})
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) ([]pricing.Item, pricing.Context, *uuid.UUID, bool) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return nil, pricing.Context{}, nil, false
	}
	var payload quotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json payload", nil)
		return nil, pricing.Context{}, nil, false
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid quote request", validationDetails(err))
			return nil, pricing.Context{}, nil, false
		}
	}

	items := make([]pricing.Item, 0, len(payload.Items))
	for _, it := range payload.Items {
		category, _ := pricing.ParseCategory(it.Category)
		items = append(items, pricing.Item{
			Category:  category,
			Name:      it.Name,
			BasePrice: it.BasePrice,
			Quantity:  it.Quantity,
		})
	}

	pctx := pricing.Context{
		Nights:   payload.Nights,
		Location: strings.TrimSpace(payload.Location),
	}
	if payload.BookingDate != nil {
		pctx.BookingDate = *payload.BookingDate
	}
	if payload.TravelDate != nil {
		pctx.TravelDate = *payload.TravelDate
	}
	if payload.UserMiles != nil {
		pctx.UserMiles = *payload.UserMiles
	}

	var userID *uuid.UUID
	if payload.UserID != "" {
		parsed, err := uuid.Parse(payload.UserID)
		if err != nil {
			common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid user id", nil)
			return nil, pricing.Context{}, nil, false
		}
		userID = &parsed
	}
	return items, pctx, userID, true
}

func (h *Handler) loadStored(w http.ResponseWriter, r *http.Request) (StoredQuote, bool) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return StoredQuote{}, false
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid quote id", nil)
		return StoredQuote{}, false
	}
	stored, err := h.Svc.GetQuote(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "quote not found", nil)
			return StoredQuote{}, false
		}
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to load quote", nil)
		return StoredQuote{}, false
	}
	return stored, true
}

func (h *Handler) view(q pricing.Quote) quoteView {
	discounts := make([]discountView, 0, len(q.Discounts))
	for _, d := range q.Discounts {
		discounts = append(discounts, discountView{
			Percent:    d.Percent,
			Amount:     d.Amount,
			AmountText: pricing.FormatCurrency(d.Amount),
			Reason:     i18n.DiscountReason(d),
			Badge:      i18n.DiscountBadge(d),
		})
	}
	currency := h.Currency
	if currency == "" {
		currency = "TRY"
	}
	return quoteView{
		Items:              q.Items,
		Subtotal:           q.Subtotal,
		SubtotalText:       pricing.FormatCurrency(q.Subtotal),
		Discounts:          discounts,
		TotalDiscount:      q.TotalDiscount,
		FinalTotal:         q.FinalTotal,
		FinalTotalText:     pricing.FormatCurrency(q.FinalTotal),
		SavingsPercent:     q.SavingsPercent,
		LoyaltyMilesEarned: q.LoyaltyMilesEarned,
		Currency:           currency,
	}
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s:%s", fe.Field(), fe.Tag()))
	}
	return fields
}
