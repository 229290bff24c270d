package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"detailbook/internal/api"
	"detailbook/internal/catalog"
)

type Handlers struct {
	DB       *pgxpool.Pool
	Bookings *Repository
}

func (h Handlers) Health(w http.ResponseWriter, r *http.Request) {
	var dbTime time.Time
	if err := h.DB.QueryRow(r.Context(), `SELECT now()`).Scan(&dbTime); err != nil {
		log.Printf("health: db ping failed err=%v", err)
		api.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
			"ok":    false,
			"error": "database unreachable",
		})
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"message": "service healthy",
		"db_time": dbTime,
	})
}

type SubmitRequest struct {
	Name    string           `json:"name"`
	Phone   string           `json:"phone"`
	Service ServiceSelection `json:"service"`
	Date    string           `json:"date"`
	Time    string           `json:"time"`
	Note    string           `json:"note"`
}

func (h Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if req.Name == "" || req.Phone == "" || req.Service.Empty() || req.Date == "" || req.Time == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "all fields are required")
		return
	}
	if !ValidPhone(req.Phone) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "phone must contain exactly 10 digits")
		return
	}
	for _, s := range req.Service.Values {
		if !catalog.Contains(s) {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED",
				fmt.Sprintf("invalid service: %s", s))
			return
		}
	}
	if !ValidBookingDate(req.Date) {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED",
			"date must be a valid YYYY-MM-DD within one year from today")
		return
	}

	quote := catalog.Quote(req.Service.Values)
	nb := NewBooking{
		Name:        strings.TrimSpace(req.Name),
		Phone:       CleanPhone(req.Phone),
		Service:     JoinServices(req.Service.Values),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		Note:        strings.TrimSpace(req.Note),
		QuotedPrice: quote,
	}

	id, err := h.Bookings.Create(r.Context(), nb)
	if err != nil {
		log.Printf("booking: create failed err=%v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"message":     "booking received",
		"bookingId":   id,
		"quotedPrice": quote.StringFixed(2),
	})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid booking id")
		return
	}

	b, err := h.Bookings.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		log.Printf("booking: get failed id=%d err=%v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"booking": b})
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bookings.ListAll(r.Context())
	if err != nil {
		log.Printf("booking: list failed err=%v", err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []Booking{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"bookings": items})
}

type AcceptRequest struct {
	ConfirmedDate *string `json:"confirmed_date"`
	ConfirmedTime *string `json:"confirmed_time"`
}

func (h Handlers) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid booking id")
		return
	}

	var req AcceptRequest
	if err := decodeOptionalBody(r.Body, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	b, err := h.Bookings.Accept(r.Context(), id, req.ConfirmedDate, req.ConfirmedTime)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		log.Printf("booking: accept failed id=%d err=%v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "booking": b})
}

type RejectRequest struct {
	SuggestedDate *string `json:"suggested_date"`
	SuggestedTime *string `json:"suggested_time"`
}

func (h Handlers) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid booking id")
		return
	}

	var req RejectRequest
	if err := decodeOptionalBody(r.Body, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	b, err := h.Bookings.Reject(r.Context(), id, req.SuggestedDate, req.SuggestedTime)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		log.Printf("booking: reject failed id=%d err=%v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "booking": b})
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid booking id")
		return
	}

	deleted, err := h.Bookings.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		log.Printf("booking: delete failed id=%d err=%v", id, err)
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "deletedId": deleted})
}

func bookingID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeOptionalBody tolerates an absent body: accept/reject work without one
// when the admin has nothing to confirm or suggest.
func decodeOptionalBody(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
