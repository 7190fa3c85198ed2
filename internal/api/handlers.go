package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"dashboard/internal/conversion"
	"dashboard/internal/service"
)

// Converter converts an amount with the shared USD rate.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal) (conversion.Conversion, error)
}

// RateItem is one currency in the rates response
type RateItem struct {
	Code  string `json:"code" example:"USD"`
	Label string `json:"label" example:"دالر"`
	Price string `json:"price" example:"71.80"`
}

// RatesResponse represents the rendered rates panel
type RatesResponse struct {
	Origin string     `json:"origin" example:"live"`
	USD    string     `json:"usd" example:"71.80"`
	Rates  []RateItem `json:"rates"`
}

// ConvertResponse represents a currency conversion result
type ConvertResponse struct {
	Amount string `json:"amount" example:"10"`
	Rate   string `json:"rate" example:"71.8"`
	Result string `json:"result" example:"718.00"`
}

// NoteRequest represents the request body for saving a note
type NoteRequest struct {
	Text string `json:"text" example:"buy bread"`
}

// NoteResponse represents a saved note
type NoteResponse struct {
	Key       string `json:"key" example:"userNote"`
	Text      string `json:"text" example:"buy bread"`
	Preview   string `json:"preview" example:"buy bread..."`
	UpdatedAt string `json:"updated_at" example:"2026-10-17T08:30:00Z"`
}

// ReadyResponse represents the readiness response
type ReadyResponse struct {
	Status string `json:"status" example:"ready"`
}

// HandleGetRates godoc
// @Summary Get exchange rates
// @Description Fetches the rates page and returns the rates panel. Falls back to static rates when the page cannot be read; the response is never an error.
// @Tags rates
// @Produce json
// @Success 200 {object} RatesResponse "Rates panel"
// @Router /api/rates [get]
func HandleGetRates(svc service.DashboardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := svc.Rates(r.Context())
		if view == nil {
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}
		writeJSON(w, http.StatusOK, ratesResponse(view))
	}
}

func ratesResponse(view *service.RatesView) RatesResponse {
	resp := RatesResponse{
		Origin: string(view.Origin),
		USD:    view.USD,
		Rates:  make([]RateItem, 0, len(view.Rows)),
	}
	for _, row := range view.Rows {
		resp.Rates = append(resp.Rates, RateItem{Code: string(row.Code), Label: row.Label, Price: row.Price})
	}
	return resp
}

// HandleConvert godoc
// @Summary Convert USD to AFN
// @Description Multiplies the amount by the last published USD rate (71 until a rate has been published), rounded to two decimals.
// @Tags rates
// @Produce json
// @Param amount query string true "Amount in USD" example(10)
// @Success 200 {object} ConvertResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/convert [get]
func HandleConvert(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amount, err := conversion.ParseAmount(r.URL.Query().Get("amount"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res, err := conv.Convert(r.Context(), amount)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}
		writeJSON(w, http.StatusOK, ConvertResponse{
			Amount: res.Amount.String(),
			Rate:   res.Rate.String(),
			Result: res.Result.StringFixed(2),
		})
	}
}

// HandleGetNote godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param key path string true "Note key" example(userNote)
// @Success 200 {object} NoteResponse "Note found"
// @Failure 400 {object} ErrorResponse "Invalid note key"
// @Failure 404 {object} ErrorResponse "No note saved under this key"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/notes/{key} [get]
func HandleGetNote(svc service.NoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		note, err := svc.Load(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			writeNoteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, noteResponse(note))
	}
}

// HandleSaveNote godoc
// @Summary Save a note
// @Description Creates or replaces the note stored under key.
// @Tags notes
// @Accept json
// @Produce json
// @Param key path string true "Note key" example(userNote)
// @Param request body NoteRequest true "Note text"
// @Success 200 {object} NoteResponse "Note saved"
// @Failure 400 {object} ErrorResponse "Invalid note key or body"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/notes/{key} [put]
func HandleSaveNote(svc service.NoteServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		note, err := svc.Save(r.Context(), chi.URLParam(r, "key"), req.Text)
		if err != nil {
			writeNoteError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, noteResponse(note))
	}
}

func writeNoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidNoteKey), errors.Is(err, service.ErrNoteTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "No note saved")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

func noteResponse(n *service.NoteView) NoteResponse {
	return NoteResponse{Key: n.Key, Text: n.Body, Preview: n.Preview, UpdatedAt: n.UpdatedAt}
}

// HandleHealthz godoc
// @Summary Health check (liveness)
// @Description Always returns 200 OK if the service is running. Used for liveness checks.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}
}

// HandleReadyz godoc
// @Summary Readiness check
// @Description Checks connectivity to Postgres and, when configured, Redis. Returns 200 only when all dependencies are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "All dependencies ready"
// @Failure 503 {object} ErrorResponse "At least one dependency unavailable"
// @Router /readyz [get]
func HandleReadyz(db *sql.DB, cache *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "DB not ready")
			return
		}

		if cache != nil {
			if err := cache.Ping(r.Context()).Err(); err != nil {
				writeError(w, http.StatusServiceUnavailable, "Cache not ready")
				return
			}
		}

		writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready"})
	}
}
