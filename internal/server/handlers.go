package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"lendrock/rate-quote/internal/history"
	"lendrock/rate-quote/internal/models"
	"lendrock/rate-quote/internal/pricing"
	"lendrock/rate-quote/internal/quoteerror"
)

// quoteResponse is the JSON body for a successful quoting request,
// including the distinguishable no-qualifying-programs outcome.
type quoteResponse struct {
	Outcome   string                      `json:"outcome"`
	Message   string                      `json:"message,omitempty"`
	Result    *models.PricingResult       `json:"result"`
	Target    *models.TargetPricingOption `json:"target,omitempty"`
	PreFilter []models.Program            `json:"preFilterPrograms,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var scenario models.LoanScenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error(), Kind: "validation"})
		return
	}
	if scenario.IsDSCR() && scenario.DSCR != nil && scenario.DSCR.Ratio.IsZero() {
		scenario.DSCR.ComputeRatio()
	}
	if err := scenario.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "validation"})
		return
	}
	s.resolveLocation(r.Context(), &scenario)

	result, err := s.pricer.Price(r.Context(), &scenario)
	if err != nil {
		s.writeQuoteError(w, err)
		return
	}

	quote := pricing.Evaluate(result, &scenario)
	if s.history != nil {
		s.history.Record(&scenario, quote)
	}

	resp := quoteResponse{
		Outcome:   quote.Outcome,
		Result:    quote.Result,
		Target:    quote.Target,
		PreFilter: quote.PreFilter,
	}
	if quote.Outcome == pricing.OutcomeNoPrograms {
		resp.Message = "No qualifying programs for this scenario; adjust your scenario and try again."
	}
	writeJSON(w, http.StatusOK, resp)
}

// resolveLocation fills in city/county/state from the ZIP code when the
// caller left them empty. A failed lookup is logged and the scenario goes
// out as given; location is advisory input to the engine, not a gate.
func (s *Server) resolveLocation(ctx context.Context, scenario *models.LoanScenario) {
	if s.locator == nil || scenario.ZipCode == "" {
		return
	}
	if scenario.City != "" && scenario.State != "" {
		return
	}
	loc, err := s.locator.Lookup(ctx, scenario.ZipCode)
	if err != nil {
		log.WithError(err).WithField("zip", scenario.ZipCode).Warn("ZIP lookup failed, pricing without resolved location")
		return
	}
	if scenario.City == "" {
		scenario.City = loc.City
	}
	if scenario.County == "" {
		scenario.County = loc.County
	}
	if scenario.State == "" {
		scenario.State = loc.State
	}
}

// writeQuoteError maps the error taxonomy onto HTTP statuses: engine
// business errors are unprocessable, transport failures are bad gateway,
// anything else is internal.
func (s *Server) writeQuoteError(w http.ResponseWriter, err error) {
	var engineErr *quoteerror.EngineError
	var transportErr *quoteerror.TransportError
	var parseErr *quoteerror.ParseError
	switch {
	case errors.As(err, &engineErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: engineErr.Error(), Kind: "engine"})
	case errors.As(err, &transportErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: transportErr.Error(), Kind: "transport"})
	case errors.As(err, &parseErr):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: parseErr.Error(), Kind: "parse"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "internal"})
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, []history.Entry{})
		return
	}
	filter := history.Filter{
		Occupancy: models.Occupancy(r.URL.Query().Get("occupancy")),
		Purpose:   models.LoanPurpose(r.URL.Query().Get("purpose")),
	}
	if v := r.URL.Query().Get("minLoanAmount"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinLoanAmount = d
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	entries := s.history.List(filter)
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}
