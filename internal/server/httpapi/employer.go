package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/negotiations"
)

type createOfferRequest struct {
	PositionTitle        string `json:"position_title"`
	CompanyName          string `json:"company_name"`
	CandidateEmail       string `json:"candidate_email"`
	Currency             string `json:"currency,omitempty"`
	MaxNegotiationRounds int    `json:"max_negotiation_rounds,omitempty"`
}

type offerSummary struct {
	OfferID              string `json:"offer_id"`
	PositionTitle        string `json:"position_title"`
	CompanyName          string `json:"company_name"`
	CandidateEmail       string `json:"candidate_email"`
	Currency             string `json:"currency"`
	MatchStatus          string `json:"match_status"`
	NegotiationRound     int    `json:"negotiation_round"`
	MaxNegotiationRounds int    `json:"max_negotiation_rounds"`
}

type sendRangeRequest struct {
	EmployerMin int64 `json:"employer_min"`
	EmployerMax int64 `json:"employer_max"`
}

type renegotiateRequest struct {
	EmployerMin *int64 `json:"employer_min,omitempty"`
	EmployerMax *int64 `json:"employer_max,omitempty"`
}

type sendRangeResponse struct {
	RequestID        string    `json:"request_id"`
	TokenURL         string    `json:"token_url"`
	ExpiresAt        time.Time `json:"expires_at"`
	NegotiationRound int       `json:"negotiation_round"`
}

type employerRangeView struct {
	RequestID            string `json:"request_id"`
	OfferID              string `json:"offer_id"`
	MatchStatus          string `json:"match_status"`
	Message              string `json:"message"`
	EmployerMin          *int64 `json:"employer_min,omitempty"`
	EmployerMax          *int64 `json:"employer_max,omitempty"`
	NegotiationRound     int    `json:"negotiation_round"`
	MaxNegotiationRounds int    `json:"max_negotiation_rounds"`
	MatchedSalary        *int64 `json:"matched_salary,omitempty"`
	CanRenegotiate       bool   `json:"can_renegotiate"`
}

func (a *API) createOffer(w http.ResponseWriter, r *http.Request) {
	var req createOfferRequest
	if err := ReadJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	offer, err := a.svc.CreateOffer(r.Context(), EmployerIDFromContext(r.Context()), negotiations.CreateOfferParams{
		CandidateEmail:       req.CandidateEmail,
		PositionTitle:        req.PositionTitle,
		CompanyName:          req.CompanyName,
		Currency:             req.Currency,
		MaxNegotiationRounds: req.MaxNegotiationRounds,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"request_id": NewRequestID(),
		"offer": offerSummary{
			OfferID:              offer.ID,
			PositionTitle:        offer.PositionTitle,
			CompanyName:          offer.CompanyName,
			CandidateEmail:       offer.CandidateEmail,
			Currency:             offer.Currency,
			MatchStatus:          string(offer.MatchStatus),
			NegotiationRound:     offer.NegotiationRound,
			MaxNegotiationRounds: offer.MaxNegotiationRounds,
		},
	})
}

func (a *API) sendRange(w http.ResponseWriter, r *http.Request) {
	var req sendRangeRequest
	if err := ReadJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	res, err := a.svc.SendRange(r.Context(), EmployerIDFromContext(r.Context()), chi.URLParam(r, "offer_id"),
		negotiation.Range{Min: req.EmployerMin, Max: req.EmployerMax})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, sendRangeResponse{
		RequestID:        NewRequestID(),
		TokenURL:         res.TokenURL,
		ExpiresAt:        res.ExpiresAt,
		NegotiationRound: res.NegotiationRound,
	})
}

func (a *API) renegotiate(w http.ResponseWriter, r *http.Request) {
	var req renegotiateRequest
	if err := ReadJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	// Both bounds or neither; a half-revised range is meaningless.
	var rng *negotiation.Range
	switch {
	case req.EmployerMin != nil && req.EmployerMax != nil:
		rng = &negotiation.Range{Min: *req.EmployerMin, Max: *req.EmployerMax}
	case req.EmployerMin != nil || req.EmployerMax != nil:
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", "employer_min and employer_max must be provided together", nil)
		return
	}

	res, err := a.svc.Renegotiate(r.Context(), EmployerIDFromContext(r.Context()), chi.URLParam(r, "offer_id"), rng)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, sendRangeResponse{
		RequestID:        NewRequestID(),
		TokenURL:         res.TokenURL,
		ExpiresAt:        res.ExpiresAt,
		NegotiationRound: res.NegotiationRound,
	})
}

func (a *API) getEmployerRange(w http.ResponseWriter, r *http.Request) {
	view, err := a.svc.GetEmployerView(r.Context(), EmployerIDFromContext(r.Context()), chi.URLParam(r, "offer_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, employerRangeView{
		RequestID:            NewRequestID(),
		OfferID:              view.OfferID,
		MatchStatus:          string(view.Status),
		Message:              view.Message,
		EmployerMin:          view.EmployerMin,
		EmployerMax:          view.EmployerMax,
		NegotiationRound:     view.NegotiationRound,
		MaxNegotiationRounds: view.MaxNegotiationRounds,
		MatchedSalary:        view.MatchedSalary,
		CanRenegotiate:       view.CanRenegotiate,
	})
}
