package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
)

type candidateOfferView struct {
	RequestID            string `json:"request_id"`
	PositionTitle        string `json:"position_title"`
	CompanyName          string `json:"company_name"`
	Currency             string `json:"currency"`
	MatchStatus          string `json:"match_status"`
	Message              string `json:"message"`
	EmployerMin          *int64 `json:"employer_min,omitempty"`
	EmployerMax          *int64 `json:"employer_max,omitempty"`
	NegotiationRound     int    `json:"negotiation_round"`
	MaxNegotiationRounds int    `json:"max_negotiation_rounds"`
}

type submitRangeRequest struct {
	CandidateMin int64 `json:"candidate_min"`
	CandidateMax int64 `json:"candidate_max"`
}

type submitRangeResponse struct {
	RequestID     string `json:"request_id"`
	Result        string `json:"result"`
	MatchedSalary *int64 `json:"matched_salary,omitempty"`
}

func (a *API) getCandidateOffer(w http.ResponseWriter, r *http.Request) {
	view, err := a.svc.GetCandidateView(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, candidateOfferView{
		RequestID:            NewRequestID(),
		PositionTitle:        view.PositionTitle,
		CompanyName:          view.CompanyName,
		Currency:             view.Currency,
		MatchStatus:          string(view.Status),
		Message:              view.Message,
		EmployerMin:          view.EmployerMin,
		EmployerMax:          view.EmployerMax,
		NegotiationRound:     view.NegotiationRound,
		MaxNegotiationRounds: view.MaxNegotiationRounds,
	})
}

func (a *API) submitCandidateRange(w http.ResponseWriter, r *http.Request) {
	var req submitRangeRequest
	if err := ReadJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	res, err := a.svc.SubmitRange(r.Context(), chi.URLParam(r, "token"),
		negotiation.Range{Min: req.CandidateMin, Max: req.CandidateMax})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, submitRangeResponse{
		RequestID:     NewRequestID(),
		Result:        string(res.Result),
		MatchedSalary: res.MatchedSalary,
	})
}
