package negotiations

import (
	"context"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/tokens"
)

// EmployerView is the employer-side projection of an offer. Candidate
// bounds are never part of it; only the disclosure-approved outcome and
// the employer's own data appear.
type EmployerView struct {
	OfferID              string
	CandidateEmail       string
	PositionTitle        string
	CompanyName          string
	Currency             string
	Status               negotiation.Status
	Message              string
	EmployerMin          *int64
	EmployerMax          *int64
	NegotiationRound     int
	MaxNegotiationRounds int
	MatchedSalary        *int64
	CanRenegotiate       bool
}

// CandidateView is the candidate-side projection reached through a token.
// The employer range is present only while a submission is pending.
type CandidateView struct {
	PositionTitle        string
	CompanyName          string
	Currency             string
	Status               negotiation.Status
	Message              string
	EmployerMin          *int64
	EmployerMax          *int64
	NegotiationRound     int
	MaxNegotiationRounds int
	MatchedSalary        *int64
}

// GetEmployerView returns the employer's view of their own offer.
func (s *Service) GetEmployerView(ctx context.Context, employerID, offerID string) (*EmployerView, error) {
	offer, err := s.repos.Offers(nil).GetByID(ctx, offerID)
	if err != nil {
		return nil, s.mapStorageError(ctx, err)
	}
	if offer.EmployerID != employerID {
		return nil, common.ErrNotFound
	}

	var matched int64
	if offer.MatchedSalary != nil {
		matched = *offer.MatchedSalary
	}
	d := negotiation.DiscloseToEmployer(offer.MatchStatus, matched)

	return &EmployerView{
		OfferID:              offer.ID,
		CandidateEmail:       offer.CandidateEmail,
		PositionTitle:        offer.PositionTitle,
		CompanyName:          offer.CompanyName,
		Currency:             offer.Currency,
		Status:               d.Status,
		Message:              d.Message,
		EmployerMin:          offer.EmployerMin,
		EmployerMax:          offer.EmployerMax,
		NegotiationRound:     offer.NegotiationRound,
		MaxNegotiationRounds: offer.MaxNegotiationRounds,
		MatchedSalary:        d.MatchedSalary,
		CanRenegotiate:       negotiation.CanStartRound(offer.MatchStatus, offer.NegotiationRound, offer.MaxNegotiationRounds) && offer.MatchStatus != negotiation.StatusNone,
	}, nil
}

// GetCandidateView resolves a raw candidate token into the offer details
// the candidate is allowed to see. The token is not consumed here; only a
// submission does that.
func (s *Service) GetCandidateView(ctx context.Context, rawToken string) (*CandidateView, error) {
	token, err := s.repos.Tokens(nil).FindActive(ctx, tokens.HashToken(rawToken), time.Now().UTC())
	if err != nil {
		return nil, s.mapStorageError(ctx, err)
	}

	offer, err := s.repos.Offers(nil).GetByID(ctx, token.OfferID)
	if err != nil {
		return nil, s.mapStorageError(ctx, err)
	}

	var matched int64
	if offer.MatchedSalary != nil {
		matched = *offer.MatchedSalary
	}
	d := negotiation.DiscloseToCandidate(offer.MatchStatus, matched)

	view := &CandidateView{
		PositionTitle:        offer.PositionTitle,
		CompanyName:          offer.CompanyName,
		Currency:             offer.Currency,
		Status:               d.Status,
		Message:              d.Message,
		NegotiationRound:     offer.NegotiationRound,
		MaxNegotiationRounds: offer.MaxNegotiationRounds,
		MatchedSalary:        d.MatchedSalary,
	}
	if d.ShowOfferedRange {
		view.EmployerMin = offer.EmployerMin
		view.EmployerMax = offer.EmployerMax
	}
	return view, nil
}
