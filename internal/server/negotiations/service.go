// Package negotiations implements the server-side negotiation flow: it is
// the only writer of range-offer state and drives every transition through
// the rules in internal/negotiation. Candidate submissions consume their
// access token and apply the outcome in a single storage transaction, so a
// duplicate or concurrent submission can never re-run the matching engine
// against already-settled state.
package negotiations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tajaa/matcha-recruit-sub001/internal/common"
	"github.com/tajaa/matcha-recruit-sub001/internal/dbx"
	"github.com/tajaa/matcha-recruit-sub001/internal/logging"
	"github.com/tajaa/matcha-recruit-sub001/internal/negotiation"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/config"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/events"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/models"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/repomanager"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/repositories/tokens"
)

// tokenBytes is the entropy of a raw candidate token (hex-encoded to 64
// characters in the URL).
const tokenBytes = 32

type Service struct {
	repos            repomanager.RepositoryManager
	events           events.Publisher
	logger           logging.Logger
	candidateTTL     time.Duration
	defaultMaxRounds int
	publicBaseURL    string
}

func NewService(repos repomanager.RepositoryManager, ev events.Publisher, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		repos:            repos,
		events:           ev,
		logger:           logger.With("module", "negotiations"),
		candidateTTL:     cfg.CandidateTokenTTL,
		defaultMaxRounds: cfg.DefaultMaxRounds,
		publicBaseURL:    cfg.PublicBaseURL,
	}
}

// CreateOfferParams describes a new range-mode offer.
type CreateOfferParams struct {
	CandidateEmail       string
	PositionTitle        string
	CompanyName          string
	Currency             string
	MaxNegotiationRounds int
}

// SendResult is returned from the employer-side send/renegotiate actions.
type SendResult struct {
	TokenURL         string
	ExpiresAt        time.Time
	NegotiationRound int
}

// SubmissionResult is the candidate-visible outcome of a submission.
type SubmissionResult struct {
	Result        negotiation.Status
	MatchedSalary *int64
}

// CreateOffer registers a range-mode offer owned by employerID. The offer
// starts in status none at round 0; nothing is disclosed to anyone yet.
func (s *Service) CreateOffer(ctx context.Context, employerID string, p CreateOfferParams) (*models.RangeOffer, error) {
	if strings.TrimSpace(p.CandidateEmail) == "" ||
		strings.TrimSpace(p.PositionTitle) == "" ||
		strings.TrimSpace(p.CompanyName) == "" {
		return nil, fmt.Errorf("%w: candidate_email, position_title and company_name are required", common.ErrValidation)
	}
	maxRounds := p.MaxNegotiationRounds
	if maxRounds == 0 {
		maxRounds = s.defaultMaxRounds
	}
	if maxRounds < 1 {
		return nil, fmt.Errorf("%w: max_negotiation_rounds must be at least 1", common.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "USD"
	}

	offer := &models.RangeOffer{
		ID:                   uuid.NewString(),
		EmployerID:           employerID,
		CandidateEmail:       strings.ToLower(strings.TrimSpace(p.CandidateEmail)),
		PositionTitle:        strings.TrimSpace(p.PositionTitle),
		CompanyName:          strings.TrimSpace(p.CompanyName),
		Currency:             currency,
		MaxNegotiationRounds: maxRounds,
		MatchStatus:          negotiation.StatusNone,
	}
	if err := s.repos.Offers(nil).Create(ctx, offer); err != nil {
		s.logger.Error(ctx, "create offer failed", "err", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "range offer created", "offer_id", offer.ID, "max_rounds", maxRounds)
	return offer, nil
}

// SendRange starts the first negotiation round (or, after an unmatched
// round, the next one) with the given employer range. A fresh candidate
// token is issued and any outstanding token is revoked.
func (s *Service) SendRange(ctx context.Context, employerID, offerID string, rng negotiation.Range) (*SendResult, error) {
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return s.startRound(ctx, employerID, offerID, &rng)
}

// Renegotiate starts the next round after an unmatched outcome. The
// employer may revise the range; passing nil keeps the previous one.
func (s *Service) Renegotiate(ctx context.Context, employerID, offerID string, rng *negotiation.Range) (*SendResult, error) {
	if rng != nil {
		if err := rng.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
	}
	return s.startRound(ctx, employerID, offerID, rng)
}

// startRound applies the shared send/renegotiate transition. rng == nil
// reuses the offer's current employer range.
func (s *Service) startRound(ctx context.Context, employerID, offerID string, rng *negotiation.Range) (*SendResult, error) {
	var (
		result SendResult
		event  events.SentEvent
	)

	err := s.repos.InTransaction(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		offerRepo := s.repos.Offers(tx)

		offer, err := offerRepo.GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		// A foreign offer is indistinguishable from a missing one.
		if offer.EmployerID != employerID {
			return common.ErrNotFound
		}

		if !negotiation.CanStartRound(offer.MatchStatus, offer.NegotiationRound, offer.MaxNegotiationRounds) {
			if negotiation.IsTerminal(offer.MatchStatus, offer.NegotiationRound, offer.MaxNegotiationRounds) &&
				offer.MatchStatus != negotiation.StatusMatched {
				return common.ErrRoundLimitExceeded
			}
			return common.ErrInvalidTransition
		}

		round := rng
		if round == nil {
			if offer.EmployerMin == nil || offer.EmployerMax == nil {
				return fmt.Errorf("%w: no employer range to re-send", common.ErrValidation)
			}
			round = &negotiation.Range{Min: *offer.EmployerMin, Max: *offer.EmployerMax}
		}

		newRound := offer.NegotiationRound + 1
		if err := offerRepo.StartRound(ctx, offerID, round.Min, round.Max, newRound, offer.MatchStatus); err != nil {
			return err
		}

		raw, err := common.MakeRandHexString(tokenBytes)
		if err != nil {
			return fmt.Errorf("token generation: %w", err)
		}

		now := time.Now().UTC()
		tokenRepo := s.repos.Tokens(tx)
		if err := tokenRepo.RevokeActive(ctx, offerID, now); err != nil {
			return err
		}
		expiresAt := now.Add(s.candidateTTL)
		if err := tokenRepo.Create(ctx, &models.CandidateToken{
			TokenHash: tokens.HashToken(raw),
			OfferID:   offerID,
			Round:     newRound,
			ExpiresAt: expiresAt,
		}); err != nil {
			return err
		}

		result = SendResult{
			TokenURL:         s.tokenURL(raw),
			ExpiresAt:        expiresAt,
			NegotiationRound: newRound,
		}
		event = events.SentEvent{
			OfferID:          offerID,
			CandidateEmail:   offer.CandidateEmail,
			TokenURL:         result.TokenURL,
			NegotiationRound: newRound,
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStorageError(ctx, err)
	}

	if err := s.events.RangeSent(ctx, event); err != nil {
		s.logger.Warn(ctx, "publish range sent failed", "offer_id", offerID, "err", err)
	}

	s.logger.Info(ctx, "range offer sent", "offer_id", offerID, "round", result.NegotiationRound)
	return &result, nil
}

// SubmitRange accepts the candidate's range through their token, runs the
// matching engine once, and records the outcome. Token consumption and
// the offer transition happen in one transaction: under concurrent
// duplicate submissions exactly one wins and the rest see
// ErrAlreadySubmitted without touching state.
func (s *Service) SubmitRange(ctx context.Context, rawToken string, rng negotiation.Range) (*SubmissionResult, error) {
	if err := rng.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	hash := tokens.HashToken(rawToken)
	var (
		result SubmissionResult
		event  events.OutcomeEvent
	)

	err := s.repos.InTransaction(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		tokenRepo := s.repos.Tokens(tx)

		token, err := tokenRepo.Consume(ctx, hash, time.Now().UTC())
		if err != nil {
			if errors.Is(err, common.ErrTokenInvalid) {
				return s.classifyTokenFailure(ctx, tokenRepo, hash)
			}
			return err
		}

		offer, err := s.repos.Offers(tx).GetByID(ctx, token.OfferID)
		if err != nil {
			return err
		}
		if offer.MatchStatus != negotiation.StatusPendingCandidate || offer.NegotiationRound != token.Round {
			return common.ErrAlreadySubmitted
		}
		if offer.EmployerMin == nil || offer.EmployerMax == nil {
			return fmt.Errorf("offer %s pending without employer range", offer.ID)
		}

		out := negotiation.Match(negotiation.Range{Min: *offer.EmployerMin, Max: *offer.EmployerMax}, rng)
		var matched *int64
		if out.Result == negotiation.StatusMatched {
			v := out.MatchedSalary
			matched = &v
		}

		if err := s.repos.Offers(tx).ApplySubmission(ctx, offer.ID, token.Round, rng.Min, rng.Max, out.Result, matched); err != nil {
			return err
		}

		result = SubmissionResult{Result: out.Result, MatchedSalary: matched}
		event = events.OutcomeEvent{
			OfferID:          offer.ID,
			Result:           string(out.Result),
			NegotiationRound: token.Round,
			MatchedSalary:    matched,
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStorageError(ctx, err)
	}

	if err := s.events.RangeOutcome(ctx, event); err != nil {
		s.logger.Warn(ctx, "publish range outcome failed", "offer_id", event.OfferID, "err", err)
	}

	s.logger.Info(ctx, "candidate range submitted", "offer_id", event.OfferID, "round", event.NegotiationRound, "result", event.Result)
	return &result, nil
}

// classifyTokenFailure distinguishes a replayed token (already consumed
// for a settled round) from one that never worked or has expired.
func (s *Service) classifyTokenFailure(ctx context.Context, repo tokens.Repository, hash string) error {
	token, err := repo.Find(ctx, hash)
	if err == nil && token.ConsumedAt != nil {
		return common.ErrAlreadySubmitted
	}
	return common.ErrTokenInvalid
}

func (s *Service) tokenURL(rawToken string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/candidate-offers/" + rawToken
}

// mapStorageError keeps the sentinel taxonomy intact and hides everything
// else behind ErrInternal.
func (s *Service) mapStorageError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrTokenInvalid),
		errors.Is(err, common.ErrAlreadySubmitted),
		errors.Is(err, common.ErrRoundLimitExceeded),
		errors.Is(err, common.ErrInvalidTransition):
		return err
	default:
		s.logger.Error(ctx, "storage error", "err", err)
		return common.ErrInternal
	}
}
