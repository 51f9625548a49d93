// Package httpapi exposes the negotiation service over HTTP. Employer
// endpoints authenticate with a Bearer JWT; candidate endpoints
// authenticate with the single-use token embedded in the link they were
// emailed.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tajaa/matcha-recruit-sub001/internal/logging"
	"github.com/tajaa/matcha-recruit-sub001/internal/server/negotiations"
)

type API struct {
	svc       *negotiations.Service
	logger    logging.Logger
	secretKey []byte
}

func NewAPI(svc *negotiations.Service, logger logging.Logger, secretKey []byte) *API {
	return &API{
		svc:       svc,
		logger:    logger.With("module", "httpapi"),
		secretKey: secretKey,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api/v1", func(api chi.Router) {
		api.Group(func(emp chi.Router) {
			emp.Use(a.requireEmployer)
			emp.Post("/offers", a.createOffer)
			emp.Post("/offers/{offer_id}/range/send", a.sendRange)
			emp.Post("/offers/{offer_id}/range/renegotiate", a.renegotiate)
			emp.Get("/offers/{offer_id}/range", a.getEmployerRange)
		})

		api.Get("/candidate-offers/{token}", a.getCandidateOffer)
		api.Post("/candidate-offers/{token}/range", a.submitCandidateRange)
	})

	return r
}
