// Package httpadapter exposes the engagement engine over JSON/HTTP.
package httpadapter

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cfomatch/internal/api"
	"cfomatch/internal/fees"
	"cfomatch/internal/services/applications"
	"cfomatch/internal/services/contracts"
	"cfomatch/internal/services/conversations"
	"cfomatch/internal/services/invoices"
	"cfomatch/internal/services/meetings"
	"cfomatch/internal/services/reviews"
)

// Services bundles the engine operations the router dispatches to.
type Services struct {
	Applications  *applications.Service
	Conversations *conversations.Service
	Meetings      *meetings.Service
	Contracts     *contracts.Service
	Invoices      *invoices.Service
	Reviews       *reviews.Service
	Fees          fees.Policy
}

// Server implements the generated StrictServerInterface.
type Server struct {
	svc    Services
	secret []byte
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(svc Services, authSecret string) *Server {
	return &Server{svc: svc, secret: []byte(authSecret)}
}

// Routes returns a chi.Router mounting the generated handlers. Operations
// carrying the bearer security requirement go through authenticate.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestError,
		ResponseErrorHandlerFunc: writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.authenticate},
		ErrorHandlerFunc: requestError,
	})
	return r
}

func (s *Server) GetHealthz(_ context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Status: "ok"}, nil
}

