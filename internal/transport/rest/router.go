package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/anonboard-backend/internal/config"
	"github.com/heartmarshall/anonboard-backend/internal/domain"
	"github.com/heartmarshall/anonboard-backend/internal/transport/errcode"
	"github.com/heartmarshall/anonboard-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, domain.UserRole, error)
}

type httpObserver interface {
	ObserveHTTP(method string, status int, d time.Duration)
}

// RouterDeps collects what NewRouter wires together.
type RouterDeps struct {
	Logger   *slog.Logger
	Users    *UserHandler
	Topics   *TopicHandler
	Res      *ResHandler
	Events   *EventHandler
	Health   *HealthHandler
	Tokens   tokenValidator
	Observer httpObserver
	CORS     config.CORSConfig
	// RateLimit throttles /v1; nil disables it.
	RateLimit middleware.Middleware
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter builds the HTTP handler. Reads are public; writes need a
// token, and freezing needs a moderator.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger, d.Observer),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errcode.Write(w, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errcode.WriteBody(w, http.StatusMethodNotAllowed, errcode.Body{
			Code:    errcode.BadRequest,
			Message: "method not allowed",
		})
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Handle(d.MetricsPath, d.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Chain(d.RateLimit))

		r.Post("/users/register", d.Users.Register)
		r.Post("/users/login", d.Users.Login)
		r.With(middleware.RequireUser).Get("/users/me", d.Users.Me)

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", d.Topics.List)
			r.With(middleware.RequireUser).Post("/", d.Topics.Create)

			r.Route("/{topicID}", func(r chi.Router) {
				r.Get("/", d.Topics.Get)
				r.With(middleware.RequireUser).Put("/", d.Topics.Update)
				r.Get("/histories", d.Topics.Histories)
				r.Get("/events", d.Events.TopicEvents)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireUser)
					r.Get("/subscription", d.Topics.Subscription)
					r.Put("/subscription", d.Topics.Subscribe)
					r.Delete("/subscription", d.Topics.Unsubscribe)
					r.Post("/res", d.Res.Create)
				})

				r.Get("/res", d.Res.ListByTopic)
				r.Get("/res/count", d.Res.CountByTopic)
			})
		})

		r.Route("/res/{resID}", func(r chi.Router) {
			r.Get("/", d.Res.Get)
			r.Get("/replies", d.Res.Replies)
			r.With(middleware.RequireUser).Post("/votes", d.Res.Vote)
			r.With(middleware.RequireUser).Delete("/", d.Res.Delete)
			r.With(middleware.RequireModerator).Post("/freeze", d.Res.Freeze)
		})
	})

	return r
}
