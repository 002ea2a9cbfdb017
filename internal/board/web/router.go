package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quietroom/quietroom/internal/board/service"
	"github.com/quietroom/quietroom/internal/board/store"
	"github.com/quietroom/quietroom/pkg/httpx"
	"github.com/quietroom/quietroom/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	sessions *Sessions
	renderer *Renderer

	CredentialService *service.CredentialService
	MembershipService *service.MembershipService
	BoardService      *service.BoardService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	sessions *Sessions,
	renderer *Renderer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		renderer:     renderer,
		logger:       logger,
	}

	// Default middleware chain; withUser must run inside the request logger
	// so session resolution failures are attributed to a request id.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.withUser,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerBoard()
	r.registerAccounts()
	r.registerPromotions()
	r.registerSystem()

	// Anything unrouted gets the site's own 404 page rather than the
	// ServeMux plain-text default.
	r.Mux.Handle("/", httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			r.renderer.RenderError(w, http.StatusNotFound, "Page not found")
		}),
		httpx.RateLimitByIP(httpx.LenientLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// withUser resolves the session's username to a fresh user record and
// stashes it on the request context. Anonymous requests pass through with
// no user attached.
func (r *Router) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		user, err := r.CredentialService.CurrentUser(ctx, r.sessions.Username(req))
		if err != nil {
			slogx.FromContext(ctx).Error("failed to resolve session user", "err", err)
			r.renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		if user != nil {
			req = req.WithContext(contextWithUser(ctx, user))
		}

		next.ServeHTTP(w, req)
	})
}

func (r *Router) registerBoard() {
	home := &HomeHandler{Board: r.BoardService, Renderer: r.renderer}
	message := &MessageHandler{Board: r.BoardService, Renderer: r.renderer}

	// GET / - the message list is the landing page
	r.Mux.Handle("GET /{$}",
		httpx.Chain(http.HandlerFunc(home.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST / - admin message delete
	r.Mux.Handle("POST /{$}",
		httpx.Chain(http.HandlerFunc(home.HandlePost),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /new-message",
		httpx.Chain(http.HandlerFunc(message.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /new-message",
		httpx.Chain(http.HandlerFunc(message.HandlePost),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	signUp := &SignUpHandler{Credentials: r.CredentialService, Store: r.store, Renderer: r.renderer}
	logIn := &LogInHandler{Credentials: r.CredentialService, Sessions: r.sessions, Renderer: r.renderer}

	r.Mux.Handle("GET /sign-up",
		httpx.Chain(http.HandlerFunc(signUp.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /sign-up - strict limit, registration is abuse-prone
	r.Mux.Handle("POST /sign-up",
		httpx.Chain(http.HandlerFunc(signUp.HandlePost),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /log-in",
		httpx.Chain(http.HandlerFunc(logIn.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /log-in - strict limit keyed by IP+username to slow credential
	// stuffing without letting one attacker lock out an address
	r.Mux.Handle("POST /log-in",
		httpx.Chain(http.HandlerFunc(logIn.HandlePost),
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	r.Mux.Handle("GET /log-out",
		httpx.Chain(http.HandlerFunc(logIn.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPromotions() {
	promote := &PromoteHandler{Membership: r.MembershipService, Renderer: r.renderer}

	lenientGet := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, httpx.RateLimitByIP(httpx.LenientLimit))
	}
	strictPost := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h, httpx.RateLimitByIP(httpx.StrictLimit))
	}

	r.Mux.Handle("GET /become-member", lenientGet(promote.HandleMemberGet))
	r.Mux.Handle("POST /become-member", strictPost(promote.HandleMemberPost))

	// /join is the historical alias for the member form
	r.Mux.Handle("GET /join", lenientGet(promote.HandleMemberGet))
	r.Mux.Handle("POST /join", strictPost(promote.HandleMemberPost))

	r.Mux.Handle("GET /become-admin", lenientGet(promote.HandleAdminGet))
	r.Mux.Handle("POST /become-admin", strictPost(promote.HandleAdminPost))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits, monitoring systems poll often
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
