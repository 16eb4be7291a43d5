package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/teamloft/teamloft/internal/workspace/service"
	"github.com/teamloft/teamloft/internal/workspace/store"
	"github.com/teamloft/teamloft/pkg/httpx"
	"github.com/teamloft/teamloft/pkg/jwtx"
	"github.com/teamloft/teamloft/pkg/slogx"

	_ "github.com/teamloft/teamloft/api/workspace" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	UserService       *service.UserService
	WorkspaceService  *service.WorkspaceService
	InvitationService *service.InvitationService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerWorkspaces()
	r.registerMembers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TeamLoft Workspace Service API
//	@version		0.1.0
//	@description	Workspace membership and invitation lifecycle for the TeamLoft project-management platform.
//	@description
//	@description				Authentication uses EdDSA-signed session tokens minted by the identity provider;
//	@description				this service only verifies them and never handles credentials.
//
//	@contact.name				TeamLoft Team
//	@contact.url				https://github.com/teamloft/teamloft
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity-provider session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with authentication, user sync and a per-user rate
// limit. Every /v1 route goes through this chain.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp/identity)
		UserSyncMiddleware(r.UserService), // mirror claims into users table
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// GET /invitations - the caller's pending invites, lenient read limit
	r.Mux.Handle("GET /v1/invitations",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))

	// Accept/decline are strict: invitation ids must not be brute-forceable
	r.Mux.Handle("POST /v1/invitations/{id}/accept",
		r.secured(http.HandlerFunc(h.HandleAccept), httpx.StrictLimit))
	r.Mux.Handle("POST /v1/invitations/{id}/decline",
		r.secured(http.HandlerFunc(h.HandleDecline), httpx.StrictLimit))
}

func (r *Router) registerWorkspaces() {
	wh := &WorkspacesHandler{WorkspaceService: r.WorkspaceService}
	ih := &WorkspaceInvitesHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("POST /v1/workspaces",
		r.secured(http.HandlerFunc(wh.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/workspaces",
		r.secured(http.HandlerFunc(wh.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/workspaces/{id}",
		r.secured(http.HandlerFunc(wh.HandleGet), httpx.LenientLimit))

	// POST invites is strict to keep invite spam in check
	r.Mux.Handle("POST /v1/workspaces/{id}/invites",
		r.secured(http.HandlerFunc(ih.HandleCreate), httpx.StrictLimit))
	r.Mux.Handle("GET /v1/workspaces/{id}/invites",
		r.secured(http.HandlerFunc(ih.HandleList), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/workspaces/{id}/invites/{inviteID}",
		r.secured(http.HandlerFunc(ih.HandleCancel), httpx.ModerateLimit))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{WorkspaceService: r.WorkspaceService}

	r.Mux.Handle("GET /v1/workspaces/{id}/members",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/workspaces/{id}/members/{userID}",
		r.secured(http.HandlerFunc(h.HandleRemove), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/workspaces/{id}/members/{userID}",
		r.secured(http.HandlerFunc(h.HandleChangeRole), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
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
