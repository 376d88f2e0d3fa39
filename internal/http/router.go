package http

import (
	"net/http"
	"strings"
	"time"

	"careerhub/internal/domain/user"
	"careerhub/internal/http/handlers"
	"careerhub/internal/http/metrics"
	httpmw "careerhub/internal/http/middleware"
)

type RouterDependencies struct {
	ListingHandler     *handlers.ListingHandler
	ApplicationHandler *handlers.ApplicationHandler
	ReviewHandler      *handlers.ReviewHandler
	AuditHandler       *handlers.AuditHandler
	UserHandler        *handlers.UserHandler
	MetricsHandler     *handlers.MetricsHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path
		parts := segments(path)

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && len(parts) == 2 && parts[0] == "listings":
			r.deps.ListingHandler.List(w, req)
			return
		case req.Method == http.MethodGet && len(parts) == 3 && parts[0] == "listings":
			r.deps.ListingHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && len(parts) == 4 && parts[0] == "listings" && parts[3] == "reviews":
			r.deps.ReviewHandler.ListByListing(w, req)
			return
		}

		if len(parts) > 0 {
			switch parts[0] {
			case "listings", "applications", "reviews", "delete-log", "users":
				protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					r.handleProtected(w, req)
				}))
				protected.ServeHTTP(w, req)
				return
			}
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	parts := segments(req.URL.Path)

	switch {
	case req.Method == http.MethodPost && len(parts) == 2 && parts[0] == "listings":
		r.deps.ListingHandler.Create(w, req)
		return
	case req.Method == http.MethodPut && len(parts) == 3 && parts[0] == "listings":
		r.deps.ListingHandler.Update(w, req)
		return
	case req.Method == http.MethodPatch && len(parts) == 4 && parts[0] == "listings" && parts[3] == "status":
		r.deps.ListingHandler.UpdateStatus(w, req)
		return
	case req.Method == http.MethodDelete && len(parts) == 3 && parts[0] == "listings":
		r.deps.ListingHandler.Delete(w, req)
		return
	case req.Method == http.MethodPost && len(parts) == 4 && parts[0] == "listings" && parts[3] == "applications":
		httpmw.RequireRole(user.RoleMember)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && len(parts) == 4 && parts[0] == "listings" && parts[3] == "applications":
		r.deps.ApplicationHandler.ListByListing(w, req)
		return
	case req.Method == http.MethodGet && len(parts) == 4 && parts[0] == "listings" && parts[3] == "participants":
		r.deps.ListingHandler.ListParticipants(w, req)
		return
	case req.Method == http.MethodPut && len(parts) == 5 && parts[0] == "listings" && parts[3] == "participants":
		r.deps.ListingHandler.AddParticipant(w, req)
		return
	case req.Method == http.MethodDelete && len(parts) == 5 && parts[0] == "listings" && parts[3] == "participants":
		r.deps.ListingHandler.RemoveParticipant(w, req)
		return
	case req.Method == http.MethodPost && len(parts) == 4 && parts[0] == "listings" && parts[3] == "reviews":
		httpmw.RequireRole(user.RoleMember)(http.HandlerFunc(r.deps.ReviewHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && len(parts) == 1 && parts[0] == "applications":
		r.deps.ApplicationHandler.ListMine(w, req)
		return
	case req.Method == http.MethodPatch && len(parts) == 3 && parts[0] == "applications" && parts[2] == "status":
		r.deps.ApplicationHandler.UpdateStatus(w, req)
		return
	case req.Method == http.MethodDelete && len(parts) == 2 && parts[0] == "applications":
		r.deps.ApplicationHandler.Delete(w, req)
		return
	case req.Method == http.MethodDelete && len(parts) == 2 && parts[0] == "reviews":
		r.deps.ReviewHandler.Delete(w, req)
		return
	case req.Method == http.MethodPost && len(parts) == 1 && parts[0] == "delete-log":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AuditHandler.RecordBatch)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && len(parts) == 1 && parts[0] == "delete-log":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.AuditHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && len(parts) == 1 && parts[0] == "users":
		r.deps.UserHandler.Get(w, req)
		return
	case req.Method == http.MethodGet && len(parts) == 2 && parts[0] == "users" && parts[1] == "role":
		r.deps.UserHandler.GetRole(w, req)
		return
	}

	http.NotFound(w, req)
}

func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
