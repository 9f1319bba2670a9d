package restlet

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Route binds one URL pattern to a schema-validated endpoint.
type Route struct {
	Method  string
	Pattern string
	Handler http.Handler
}

// Router mounts the given routes on a fresh chi router with the package
// middleware (request IDs, request logging) applied. Routes with an empty
// method default to POST, the usual verb for RESTlet-style calls.
func Router(log *slog.Logger, routes ...Route) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	for _, rt := range routes {
		method := rt.Method
		if method == "" {
			method = http.MethodPost
		}
		r.Method(method, rt.Pattern, rt.Handler)
	}
	return r
}
