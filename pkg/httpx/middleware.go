package httpx

import "net/http"

// Middleware decorates an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain applies middlewares to h so the first middleware listed is the
// outermost wrapper, i.e. runs first on the way in.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
