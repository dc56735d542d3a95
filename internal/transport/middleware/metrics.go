package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	RequestStarted() func(method, route string, status int, elapsed time.Duration)
}

// Metrics records request counts and latency labelled by the chi route
// template, so path parameters do not explode label cardinality.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			done := rec.RequestStarted()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := routePattern(r)
			if route == "" {
				route = "unmatched"
			}
			done(r.Method, route, sw.status, time.Since(start))
		})
	}
}
