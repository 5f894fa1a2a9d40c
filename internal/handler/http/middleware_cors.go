package http

import "net/http"

// allMethods is the method list advertised when a preflight request does not
// name a specific method.
const allMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"

// withCORS applies the fixed cross-origin policy of the service: any origin,
// any method, any header, credentialed requests allowed.
//
// Credentialed responses may not use a wildcard, so the requesting origin and
// the requested headers are echoed back instead of "*".
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Expose-Headers", traceIDHeader)
		w.Header().Set("Vary", "Origin")

		// preflight requests are answered here, never routed
		if r.Method == http.MethodOptions {
			method := r.Header.Get("Access-Control-Request-Method")
			if method == "" {
				method = allMethods
			}
			w.Header().Set("Access-Control-Allow-Methods", method)

			if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}

			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
