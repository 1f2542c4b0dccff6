package swaggerkit

import "net/http"

// docReader is a seam so tests can serve an alternate spec
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"Rejection Analyzer API","version":"0.1.0"},"paths":{}}`
}

// serveDocJSON serves the OpenAPI skeleton so the UI can load
// endpoint-level docs live in the swagger comments on handlers and are
// assembled by the docs generator in CI rather than embedded here
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
