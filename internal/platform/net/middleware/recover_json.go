package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "github.com/Aditya-729/application-rejection-analyzer/internal/platform/errors"
	"github.com/Aditya-729/application-rejection-analyzer/internal/platform/logger"
	pnet "github.com/Aditya-729/application-rejection-analyzer/internal/platform/net"
)

type panicWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// RecoverJSON converts panics into a JSON 500 and logs stack with request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				reqID := pnet.RequestID(r.Context())

				// format stack like chi recover
				raw := debug.Stack()
				lines := strings.Split(string(raw), "\n")
				stack := strings.Join(lines, "\n\t")

				log := logger.C(r.Context())
				if log == nil {
					log = logger.Named("http")
				}
				log.Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Str("stack", stack).
					Msg("panic recovered")

				err := perr.PanicErrf("internal error")
				status := perr.HTTPStatus(err)
				wire := panicWire{
					StatusCode: status,
					Status:     stdhttp.StatusText(status),
					Error:      perr.WireFrom(err).Message,
					RequestID:  reqID,
				}
				writeJSON(w, status, wire)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// writeJSON is a local encoder so this package does not depend on platform/net/http
func writeJSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = stdjson.NewEncoder(w).Encode(v)
}
