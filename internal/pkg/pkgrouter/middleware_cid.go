package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/golaunch/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is echoed on every response.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is accepted from proxies that do not set HeaderCorrelationID.
	HeaderRequestID = "X-Request-ID"
)

const maxCIDLength = 128

//nolint:gochecknoglobals // lookup order
var cidHeaders = []string{HeaderCorrelationID, HeaderRequestID}

// incomingCID returns the first usable correlation id sent by the client.
// Values carrying line breaks are dropped, long ones truncated.
func incomingCID(h http.Header) string {
	for _, name := range cidHeaders {
		v := strings.TrimSpace(h.Get(name))
		if v == "" || strings.ContainsAny(v, "\r\n") {
			continue
		}
		if len(v) > maxCIDLength {
			v = v[:maxCIDLength]
		}
		return v
	}

	return ""
}

func middlewareCorrelationID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := incomingCID(r.Header)
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.SetCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
