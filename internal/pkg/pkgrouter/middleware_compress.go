package pkgrouter

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/andybalholm/brotli"
)

type compressWriter struct {
	http.ResponseWriter
	w io.Writer
}

func (c *compressWriter) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// middlewareCompress negotiates br or gzip from Accept-Encoding. Requests that
// accept neither pass through untouched.
func middlewareCompress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept-Encoding") == "" || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		cw := brotli.HTTPCompressor(w, r)
		defer func() {
			if err := cw.Close(); err != nil {
				slog.DebugContext(r.Context(), "failed to close compressor", "error", err)
			}
		}()

		next.ServeHTTP(&compressWriter{ResponseWriter: w, w: cw}, r)
	})
}
