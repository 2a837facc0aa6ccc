package pkgrouter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

//nolint:contextcheck // request context is used for logging only
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:err113,errorlint // this must compare directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "route", matchedRoutePath(r))
			printStackTrace(os.Stderr, debug.Stack())

			writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// printStackTrace writes only the frames that belong to this module's internal packages.
func printStackTrace(out io.Writer, stack []byte) {
	fmt.Fprintln(out, "===== ===== START ===== =====")
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		internalIdx := strings.Index(line, "/internal/")
		goIdx := strings.Index(line, ".go:")
		if internalIdx == -1 || goIdx == -1 {
			continue
		}

		end := strings.IndexByte(line[goIdx:], ' ')
		if end == -1 {
			end = len(line)
		} else {
			end += goIdx
		}
		fmt.Fprintln(out, "stack trace: ", line[internalIdx+1:end])
	}
	fmt.Fprintln(out, "===== ===== END ===== =====")
}
