package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"playground/internal/domain"
	"playground/internal/httputil"
)

// Recovery middleware recovers from panics and returns a 500 error.
// Nothing is written if the handler already started its response.
// The panic value is echoed as "message" unless isProd is set.
func Recovery(logger *slog.Logger, isProd bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newResponseRecorder(w)

			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if err == http.ErrAbortHandler {
					panic(err)
				}

				attrs := append([]any{"error", err, "stack", string(debug.Stack())}, httputil.LogAttrs(r)...)
				logger.Error("panic recovered", attrs...)

				if rec.wroteHeader {
					return
				}

				var extras map[string]interface{}
				if !isProd {
					extras = map[string]interface{}{"message": fmt.Sprint(err)}
				}
				httputil.RespondErrorWithExtras(rec, http.StatusInternalServerError, domain.MsgInternalError, extras)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
