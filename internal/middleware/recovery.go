package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"mskn-backend/internal/logger"
	"mskn-backend/pkg/utils"
)

// PanicRecovery turns a panic into a 500. With exposeDetail the panic value
// and stack are included in the body; production must pass false.
func PanicRecovery(exposeDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					logger.For("Recovery").
						WithField("method", r.Method).
						WithField("path", r.URL.Path).
						WithField("panic", fmt.Sprint(err)).
						Errorf("Panic recovered\n%s", stack)

					body := utils.ErrorBody{Message: "Internal server error"}
					if exposeDetail {
						body.Error = fmt.Sprint(err)
						body.Stack = string(stack)
					}
					utils.JSON(w, http.StatusInternalServerError, body)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
