package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/sacandaga/calendarr/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
)

var corsAllowedMethods = strings.Join([]string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
}, ", ")

// CORS attaches cross-origin headers according to the resolved policy.
// Admitted origins are echoed back verbatim; a request from an origin the
// policy rejects passes through with no permissive header at all. Preflight
// requests are answered here and never reach the routes.
func CORS(policy config.CORSPolicy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && policy.AllowsOrigin(origin) {
			w.Header().Set(headerAllowOrigin, origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set(headerAllowMethods, corsAllowedMethods)
			w.Header().Set(headerAllowHeaders, "Content-Type")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Recover converts handler panics into 500 responses. In development the
// response carries the panic value and stack trace; in production the client
// only sees the generic message while the detail goes to the log.
func Recover(debugEnabled bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			stack := debug.Stack()
			log.WithFields(log.Fields{
				"panic": rec,
				"path":  r.URL.Path,
			}).Error("recovered from panic in http handler")

			w.Header().Set("Content-Type", contentTypeJSON)
			w.WriteHeader(http.StatusInternalServerError)

			body := map[string]string{"error": msgInternalError}
			if debugEnabled {
				body["error"] = fmt.Sprintf("%v", rec)
				body["stack"] = string(stack)
			}
			if err := json.NewEncoder(w).Encode(body); err != nil {
				log.WithField("error", err).Error("failed to encode panic response")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
