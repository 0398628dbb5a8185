package middlewares

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireAPIKey guards operations endpoints. The configured value is a
// bcrypt hash, so the plaintext key never lives in the environment.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" || !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.OpsAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("operations api key accepted",
			zap.String("endpoint", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}
