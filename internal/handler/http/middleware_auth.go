package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header and
// verifies it via [service.AuthService.ParseToken]. On success the account id
// is stored in the request context under [utils.UserIDCtxKey] and added to
// the request-scoped logger as user_id.
//
// Rejections:
//   - 401 "Access token required" when the header or the token is missing.
//   - 403 "Invalid token" when the token does not verify for any reason.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg(app.MsgAccessTokenRequired)
			utils.WriteError(w, app.MsgAccessTokenRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg(app.MsgInvalidToken)
			utils.WriteError(w, app.MsgInvalidToken, http.StatusForbidden)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		ctx = l.WithContext(utils.WithUserID(ctx, token.UserID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the authenticated account id placed by auth. It answers 401
// itself when the route was registered without the middleware.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", "Handler.userID").Msg("no user id in request context")
		utils.WriteError(w, app.MsgAccessTokenRequired, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
