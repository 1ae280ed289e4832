package http

import (
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/utils"
)

// notFound is registered for both unknown paths and known paths requested
// with an unsupported method, so the router never answers 405.
func notFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route matched")

	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
