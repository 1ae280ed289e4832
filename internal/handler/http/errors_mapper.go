package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrRegistrationFieldsRequired: http.StatusBadRequest,
	validators.ErrPasswordTooShort:           http.StatusBadRequest,
	validators.ErrCredentialsRequired:        http.StatusBadRequest,
	validators.ErrCategoryNameRequired:       http.StatusBadRequest,
	validators.ErrEntryFieldsRequired:        http.StatusBadRequest,

	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrTokenIsInvalid:        http.StatusForbidden,
	service.ErrUserNotFound:          http.StatusNotFound,
	service.ErrCategoryNotFound:      http.StatusNotFound,
	service.ErrEntryNotFound:         http.StatusNotFound,
	service.ErrCategoryAlreadyExists: http.StatusBadRequest,
	service.ErrCategoryInUse:         http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrPersistence:           http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	validators.ErrRegistrationFieldsRequired: app.MsgAllFieldsRequired,
	validators.ErrPasswordTooShort:           app.MsgPasswordTooShort,
	validators.ErrCredentialsRequired:        app.MsgEmailAndPasswordNeeded,
	validators.ErrCategoryNameRequired:       app.MsgCategoryNameRequired,
	validators.ErrEntryFieldsRequired:        app.MsgEntryFieldsRequired,

	service.ErrInvalidCredentials:    app.MsgInvalidEmailOrPassword,
	service.ErrTokenIsInvalid:        app.MsgInvalidToken,
	service.ErrUserNotFound:          app.MsgUserNotFound,
	service.ErrCategoryNotFound:      app.MsgCategoryNotFound,
	service.ErrEntryNotFound:         app.MsgEntryNotFound,
	service.ErrCategoryAlreadyExists: app.MsgCategoryExists,

	store.ErrEmailAlreadyExists:    app.MsgEmailAlreadyRegistered,
	store.ErrUsernameAlreadyExists: app.MsgUsernameAlreadyTaken,
	store.ErrNoUserWasFound:        app.MsgUserNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err, or fallback when
// err carries no known meaning.
func messageFromError(err error, fallback string) string {
	var inUse *service.CategoryInUseError
	if errors.As(err, &inUse) {
		return fmt.Sprintf(app.MsgCategoryInUseFormat, inUse.Count)
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}

// writeServiceError logs err and answers with its mapped status. Server-side
// failures always carry fallback, never the error text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(fallback)
		utils.WriteError(w, fallback, status)
		return
	}

	message := messageFromError(err, fallback)
	log.Warn().Err(err).Int("status", status).Msg(message)
	utils.WriteError(w, message, status)
}
