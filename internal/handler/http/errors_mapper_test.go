package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validators.ErrPasswordTooShort, http.StatusBadRequest},
		{fmt.Errorf("outer: %w", validators.ErrEntryFieldsRequired), http.StatusBadRequest},
		{store.ErrEmailAlreadyExists, http.StatusBadRequest},
		{service.ErrCategoryAlreadyExists, http.StatusBadRequest},
		{&service.CategoryInUseError{Count: 1}, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrTokenIsInvalid, http.StatusForbidden},
		{service.ErrEntryNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: %w", store.ErrPersistence, store.ErrScanningRow), http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, app.MsgUsernameAlreadyTaken, messageFromError(fmt.Errorf("x: %w", store.ErrUsernameAlreadyExists), "fallback"))
	assert.Equal(t, "Cannot delete category with 3 entries. Please delete the entries first.",
		messageFromError(fmt.Errorf("delete: %w", &service.CategoryInUseError{Count: 3}), "fallback"))
	assert.Equal(t, "fallback", messageFromError(errors.New("???"), "fallback"))
}

func TestWriteServiceError_HidesInternalText(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeServiceError(rec, req, fmt.Errorf("%w: open /var/data/users.json: permission denied", store.ErrPersistence), app.MsgFailedToGetEntries)

	assertError(t, rec, http.StatusInternalServerError, app.MsgFailedToGetEntries)
	assert.NotContains(t, rec.Body.String(), "users.json")
}
