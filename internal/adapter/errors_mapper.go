package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-diary/models"
	"github.com/go-resty/resty/v2"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := ""
	if body, ok := resp.Error().(*models.ErrorResponse); ok && body != nil {
		message = body.Error
	}
	if message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	kind, ok := statusErrorMap[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &APIError{StatusCode: resp.StatusCode(), Message: message, kind: kind}
}
