package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"careerhub/internal/common"
)

type errorBody struct {
	Error  string            `json:"error"`
	Code   common.Code       `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorObserver is notified of every error response, keyed by code.
type ErrorObserver interface {
	ObserveError(code common.Code)
}

var observer ErrorObserver

func SetErrorObserver(o ErrorObserver) {
	observer = o
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = common.NewError(common.CodeInternal, "internal error", err)
	}
	if observer != nil {
		observer.ObserveError(appErr.Code)
	}
	JSON(w, statusFor(appErr.Code), errorBody{Error: appErr.Message, Code: appErr.Code, Fields: appErr.Fields})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
