package api

import (
	"bankist/internal/errs"
	"bankist/internal/export"
	"bankist/pkg/dto"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type ResponseType struct {
	LogMsg string
	Body   string
	Code   int
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrSelfTransfer),
		errors.Is(err, export.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrCredentialMismatch),
		errors.Is(err, errs.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrLoanRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(prefix string, err error) ResponseType {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}

	return ResponseType{
		LogMsg: fmt.Sprintf("%s - %v", prefix, err),
		Code:   code,
		Body:   errorBody(code, message),
	}
}

func badRequest(prefix string, err error) ResponseType {
	return ResponseType{
		LogMsg: fmt.Sprintf("%s: cannot decode request JSON body - %v", prefix, err),
		Code:   http.StatusBadRequest,
		Body:   errorBody(http.StatusBadRequest, err.Error()),
	}
}

func errorBody(code int, message string) string {
	body, err := json.Marshal(dto.Error{Code: code, Message: message})
	if err != nil {
		return message
	}

	return string(body)
}

func jsonResponse(w http.ResponseWriter, prefix string, code int, value any) ResponseType {
	response, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: cannot encode response JSON body - %v", prefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	return ResponseType{
		Code: code,
		Body: string(response),
	}
}
