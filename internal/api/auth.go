package api

import (
	"bankist/internal/auth"
	"bankist/internal/errs"
	"bankist/internal/session"
	"bankist/internal/store"
	"bankist/pkg/dto"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetUsernameFromAuthHeader resolves the bearer token to a live session. A
// non-zero Code in the response means the request must be rejected with it.
func GetUsernameFromAuthHeader(r *http.Request, sessions *session.Manager, secretKey string) (string, ResponseType) {
	claims, err := auth.GetClaimsFromAuthHeader(r.Header.Get("Authorization"), secretKey)
	if err != nil {
		return "", ResponseType{
			LogMsg: fmt.Sprintf("error by Authorization - %v", err),
			Code:   http.StatusUnauthorized,
			Body:   errorBody(http.StatusUnauthorized, errs.ErrSessionNotFound.Error()),
		}
	}

	username, err := sessions.Get(claims.SessionID())
	if err != nil {
		return "", errorResponse("error by Authorization", err)
	}

	if username != claims.Username {
		return "", errorResponse("error by Authorization", errs.ErrSessionNotFound)
	}

	return username, ResponseType{}
}

const LoginErrPrefix = "Error by login"

func Login(w http.ResponseWriter, r *http.Request, s store.Store, sessions *session.Manager, secretKey string) ResponseType {
	requestData := dto.Login{}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&requestData); err != nil {
		return badRequest(LoginErrPrefix, err)
	}

	if err := requestData.IsValid(); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s: empty required data", LoginErrPrefix),
			Code:   http.StatusBadRequest,
			Body:   errorBody(http.StatusBadRequest, err.Error()),
		}
	}

	sessionID, account, err := sessions.Login(r.Context(), s, requestData.Username, string(requestData.Pin))
	if err != nil {
		return errorResponse(fmt.Sprintf("%s '%s'", LoginErrPrefix, requestData.Username), err)
	}

	token, err := auth.BuildJWTString(account.Username, sessionID, secretKey)
	if err != nil {
		sessions.End(sessionID)

		return ResponseType{
			LogMsg: fmt.Sprintf("%s: unable create auth token - %s", LoginErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))

	response := jsonResponse(w, LoginErrPrefix, http.StatusOK, summaryFromAccount(account))
	response.LogMsg = fmt.Sprintf("logged in '%s'", account.Username)

	return response
}
