package handlers

import (
	"bankist/internal/api"
	bank "bankist/internal/services"
	"bankist/internal/session"
	"bankist/internal/store"
	"bankist/pkg/logger"
	"net/http"
)

type Handler struct {
	Store     store.Store
	Bank      *bank.Bank
	Sessions  *session.Manager
	SecretKey string
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, response := api.GetUsernameFromAuthHeader(r, h.Sessions, h.SecretKey)
	if response.Code != 0 {
		sendResponse(response, w)
		return "", false
	}

	return username, true
}

type Login Handler

func (ch *Login) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	response := api.Login(w, r, ch.Store, ch.Sessions, ch.SecretKey)

	sendResponse(response, w)
}

type Account Handler

func (ch *Account) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username, ok := (*Handler)(ch).authorize(w, r)
	if !ok {
		return
	}

	response := api.GetSummary(w, r, username, ch.Bank)

	sendResponse(response, w)
}

type Movements Handler

func (ch *Movements) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username, ok := (*Handler)(ch).authorize(w, r)
	if !ok {
		return
	}

	response := api.GetMovements(w, r, username, ch.Bank)

	sendResponse(response, w)
}

type Statement Handler

func (ch *Statement) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username, ok := (*Handler)(ch).authorize(w, r)
	if !ok {
		return
	}

	response := api.GetStatement(w, r, username, ch.Bank)

	sendResponse(response, w)
}

type Transfer Handler

func (ch *Transfer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username, ok := (*Handler)(ch).authorize(w, r)
	if !ok {
		return
	}

	response := api.Transfer(w, r, username, ch.Bank)

	sendResponse(response, w)
}

type Loan Handler

func (ch *Loan) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username, ok := (*Handler)(ch).authorize(w, r)
	if !ok {
		return
	}

	response := api.RequestLoan(w, r, username, ch.Bank)

	sendResponse(response, w)
}

type Close Handler

func (ch *Close) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	username, ok := (*Handler)(ch).authorize(w, r)
	if !ok {
		return
	}

	response := api.CloseAccount(w, r, username, ch.Bank, ch.Sessions)

	sendResponse(response, w)
}

type Stats Handler

func (ch *Stats) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if _, ok := (*Handler)(ch).authorize(w, r); !ok {
		return
	}

	response := api.GetStats(w, r, ch.Bank)

	sendResponse(response, w)
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func sendResponse(res api.ResponseType, writer http.ResponseWriter) {
	if len(res.LogMsg) > 0 {
		if res.Code >= http.StatusInternalServerError {
			logger.Log.Error(res.LogMsg, logger.Int("code", res.Code))
		} else {
			logger.Log.Info(res.LogMsg, logger.Int("code", res.Code))
		}
	}

	if len(res.Body) > 0 && writer.Header().Get("Content-Type") == "" {
		writer.Header().Set("Content-Type", "application/json")
	}

	if res.Code > 0 {
		writer.WriteHeader(res.Code)
	}

	if len(res.Body) > 0 {
		writer.Write([]byte(res.Body))
	}
}
