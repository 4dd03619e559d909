package api

import (
	bank "bankist/internal/services"
	"bankist/pkg/dto"
	"encoding/json"
	"fmt"
	"net/http"
)

const TransferErrPrefix = "Error by transfer"

func Transfer(w http.ResponseWriter, r *http.Request, username string, b *bank.Bank) ResponseType {
	var request dto.Transfer

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&request); err != nil {
		return badRequest(TransferErrPrefix, err)
	}

	state, err := b.Transfer(r.Context(), username, request.To, request.Amount.Decimal)
	if err != nil {
		return errorResponse(fmt.Sprintf("%s from '%s' to '%s'", TransferErrPrefix, username, request.To), err)
	}

	response := jsonResponse(w, TransferErrPrefix, http.StatusOK, summaryFromState(state))
	response.LogMsg = fmt.Sprintf("transferred %s from '%s' to '%s'", request.Amount.Euro(), username, request.To)

	return response
}

const LoanErrPrefix = "Error by loan"

func RequestLoan(w http.ResponseWriter, r *http.Request, username string, b *bank.Bank) ResponseType {
	var request dto.Loan

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&request); err != nil {
		return badRequest(LoanErrPrefix, err)
	}

	state, err := b.RequestLoan(r.Context(), username, request.Amount.Decimal)
	if err != nil {
		return errorResponse(fmt.Sprintf("%s for '%s'", LoanErrPrefix, username), err)
	}

	response := jsonResponse(w, LoanErrPrefix, http.StatusOK, summaryFromState(state))
	response.LogMsg = fmt.Sprintf("granted loan %s to '%s'", request.Amount.Euro(), username)

	return response
}
