package api

import (
	"bankist/internal/export"
	"bankist/internal/models/accounts"
	"bankist/internal/models/money"
	bank "bankist/internal/services"
	"bankist/internal/session"
	"bankist/pkg/dto"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

func summaryFromState(state bank.State) dto.Summary {
	return dto.Summary{
		ID:           state.Account.ID,
		Owner:        state.Account.Owner,
		Username:     state.Account.Username,
		Welcome:      fmt.Sprintf("Welcome back, %s", state.Account.FirstName()),
		Type:         state.Account.Type,
		InterestRate: money.New(state.Account.InterestRate),
		Balance:      money.New(state.Summary.Balance),
		In:           money.New(state.Summary.TotalDeposits),
		Out:          money.New(state.Summary.TotalWithdrawals),
		Interest:     money.New(state.Summary.TotalInterest),
		Insights:     insightsFromState(state),
	}
}

func insightsFromState(state bank.State) dto.Insights {
	result := dto.Insights{
		Deposits:    state.Insights.Deposits,
		Withdrawals: state.Insights.Withdrawals,
		Largest:     money.New(state.Insights.Largest),
	}

	if state.Insights.HasLargeMovement {
		ago := state.Insights.LastLargeAgo
		result.LastLargeMovementAgo = &ago
	}

	return result
}

func summaryFromAccount(account accounts.Account) dto.Summary {
	return summaryFromState(bank.NewState(account))
}

const SummaryErrPrefix = "Error by get account summary"

func GetSummary(w http.ResponseWriter, r *http.Request, username string, b *bank.Bank) ResponseType {
	state, err := b.Summary(r.Context(), username)
	if err != nil {
		return errorResponse(SummaryErrPrefix, err)
	}

	return jsonResponse(w, SummaryErrPrefix, http.StatusOK, summaryFromState(state))
}

func sortedParam(r *http.Request) bool {
	sorted, err := strconv.ParseBool(r.URL.Query().Get("sort"))
	if err != nil {
		return false
	}

	return sorted
}

const MovementsErrPrefix = "Error by get movements"

func GetMovements(w http.ResponseWriter, r *http.Request, username string, b *bank.Bank) ResponseType {
	rows, err := b.Movements(r.Context(), username, sortedParam(r))
	if err != nil {
		return errorResponse(MovementsErrPrefix, err)
	}

	result := make([]dto.Movement, len(rows))
	for i, row := range rows {
		result[i] = dto.Movement{
			Index:  row.Index,
			Type:   row.Kind,
			Amount: money.New(row.Amount),
		}
	}

	return jsonResponse(w, MovementsErrPrefix, http.StatusOK, result)
}

const StatementErrPrefix = "Error by export statement"

func GetStatement(w http.ResponseWriter, r *http.Request, username string, b *bank.Bank) ResponseType {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatPDF
	}

	contentType, err := export.ContentType(format)
	if err != nil {
		return errorResponse(StatementErrPrefix, err)
	}

	state, err := b.Summary(r.Context(), username)
	if err != nil {
		return errorResponse(StatementErrPrefix, err)
	}

	statement := export.NewStatement(state.Account, sortedParam(r), time.Now())

	var buf bytes.Buffer
	if err := export.Write(&buf, format, statement); err != nil {
		return ResponseType{
			LogMsg: fmt.Sprintf("%s - %v", StatementErrPrefix, err),
			Code:   http.StatusInternalServerError,
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(statement, format)))

	return ResponseType{
		Code: http.StatusOK,
		Body: buf.String(),
	}
}

const CloseErrPrefix = "Error by close account"

// CloseAccount ends every session of the closed account, including the
// caller's own.
func CloseAccount(w http.ResponseWriter, r *http.Request, username string, b *bank.Bank, sessions *session.Manager) ResponseType {
	var request dto.Close

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&request); err != nil {
		return badRequest(CloseErrPrefix, err)
	}

	ended, err := b.CloseAccount(r.Context(), username, request.Username, string(request.Pin))
	if err != nil {
		return errorResponse(CloseErrPrefix, err)
	}

	if ended {
		sessions.EndForUsername(username)
	}

	response := jsonResponse(w, CloseErrPrefix, http.StatusOK, dto.Message{Message: "account closed"})
	response.LogMsg = fmt.Sprintf("closed account '%s'", username)

	return response
}
