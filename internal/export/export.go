// Package export renders an account statement as a downloadable file.
package export

import (
	"bankist/internal/ledger"
	"bankist/internal/models/accounts"
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

var ErrUnknownFormat = errors.New("unknown statement format")

type Statement struct {
	Account     accounts.Account
	Summary     ledger.Summary
	Rows        []ledger.Row
	GeneratedAt time.Time
}

func NewStatement(account accounts.Account, sorted bool, now time.Time) Statement {
	return Statement{
		Account:     account,
		Summary:     ledger.Summarize(account),
		Rows:        ledger.Rows(account.Movements, sorted),
		GeneratedAt: now,
	}
}

func ContentType(format string) (string, error) {
	switch format {
	case FormatPDF:
		return "application/pdf", nil
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func FileName(st Statement, format string) string {
	return fmt.Sprintf("statement_%s_%s.%s", st.Account.Username, st.GeneratedAt.Format("20060102"), format)
}

func Write(w io.Writer, format string, st Statement) error {
	switch format {
	case FormatPDF:
		return WritePDF(w, st)
	case FormatXLSX:
		return WriteXLSX(w, st)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func totals(st Statement) [][2]string {
	return [][2]string{
		{"Balance", st.Summary.Balance.String()},
		{"In", st.Summary.TotalDeposits.String()},
		{"Out", st.Summary.TotalWithdrawals.String()},
		{"Interest", st.Summary.TotalInterest.String()},
	}
}
