package bankimport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordbooks/backoffice-server/internal/statement"
)

// DecimalString carries a decimal amount that clients may send either as a
// JSON string or as a JSON number. Bank exports disagree, so both are
// accepted; parsing and rounding happen in the statement package.
type DecimalString string

func (d *DecimalString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DecimalString(s)
		return nil
	}
	*d = DecimalString(trimmed)
	return nil
}

func (d DecimalString) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
		Description: "Signed decimal amount, accepted as a string or a number",
	}
}

// BankTransaction is the API request model for one parsed statement row.
type BankTransaction struct {
	TransactionDate string        `json:"transactionDate,omitempty" doc:"Transaction date, e.g. 2024-01-15 or 15.01.2024"`
	Amount          DecimalString `json:"amount,omitempty" doc:"Signed decimal amount; positive = credit, negative = debit"`
	Description     string        `json:"description,omitempty" doc:"Statement line text"`
	Reference       string        `json:"reference,omitempty" doc:"Bank-assigned reference, when the export carries one"`
	AccountNumber   string        `json:"accountNumber,omitempty" doc:"Bank account the line belongs to"`
	Currency        string        `json:"currency,omitempty" doc:"ISO currency code, defaults to the organization default"`
}

// DuplicateCheckResult is the API response model for one classified row.
type DuplicateCheckResult struct {
	IsDuplicate          bool   `json:"isDuplicate" doc:"Whether the row looks like an already stored transaction"`
	MatchedTransactionID string `json:"matchedTransactionId,omitempty" doc:"UUID of the stored row it matched"`
	Reason               string `json:"reason,omitempty" doc:"Match rule that fired: exact-reference, exact-description, or date-amount"`
}

// DuplicateReportBody is the API response model for a batch duplicate check.
type DuplicateReportBody struct {
	Total      int                    `json:"total" doc:"Number of rows checked"`
	Duplicates int                    `json:"duplicates" doc:"Rows classified as duplicates"`
	Unique     int                    `json:"unique" doc:"Rows not matching any stored transaction"`
	Results    []DuplicateCheckResult `json:"results" doc:"Per-row detail, in request order"`
}

func toParsedRows(rows []BankTransaction) []statement.ParsedBankTransaction {
	parsed := make([]statement.ParsedBankTransaction, len(rows))
	for i, row := range rows {
		parsed[i] = statement.ParsedBankTransaction{
			TransactionDate: row.TransactionDate,
			Amount:          string(row.Amount),
			Description:     row.Description,
			Reference:       row.Reference,
			AccountNumber:   row.AccountNumber,
			Currency:        row.Currency,
		}
	}
	return parsed
}

func fromParsedRows(rows []statement.ParsedBankTransaction) []BankTransaction {
	converted := make([]BankTransaction, len(rows))
	for i, row := range rows {
		converted[i] = BankTransaction{
			TransactionDate: row.TransactionDate,
			Amount:          DecimalString(row.Amount),
			Description:     row.Description,
			Reference:       row.Reference,
			AccountNumber:   row.AccountNumber,
			Currency:        row.Currency,
		}
	}
	return converted
}

func reportBody(report statement.DuplicateReport) DuplicateReportBody {
	body := DuplicateReportBody{
		Total:      report.Total,
		Duplicates: report.Duplicates,
		Unique:     report.Unique,
		Results:    make([]DuplicateCheckResult, len(report.Results)),
	}
	for i, result := range report.Results {
		converted := DuplicateCheckResult{
			IsDuplicate: result.IsDuplicate,
			Reason:      string(result.Reason),
		}
		if result.IsDuplicate {
			converted.MatchedTransactionID = result.MatchedTransactionID.String()
		}
		body.Results[i] = converted
	}
	return body
}

// translateError maps service errors onto HTTP statuses: validation → 400,
// missing organization → 404, anything else → 500 with a generic message.
func translateError(err error, fallback string) error {
	switch {
	case statement.IsValidation(err):
		return huma.NewError(http.StatusBadRequest, err.Error())
	case statement.IsNotFound(err):
		return huma.NewError(http.StatusNotFound, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, fallback, err)
	}
}
