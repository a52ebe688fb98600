package statement

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are the transaction date formats seen across bank exports.
// Day-first layouts cover the Danish exports; RFC3339 covers API clients that
// send full timestamps (the time component is discarded).
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02-01-2006",
	"02.01.2006",
	"02/01/2006",
}

// Normalize coerces one raw statement row into canonical comparable form.
// defaultCurrency fills in the organization default when the row carries no
// currency of its own.
func Normalize(raw ParsedBankTransaction, defaultCurrency string) (NormalizedTransaction, error) {
	amount, err := parseAmount(raw.Amount)
	if err != nil {
		return NormalizedTransaction{}, err
	}

	date, err := parseDate(raw.TransactionDate)
	if err != nil {
		return NormalizedTransaction{}, err
	}

	description := strings.TrimSpace(raw.Description)
	currency := strings.ToUpper(strings.TrimSpace(raw.Currency))
	if currency == "" {
		currency = strings.ToUpper(strings.TrimSpace(defaultCurrency))
	}

	return NormalizedTransaction{
		TransactionDate:       date,
		Amount:                amount,
		Description:           description,
		ComparableDescription: NormalizeDescription(description),
		Reference:             strings.TrimSpace(raw.Reference),
		AccountNumber:         strings.TrimSpace(raw.AccountNumber),
		Currency:              currency,
	}, nil
}

// NormalizeBatch normalizes every row, aggregating row-level failures into a
// single ValidationError so a bad row rejects the whole batch instead of
// silently shrinking it. Row indexes in the message are zero-based, matching
// the positions in the request.
func NormalizeBatch(rows []ParsedBankTransaction, defaultCurrency string) ([]NormalizedTransaction, error) {
	normalized := make([]NormalizedTransaction, 0, len(rows))
	var problems []string

	for i, row := range rows {
		n, err := Normalize(row, defaultCurrency)
		if err != nil {
			problems = append(problems, "row "+strconv.Itoa(i)+": "+err.Error())
			continue
		}
		normalized = append(normalized, n)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Message: strings.Join(problems, "; ")}
	}
	return normalized, nil
}

// NormalizeDescription produces the comparison form of a description:
// trimmed, case-folded, runs of whitespace collapsed to single spaces.
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// parseAmount parses a loosely formatted decimal amount and rounds it to two
// places, half away from zero. Accepts both "1,234.56" and the European
// "1.234,56"; a lone comma is treated as the decimal separator ("1234,56").
func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if cleaned == "" {
		return decimal.Decimal{}, NewValidationError("amount is required")
	}

	comma := strings.LastIndex(cleaned, ",")
	dot := strings.LastIndex(cleaned, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		// 1.234,56 — dot is a thousand separator
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		// 1,234.56 — comma is a thousand separator
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case comma >= 0:
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, NewValidationError("cannot parse amount %q", s)
	}
	return amount.Round(2), nil
}

// parseDate parses a transaction date in any accepted layout and truncates it
// to a date-only value in UTC.
func parseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, NewValidationError("transaction date is required")
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, NewValidationError("cannot parse transaction date %q", s)
}
