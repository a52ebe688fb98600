package statement

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultHistoryLimit caps the number of synthetic import batches returned.
const DefaultHistoryLimit = 20

// ImportBatchSummary is a synthetic "upload session" reconstructed from
// stored rows. No upload identifier is persisted, so rows are grouped by
// (import day, account number, currency); two unrelated uploads for the same
// account on the same calendar day merge into one batch. That imprecision is
// accepted for a display-only view.
type ImportBatchSummary struct {
	ImportDay        time.Time
	AccountNumber    string
	Currency         string
	TransactionCount int
	TotalCredits     decimal.Decimal
	TotalDebits      decimal.Decimal
	PeriodStart      time.Time
	PeriodEnd        time.Time
}

type batchKey struct {
	day      time.Time
	account  string
	currency string
}

// SummarizeImports groups stored rows into import batches, newest import
// first, capped at limit (DefaultHistoryLimit when limit is not positive).
// TotalCredits sums the positive amounts, TotalDebits the absolute value of
// the negative ones; PeriodStart/PeriodEnd span the transaction dates the
// statement covered.
func SummarizeImports(rows []StoredTransaction, limit int) []ImportBatchSummary {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	groups := make(map[batchKey]*ImportBatchSummary)
	for _, row := range rows {
		key := batchKey{
			day:      truncateToDay(row.CreatedAt),
			account:  row.AccountNumber,
			currency: row.Currency,
		}

		summary, ok := groups[key]
		if !ok {
			summary = &ImportBatchSummary{
				ImportDay:     key.day,
				AccountNumber: row.AccountNumber,
				Currency:      row.Currency,
				PeriodStart:   row.TransactionDate,
				PeriodEnd:     row.TransactionDate,
			}
			groups[key] = summary
		}

		summary.TransactionCount++
		if row.Amount.IsNegative() {
			summary.TotalDebits = summary.TotalDebits.Add(row.Amount.Abs())
		} else {
			summary.TotalCredits = summary.TotalCredits.Add(row.Amount)
		}
		if row.TransactionDate.Before(summary.PeriodStart) {
			summary.PeriodStart = row.TransactionDate
		}
		if row.TransactionDate.After(summary.PeriodEnd) {
			summary.PeriodEnd = row.TransactionDate
		}
	}

	summaries := make([]ImportBatchSummary, 0, len(groups))
	for _, summary := range groups {
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].ImportDay.Equal(summaries[j].ImportDay) {
			return summaries[i].ImportDay.After(summaries[j].ImportDay)
		}
		if summaries[i].AccountNumber != summaries[j].AccountNumber {
			return summaries[i].AccountNumber < summaries[j].AccountNumber
		}
		return summaries[i].Currency < summaries[j].Currency
	})

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries
}

func truncateToDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
