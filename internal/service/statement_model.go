package service

import (
	"github.com/nordbooks/backoffice-server/internal/statement"
	"github.com/nordbooks/backoffice-server/internal/storage/sqlconfig"
)

// ImportResult is the outcome of persisting one statement upload.
type ImportResult struct {
	Report   statement.DuplicateReport
	Inserted int
	Skipped  int
}

func storedFromStorage(rows []*sqlconfig.BankTransaction) []statement.StoredTransaction {
	converted := make([]statement.StoredTransaction, len(rows))
	for i, row := range rows {
		converted[i] = statement.StoredTransaction{
			ID:              row.ID,
			OrganizationID:  row.OrganizationID,
			TransactionDate: row.TransactionDate,
			Amount:          row.Amount,
			Description:     row.Description,
			Reference:       row.Reference,
			AccountNumber:   row.AccountNumber,
			Currency:        row.Currency,
			CreatedAt:       row.CreatedAt,
		}
	}
	return converted
}
