package actions

import (
	"context"

	"github.com/nordbooks/backoffice-server/internal/statement"
	"github.com/nordbooks/backoffice-server/internal/storage"
	"github.com/nordbooks/backoffice-server/internal/storage/sqlconfig"
)

// ImportStatement persists one reviewed statement upload. It re-runs the
// duplicate check against the rows visible inside the transaction (the
// snapshot may be newer than the one the user reviewed) and batch-inserts the
// accepted rows. Duplicates are skipped unless the caller confirmed them.
type ImportStatement struct {
	OrganizationID   int64
	Candidates       []statement.NormalizedTransaction
	ImportDuplicates bool

	// Populated by Perform.
	Report   statement.DuplicateReport
	Inserted int
	Skipped  int

	IAction
}

func (a *ImportStatement) Perform(ctx context.Context, writer *storage.Writer) error {
	org, err := writer.Organizations.FindByID(ctx, a.OrganizationID)
	if err != nil {
		return err
	}
	if org == nil {
		return statement.NewNotFoundError("organization %d not found", a.OrganizationID)
	}

	rows, err := writer.BankTransactions.ListByOrganization(ctx, a.OrganizationID)
	if err != nil {
		return err
	}

	existing := make([]statement.StoredTransaction, len(rows))
	for i, row := range rows {
		existing[i] = statement.StoredTransaction{
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

	a.Report = statement.CheckBatch(a.Candidates, existing)

	var creates []*sqlconfig.BankTransactionCreate
	for i, candidate := range a.Candidates {
		if a.Report.Results[i].IsDuplicate && !a.ImportDuplicates {
			continue
		}
		creates = append(creates, &sqlconfig.BankTransactionCreate{
			OrganizationID:  a.OrganizationID,
			TransactionDate: candidate.TransactionDate,
			Amount:          candidate.Amount,
			Description:     candidate.Description,
			Reference:       candidate.Reference,
			AccountNumber:   candidate.AccountNumber,
			Currency:        candidate.Currency,
			Fingerprint:     candidate.Fingerprint(a.OrganizationID),
		})
	}

	// The fingerprint index may reject rows a concurrent import won the race
	// on, so the insert count is authoritative, not len(creates).
	inserted, err := writer.BankTransactions.InsertBatch(ctx, creates)
	if err != nil {
		return err
	}

	a.Inserted = inserted
	a.Skipped = len(a.Candidates) - inserted
	return nil
}
