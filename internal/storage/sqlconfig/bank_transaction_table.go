package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IBankTransactionTable = (*BankTransactionsTable)(nil)

var bankTransactionColumns = []string{
	"id",
	"organization_id",
	"transaction_date",
	"amount",
	"description",
	"reference",
	"account_number",
	"currency",
	"fingerprint",
	"created_at",
}

// BankTransactionsTable provides access to the bank_transactions table.
type BankTransactionsTable struct {
	exec bob.Executor
}

// NewBankTransactionsTable creates a BankTransactionsTable over the given
// executor (database handle or transaction).
func NewBankTransactionsTable(exec bob.Executor) BankTransactionsTable {
	return BankTransactionsTable{exec: exec}
}

// ListByOrganization returns every stored transaction for one organization,
// most recently imported first. The duplicate checker needs the full set as a
// single snapshot, so there is no pagination here.
func (t *BankTransactionsTable) ListByOrganization(ctx context.Context, organizationID int64) ([]*BankTransaction, error) {
	columns := make([]any, len(bankTransactionColumns))
	for i, column := range bankTransactionColumns {
		columns[i] = column
	}

	query := psql.Select(
		sm.Columns(columns...),
		sm.From("bank_transactions"),
		sm.Where(psql.Quote("organization_id").EQ(psql.Arg(organizationID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*BankTransaction]())
}

// InsertBatch inserts the given rows in one statement and returns how many
// were actually inserted. Rows whose (organization_id, fingerprint) already
// exists are skipped via ON CONFLICT DO NOTHING, which is what makes
// concurrent overlapping imports converge.
func (t *BankTransactionsTable) InsertBatch(ctx context.Context, creates []*BankTransactionCreate) (int, error) {
	if len(creates) == 0 {
		return 0, nil
	}

	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("bank_transactions",
			"organization_id",
			"transaction_date",
			"amount",
			"description",
			"reference",
			"account_number",
			"currency",
			"fingerprint",
		),
		im.OnConflict("organization_id", "fingerprint").DoNothing(),
	}
	for _, create := range creates {
		queryMods = append(queryMods, im.Values(psql.Arg(
			create.OrganizationID,
			create.TransactionDate,
			create.Amount,
			create.Description,
			create.Reference,
			create.AccountNumber,
			create.Currency,
			create.Fingerprint,
		)))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Insert(queryMods...))
	if err != nil {
		return 0, err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}
