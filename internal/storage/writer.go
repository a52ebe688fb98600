package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/nordbooks/backoffice-server/internal/storage/sqlconfig"
)

// Writer bundles table clients bound to one open transaction.
type Writer struct {
	tx               bob.Tx
	BankTransactions sqlconfig.IBankTransactionTable
	Organizations    sqlconfig.IOrganizationTable
}

func NewWriter(tx bob.Tx) Writer {
	bankTransactions := sqlconfig.NewBankTransactionsTable(tx)
	organizations := sqlconfig.NewOrganizationsTable(tx)
	return Writer{
		tx:               tx,
		BankTransactions: &bankTransactions,
		Organizations:    &organizations,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
