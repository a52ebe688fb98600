package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BankTransaction represents an imported bank-statement row.
type BankTransaction struct {
	ID              uuid.UUID       `db:"id"`
	OrganizationID  int64           `db:"organization_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Reference       string          `db:"reference"`
	AccountNumber   string          `db:"account_number"`
	Currency        string          `db:"currency"`
	Fingerprint     string          `db:"fingerprint"`
	CreatedAt       time.Time       `db:"created_at"`
}

// BankTransactionCreate is the input for inserting a new bank transaction.
type BankTransactionCreate struct {
	OrganizationID  int64
	TransactionDate time.Time
	Amount          decimal.Decimal
	Description     string
	Reference       string
	AccountNumber   string
	Currency        string
	Fingerprint     string
}

// IBankTransactionTable defines the interface for bank transaction storage
// operations. This abstraction allows swapping the implementation (e.g. Bob)
// without changing callers.
//
//go:generate mockery --name IBankTransactionTable --output mock_IBankTransactionTable.go
type IBankTransactionTable interface {
	ListByOrganization(ctx context.Context, organizationID int64) ([]*BankTransaction, error)
	InsertBatch(ctx context.Context, creates []*BankTransactionCreate) (int, error)
}
