package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/nordbooks/backoffice-server/internal/config"
	"github.com/nordbooks/backoffice-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB               *sql.DB
	bdb              bob.DB
	BankTransactions sqlconfig.IBankTransactionTable
	Organizations    sqlconfig.IOrganizationTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bdb := bob.NewDB(db)
	bankTransactions := sqlconfig.NewBankTransactionsTable(bdb)
	organizations := sqlconfig.NewOrganizationsTable(bdb)

	return &Storage{
		DB:               db,
		bdb:              bdb,
		BankTransactions: &bankTransactions,
		Organizations:    &organizations,
	}
}

// Write opens a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
