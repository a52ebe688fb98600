package service

import (
	"context"

	"github.com/nordbooks/backoffice-server/internal/operator/actions"
	"github.com/nordbooks/backoffice-server/internal/statement"
	"github.com/nordbooks/backoffice-server/internal/storage"
	"github.com/nordbooks/backoffice-server/internal/storage/sqlconfig"
)

// ActionProcessor runs an action inside one storage transaction. The operator
// delegator implements it in production.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// StatementService handles bank-statement duplicate checking, import, and
// import history.
type StatementService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewStatementService creates a new StatementService.
func NewStatementService(store *storage.Storage, processor ActionProcessor) *StatementService {
	return &StatementService{storage: store, processor: processor}
}

// CheckDuplicates classifies every candidate row against the organization's
// stored transactions. The stored set is fetched once and every candidate is
// matched against that same snapshot.
func (s *StatementService) CheckDuplicates(ctx context.Context, organizationID int64, rows []statement.ParsedBankTransaction) (*statement.DuplicateReport, error) {
	normalized, err := s.prepare(ctx, organizationID, rows)
	if err != nil {
		return nil, err
	}

	existingRows, err := s.storage.BankTransactions.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	report := statement.CheckBatch(normalized, storedFromStorage(existingRows))
	return &report, nil
}

// ImportStatement persists one reviewed upload through the operator so the
// re-check and the batch insert share a single transaction.
func (s *StatementService) ImportStatement(ctx context.Context, organizationID int64, rows []statement.ParsedBankTransaction, importDuplicates bool) (*ImportResult, error) {
	normalized, err := s.prepare(ctx, organizationID, rows)
	if err != nil {
		return nil, err
	}

	action := &actions.ImportStatement{
		OrganizationID:   organizationID,
		Candidates:       normalized,
		ImportDuplicates: importDuplicates,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	return &ImportResult{
		Report:   action.Report,
		Inserted: action.Inserted,
		Skipped:  action.Skipped,
	}, nil
}

// ImportHistory reconstructs the organization's recent upload batches from
// its stored transactions.
func (s *StatementService) ImportHistory(ctx context.Context, organizationID int64) ([]statement.ImportBatchSummary, error) {
	if organizationID <= 0 {
		return nil, statement.NewValidationError("organizationID must be a positive integer")
	}

	if _, err := s.findOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	rows, err := s.storage.BankTransactions.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	return statement.SummarizeImports(storedFromStorage(rows), statement.DefaultHistoryLimit), nil
}

// prepare runs the shared request validation for check and import: a valid
// organization id and a non-empty candidate list are required before any
// query is issued; then the organization must exist, and every row must
// normalize cleanly.
func (s *StatementService) prepare(ctx context.Context, organizationID int64, rows []statement.ParsedBankTransaction) ([]statement.NormalizedTransaction, error) {
	if organizationID <= 0 {
		return nil, statement.NewValidationError("organizationID must be a positive integer")
	}
	if len(rows) == 0 {
		return nil, statement.NewValidationError("transactions must not be empty")
	}

	org, err := s.findOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	return statement.NormalizeBatch(rows, org.DefaultCurrency)
}

func (s *StatementService) findOrganization(ctx context.Context, organizationID int64) (*sqlconfig.Organization, error) {
	org, err := s.storage.Organizations.FindByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, statement.NewNotFoundError("organization %d not found", organizationID)
	}
	return org, nil
}
