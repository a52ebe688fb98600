package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nordbooks/backoffice-server/internal/operator/actions"
	"github.com/nordbooks/backoffice-server/internal/statement"
	"github.com/nordbooks/backoffice-server/internal/storage"
	"github.com/nordbooks/backoffice-server/internal/storage/sqlconfig"
)

const testOrgID int64 = 42

type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newStatementTestService(t *testing.T) (*StatementService, *sqlconfig.MockIOrganizationTable, *sqlconfig.MockIBankTransactionTable, *mockActionProcessor) {
	t.Helper()
	mockOrgs := sqlconfig.NewMockIOrganizationTable(t)
	mockTxns := sqlconfig.NewMockIBankTransactionTable(t)
	mockProcessor := new(mockActionProcessor)
	store := &storage.Storage{
		BankTransactions: mockTxns,
		Organizations:    mockOrgs,
	}
	svc := NewStatementService(store, mockProcessor)
	return svc, mockOrgs, mockTxns, mockProcessor
}

func testOrganization() *sqlconfig.Organization {
	return &sqlconfig.Organization{ID: testOrgID, Name: "Nordbooks ApS", DefaultCurrency: "DKK"}
}

func parsedRow(date, amount, reference, description string) statement.ParsedBankTransaction {
	return statement.ParsedBankTransaction{
		TransactionDate: date,
		Amount:          amount,
		Reference:       reference,
		Description:     description,
	}
}

func storedRow(date time.Time, amount, reference, description string) *sqlconfig.BankTransaction {
	return &sqlconfig.BankTransaction{
		ID:              uuid.Must(uuid.NewV4()),
		OrganizationID:  testOrgID,
		TransactionDate: date,
		Amount:          decimal.RequireFromString(amount),
		Description:     description,
		Reference:       reference,
		Currency:        "DKK",
		CreatedAt:       date,
	}
}

// -- CheckDuplicates tests --

func TestCheckDuplicates_MissingOrganizationID(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)

	report, err := svc.CheckDuplicates(context.Background(), 0, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "", "Payment"),
	})

	assert.Error(t, err)
	assert.True(t, statement.IsValidation(err))
	assert.Nil(t, report)
	mockOrgs.AssertNotCalled(t, "FindByID")
	mockTxns.AssertNotCalled(t, "ListByOrganization")
}

func TestCheckDuplicates_EmptyTransactions(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)

	report, err := svc.CheckDuplicates(context.Background(), testOrgID, nil)

	assert.Error(t, err)
	assert.True(t, statement.IsValidation(err))
	assert.Nil(t, report)
	mockOrgs.AssertNotCalled(t, "FindByID")
	mockTxns.AssertNotCalled(t, "ListByOrganization")
}

func TestCheckDuplicates_OrganizationNotFound(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(nil, nil)

	report, err := svc.CheckDuplicates(context.Background(), testOrgID, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "", "Payment"),
	})

	assert.Error(t, err)
	assert.True(t, statement.IsNotFound(err))
	assert.Nil(t, report)
	mockTxns.AssertNotCalled(t, "ListByOrganization")
}

func TestCheckDuplicates_BadRowRejectsBatch(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(testOrganization(), nil)

	report, err := svc.CheckDuplicates(context.Background(), testOrgID, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "", "Payment"),
		parsedRow("2024-01-02", "not-an-amount", "", "Broken"),
	})

	assert.Error(t, err)
	assert.True(t, statement.IsValidation(err))
	assert.Contains(t, err.Error(), "row 1")
	assert.Nil(t, report)
	mockTxns.AssertNotCalled(t, "ListByOrganization")
}

func TestCheckDuplicates_SingleQuerySnapshot(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(testOrganization(), nil)
	mockTxns.EXPECT().ListByOrganization(mock.Anything, testOrgID).
		Return([]*sqlconfig.BankTransaction{
			storedRow(day, "-50.00", "REF002", "Card payment"),
		}, nil).Once()

	report, err := svc.CheckDuplicates(context.Background(), testOrgID, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "REF002", "Card payment"),
		parsedRow("2024-01-01", "100.00", "", "New income"),
		parsedRow("2024-01-02", "-10.00", "", "Fee"),
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 2, report.Unique)
	assert.Len(t, report.Results, 3)
	assert.Equal(t, statement.ReasonExactReference, report.Results[0].Reason)
	assert.False(t, report.Results[1].IsDuplicate)
	mockTxns.AssertNumberOfCalls(t, "ListByOrganization", 1)
}

func TestCheckDuplicates_StorageError(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(testOrganization(), nil)
	mockTxns.EXPECT().ListByOrganization(mock.Anything, testOrgID).
		Return(nil, errors.New("database unavailable"))

	report, err := svc.CheckDuplicates(context.Background(), testOrgID, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "", "Payment"),
	})

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, report)
}

// -- ImportStatement tests --

func TestImportStatement_Success(t *testing.T) {
	svc, mockOrgs, _, mockProcessor := newStatementTestService(t)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(testOrganization(), nil)
	mockProcessor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.ImportStatement)
		return ok && action.OrganizationID == testOrgID && len(action.Candidates) == 2 && !action.ImportDuplicates
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.ImportStatement)
		action.Report = statement.DuplicateReport{Total: 2, Duplicates: 1, Unique: 1}
		action.Inserted = 1
		action.Skipped = 1
	}).Return(nil)

	result, err := svc.ImportStatement(context.Background(), testOrgID, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "REF002", "Card payment"),
		parsedRow("2024-01-01", "100.00", "", "New income"),
	}, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.Report.Total)
	mockProcessor.AssertExpectations(t)
}

func TestImportStatement_ValidationBeforeEnqueue(t *testing.T) {
	svc, _, _, mockProcessor := newStatementTestService(t)

	result, err := svc.ImportStatement(context.Background(), -1, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "", "Payment"),
	}, false)

	assert.Error(t, err)
	assert.True(t, statement.IsValidation(err))
	assert.Nil(t, result)
	mockProcessor.AssertNotCalled(t, "Process")
}

func TestImportStatement_ProcessorError(t *testing.T) {
	svc, mockOrgs, _, mockProcessor := newStatementTestService(t)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(testOrganization(), nil)
	mockProcessor.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("transaction rollback"))

	result, err := svc.ImportStatement(context.Background(), testOrgID, []statement.ParsedBankTransaction{
		parsedRow("2024-01-01", "-50.00", "", "Payment"),
	}, false)

	assert.Error(t, err)
	assert.Nil(t, result)
}

// -- ImportHistory tests --

func TestImportHistory_MissingOrganizationID(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)

	summaries, err := svc.ImportHistory(context.Background(), 0)

	assert.Error(t, err)
	assert.True(t, statement.IsValidation(err))
	assert.Nil(t, summaries)
	mockOrgs.AssertNotCalled(t, "FindByID")
	mockTxns.AssertNotCalled(t, "ListByOrganization")
}

func TestImportHistory_OrganizationNotFound(t *testing.T) {
	svc, mockOrgs, _, _ := newStatementTestService(t)

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(nil, nil)

	summaries, err := svc.ImportHistory(context.Background(), testOrgID)

	assert.Error(t, err)
	assert.True(t, statement.IsNotFound(err))
	assert.Nil(t, summaries)
}

func TestImportHistory_Success(t *testing.T) {
	svc, mockOrgs, mockTxns, _ := newStatementTestService(t)
	imported := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	rows := []*sqlconfig.BankTransaction{
		storedRow(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "100.00", "", "Income"),
		storedRow(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), "-40.00", "", "Fee"),
	}
	for _, row := range rows {
		row.AccountNumber = "1234"
		row.CreatedAt = imported
	}

	mockOrgs.EXPECT().FindByID(mock.Anything, testOrgID).Return(testOrganization(), nil)
	mockTxns.EXPECT().ListByOrganization(mock.Anything, testOrgID).Return(rows, nil)

	summaries, err := svc.ImportHistory(context.Background(), testOrgID)

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].TransactionCount)
	assert.True(t, summaries[0].TotalCredits.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, summaries[0].TotalDebits.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), summaries[0].ImportDay)
}
