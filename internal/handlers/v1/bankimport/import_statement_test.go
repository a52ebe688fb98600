package bankimport

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nordbooks/backoffice-server/internal/service"
	"github.com/nordbooks/backoffice-server/internal/statement"
)

type mockStatementImporter struct {
	mock.Mock
}

func (m *mockStatementImporter) ImportStatement(ctx context.Context, organizationID int64, rows []statement.ParsedBankTransaction, importDuplicates bool) (*service.ImportResult, error) {
	args := m.Called(ctx, organizationID, rows, importDuplicates)
	result, _ := args.Get(0).(*service.ImportResult)
	return result, args.Error(1)
}

func newImportTestAPI(t *testing.T, svc StatementImporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewImportStatementHandler(svc).Register(api)
	return api
}

func TestHTTP_ImportStatement_Success(t *testing.T) {
	mockSvc := new(mockStatementImporter)
	mockSvc.On("ImportStatement", mock.Anything, int64(42), mock.Anything, false).
		Return(&service.ImportResult{
			Report: statement.DuplicateReport{
				Total:      2,
				Duplicates: 1,
				Unique:     1,
				Results: []statement.DuplicateCheckResult{
					{IsDuplicate: true, Reason: statement.ReasonDateAmount},
					{IsDuplicate: false},
				},
			},
			Inserted: 1,
			Skipped:  1,
		}, nil)

	resp := newImportTestAPI(t, mockSvc).Post("/v1/statement/import", ImportStatementBody{
		OrganizationID: 42,
		Transactions: []BankTransaction{
			{TransactionDate: "2024-01-01", Amount: "-50.00", Description: "Card payment"},
			{TransactionDate: "2024-01-01", Amount: "100.00", Description: "New income"},
		},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ImportStatementResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Inserted)
	assert.Equal(t, 1, body.Skipped)
	assert.Equal(t, 2, body.Report.Total)
	assert.Equal(t, "date-amount", body.Report.Results[0].Reason)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportStatement_ImportDuplicatesForwarded(t *testing.T) {
	mockSvc := new(mockStatementImporter)
	mockSvc.On("ImportStatement", mock.Anything, int64(42), mock.Anything, true).
		Return(&service.ImportResult{
			Report:   statement.DuplicateReport{Total: 1, Duplicates: 1, Results: []statement.DuplicateCheckResult{{IsDuplicate: true, Reason: statement.ReasonExactDescription}}},
			Inserted: 1,
		}, nil)

	resp := newImportTestAPI(t, mockSvc).Post("/v1/statement/import", ImportStatementBody{
		OrganizationID:   42,
		Transactions:     []BankTransaction{{TransactionDate: "2024-01-01", Amount: "-50.00", Description: "Card payment"}},
		ImportDuplicates: true,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ImportStatementResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Inserted)
	assert.Equal(t, 0, body.Skipped)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportStatement_ValidationError(t *testing.T) {
	mockSvc := new(mockStatementImporter)
	mockSvc.On("ImportStatement", mock.Anything, int64(42), mock.Anything, false).
		Return(nil, statement.NewValidationError("row 0: transactionDate is required"))

	resp := newImportTestAPI(t, mockSvc).Post("/v1/statement/import", ImportStatementBody{
		OrganizationID: 42,
		Transactions:   []BankTransaction{{Amount: "-50.00"}},
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "row 0")
}

func TestHTTP_ImportStatement_OrganizationNotFound(t *testing.T) {
	mockSvc := new(mockStatementImporter)
	mockSvc.On("ImportStatement", mock.Anything, int64(99), mock.Anything, false).
		Return(nil, statement.NewNotFoundError("organization %d not found", 99))

	resp := newImportTestAPI(t, mockSvc).Post("/v1/statement/import", ImportStatementBody{
		OrganizationID: 99,
		Transactions:   []BankTransaction{{TransactionDate: "2024-01-01", Amount: "-50.00"}},
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
