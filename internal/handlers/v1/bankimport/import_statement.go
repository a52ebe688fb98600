package bankimport

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordbooks/backoffice-server/internal/logging"
	"github.com/nordbooks/backoffice-server/internal/service"
	"github.com/nordbooks/backoffice-server/internal/statement"
)

// StatementImporter persists a reviewed statement upload.
type StatementImporter interface {
	ImportStatement(ctx context.Context, organizationID int64, rows []statement.ParsedBankTransaction, importDuplicates bool) (*service.ImportResult, error)
}

// ImportStatementBody is the request body for importing a statement.
type ImportStatementBody struct {
	OrganizationID   int64             `json:"organizationID,omitempty" doc:"Organization identifier"`
	Transactions     []BankTransaction `json:"transactions,omitempty" doc:"Parsed statement rows to import"`
	ImportDuplicates bool              `json:"importDuplicates,omitempty" doc:"Also persist rows flagged as duplicates"`
}

// ImportStatementInput is the Huma input for importing a statement.
type ImportStatementInput struct {
	Body ImportStatementBody
}

// ImportStatementResponse reports what the import persisted and skipped.
type ImportStatementResponse struct {
	Inserted int                 `json:"inserted" doc:"Rows written to storage"`
	Skipped  int                 `json:"skipped" doc:"Rows left out as duplicates"`
	Report   DuplicateReportBody `json:"report" doc:"Duplicate classification computed inside the import transaction"`
}

// ImportStatementOutput is the Huma output for importing a statement.
type ImportStatementOutput struct {
	Body ImportStatementResponse
}

// ImportStatementHandler handles POST /v1/statement/import.
type ImportStatementHandler struct {
	Service StatementImporter
}

// NewImportStatementHandler creates a new ImportStatementHandler.
func NewImportStatementHandler(svc StatementImporter) *ImportStatementHandler {
	return &ImportStatementHandler{Service: svc}
}

// Register registers the statement import endpoint with the Huma API.
func (h *ImportStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-statement",
		Method:      http.MethodPost,
		Path:        "/v1/statement/import",
		Summary:     "Import statement rows",
		Description: "Re-checks the rows for duplicates and persists the unique ones, all inside one transaction. Duplicates are skipped unless importDuplicates is set.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *ImportStatementHandler) handle(ctx context.Context, input *ImportStatementInput) (*ImportStatementOutput, error) {
	result, err := h.Service.ImportStatement(ctx, input.Body.OrganizationID, toParsedRows(input.Body.Transactions), input.Body.ImportDuplicates)
	if err != nil {
		return nil, translateError(err, "failed to import statement")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("organizationID", input.Body.OrganizationID)
		logData.AddData("inserted", result.Inserted)
		logData.AddData("skipped", result.Skipped)
	}

	return &ImportStatementOutput{Body: ImportStatementResponse{
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
		Report:   reportBody(result.Report),
	}}, nil
}
