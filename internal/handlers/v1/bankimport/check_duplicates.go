package bankimport

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordbooks/backoffice-server/internal/logging"
	"github.com/nordbooks/backoffice-server/internal/statement"
)

// DuplicateChecker classifies statement rows against stored transactions.
type DuplicateChecker interface {
	CheckDuplicates(ctx context.Context, organizationID int64, rows []statement.ParsedBankTransaction) (*statement.DuplicateReport, error)
}

// CheckDuplicatesBody is the request body for a batch duplicate check.
type CheckDuplicatesBody struct {
	OrganizationID int64             `json:"organizationID,omitempty" doc:"Organization identifier"`
	Transactions   []BankTransaction `json:"transactions,omitempty" doc:"Parsed statement rows to classify"`
}

// CheckDuplicatesInput is the Huma input for checking duplicates.
type CheckDuplicatesInput struct {
	Body CheckDuplicatesBody
}

// CheckDuplicatesOutput is the Huma output for checking duplicates.
type CheckDuplicatesOutput struct {
	Body DuplicateReportBody
}

// CheckDuplicatesHandler handles POST /v1/statement/check.
type CheckDuplicatesHandler struct {
	Service DuplicateChecker
}

// NewCheckDuplicatesHandler creates a new CheckDuplicatesHandler.
func NewCheckDuplicatesHandler(svc DuplicateChecker) *CheckDuplicatesHandler {
	return &CheckDuplicatesHandler{Service: svc}
}

// Register registers the duplicate check endpoint with the Huma API.
func (h *CheckDuplicatesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "check-statement-duplicates",
		Method:      http.MethodPost,
		Path:        "/v1/statement/check",
		Summary:     "Check statement rows for duplicates",
		Description: "Classifies every row against the organization's stored transactions without persisting anything.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *CheckDuplicatesHandler) handle(ctx context.Context, input *CheckDuplicatesInput) (*CheckDuplicatesOutput, error) {
	report, err := h.Service.CheckDuplicates(ctx, input.Body.OrganizationID, toParsedRows(input.Body.Transactions))
	if err != nil {
		return nil, translateError(err, "failed to check duplicates")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("organizationID", input.Body.OrganizationID)
		logData.AddData("total", report.Total)
		logData.AddData("duplicates", report.Duplicates)
	}

	return &CheckDuplicatesOutput{Body: reportBody(*report)}, nil
}
