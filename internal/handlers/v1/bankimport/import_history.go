package bankimport

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordbooks/backoffice-server/internal/logging"
	"github.com/nordbooks/backoffice-server/internal/statement"
)

// HistoryProvider reconstructs an organization's recent import batches.
type HistoryProvider interface {
	ImportHistory(ctx context.Context, organizationID int64) ([]statement.ImportBatchSummary, error)
}

// ImportHistoryInput is the Huma input for listing import history. The id is
// taken as a string so a malformed value yields a 400 instead of a schema
// validation failure.
type ImportHistoryInput struct {
	OrganizationID string `query:"organizationId" doc:"Organization identifier"`
}

// ImportBatchSummary is the API response model for one reconstructed batch.
type ImportBatchSummary struct {
	ImportDay        string `json:"importDay" doc:"Calendar day the batch was imported, UTC"`
	AccountNumber    string `json:"accountNumber,omitempty" doc:"Bank account of the batch"`
	Currency         string `json:"currency" doc:"Currency of the batch"`
	TransactionCount int    `json:"transactionCount" doc:"Rows in the batch"`
	TotalCredits     string `json:"totalCredits" doc:"Sum of positive amounts"`
	TotalDebits      string `json:"totalDebits" doc:"Sum of negative amounts, as a positive value"`
	PeriodStart      string `json:"periodStart" doc:"Earliest transaction date in the batch"`
	PeriodEnd        string `json:"periodEnd" doc:"Latest transaction date in the batch"`
}

// ImportHistoryOutput is the Huma output for listing import history.
type ImportHistoryOutput struct {
	Body []ImportBatchSummary
}

// ImportHistoryHandler handles GET /v1/statement/history.
type ImportHistoryHandler struct {
	Service HistoryProvider
}

// NewImportHistoryHandler creates a new ImportHistoryHandler.
func NewImportHistoryHandler(svc HistoryProvider) *ImportHistoryHandler {
	return &ImportHistoryHandler{Service: svc}
}

// Register registers the import history endpoint with the Huma API.
func (h *ImportHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-import-history",
		Method:      http.MethodGet,
		Path:        "/v1/statement/history",
		Summary:     "List import history",
		Description: "Returns the organization's most recent import batches, newest first.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func parseImportHistoryInput(input *ImportHistoryInput) (int64, error) {
	if input.OrganizationID == "" {
		return 0, huma.NewError(http.StatusBadRequest, "organizationId query parameter is required")
	}
	organizationID, err := strconv.ParseInt(input.OrganizationID, 10, 64)
	if err != nil {
		return 0, huma.NewError(http.StatusBadRequest, "organizationId must be numeric", err)
	}
	return organizationID, nil
}

func (h *ImportHistoryHandler) handle(ctx context.Context, input *ImportHistoryInput) (*ImportHistoryOutput, error) {
	organizationID, err := parseImportHistoryInput(input)
	if err != nil {
		return nil, err
	}

	summaries, err := h.Service.ImportHistory(ctx, organizationID)
	if err != nil {
		return nil, translateError(err, "failed to list import history")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("organizationID", organizationID)
		logData.AddData("batches", len(summaries))
	}

	batches := make([]ImportBatchSummary, len(summaries))
	for i, summary := range summaries {
		batches[i] = ImportBatchSummary{
			ImportDay:        summary.ImportDay.Format("2006-01-02"),
			AccountNumber:    summary.AccountNumber,
			Currency:         summary.Currency,
			TransactionCount: summary.TransactionCount,
			TotalCredits:     summary.TotalCredits.StringFixed(2),
			TotalDebits:      summary.TotalDebits.StringFixed(2),
			PeriodStart:      summary.PeriodStart.Format("2006-01-02"),
			PeriodEnd:        summary.PeriodEnd.Format("2006-01-02"),
		}
	}

	return &ImportHistoryOutput{Body: batches}, nil
}
