package bankimport

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/nordbooks/backoffice-server/internal/importer"
	"github.com/nordbooks/backoffice-server/internal/logging"
)

// ParseStatementBody is the request body for parsing a raw statement export.
type ParseStatementBody struct {
	OrganizationID int64  `json:"organizationID,omitempty" doc:"Organization identifier"`
	Format         string `json:"format,omitempty" doc:"Export format, e.g. generic or danske"`
	Content        string `json:"content,omitempty" doc:"Raw export file content"`
}

// ParseStatementInput is the Huma input for parsing a statement export.
type ParseStatementInput struct {
	Body ParseStatementBody
}

// ParseStatementResponse carries the parsed rows and their duplicate
// classification, ready for review before import.
type ParseStatementResponse struct {
	Transactions []BankTransaction   `json:"transactions" doc:"Rows extracted from the export"`
	Report       DuplicateReportBody `json:"report" doc:"Duplicate classification of the extracted rows"`
}

// ParseStatementOutput is the Huma output for parsing a statement export.
type ParseStatementOutput struct {
	Body ParseStatementResponse
}

// ParseStatementHandler handles POST /v1/statement/parse.
type ParseStatementHandler struct {
	Service  DuplicateChecker
	Registry *importer.Registry
}

// NewParseStatementHandler creates a new ParseStatementHandler.
func NewParseStatementHandler(svc DuplicateChecker, registry *importer.Registry) *ParseStatementHandler {
	return &ParseStatementHandler{Service: svc, Registry: registry}
}

// Register registers the statement parse endpoint with the Huma API.
func (h *ParseStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-statement",
		Method:      http.MethodPost,
		Path:        "/v1/statement/parse",
		Summary:     "Parse a raw statement export",
		Description: "Parses a bank export into statement rows and classifies them against stored transactions. Nothing is persisted.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *ParseStatementHandler) handle(ctx context.Context, input *ParseStatementInput) (*ParseStatementOutput, error) {
	parser := h.Registry.Get(input.Body.Format)
	if parser == nil {
		return nil, huma.NewError(http.StatusBadRequest,
			"unknown format, supported formats: "+strings.Join(h.Registry.Formats(), ", "))
	}
	if input.Body.Content == "" {
		return nil, huma.NewError(http.StatusBadRequest, "content must not be empty")
	}

	rows, err := parser.Parse(strings.NewReader(input.Body.Content))
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "failed to parse export", err)
	}

	report, err := h.Service.CheckDuplicates(ctx, input.Body.OrganizationID, rows)
	if err != nil {
		return nil, translateError(err, "failed to check parsed rows")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("organizationID", input.Body.OrganizationID)
		logData.AddData("format", parser.Format())
		logData.AddData("rows", len(rows))
	}

	return &ParseStatementOutput{Body: ParseStatementResponse{
		Transactions: fromParsedRows(rows),
		Report:       reportBody(*report),
	}}, nil
}
