package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nordbooks/backoffice-server/internal/statement"
)

// CSVParser is a column-mapped CSV statement parser. Column indexes are
// zero-based; optional columns use -1 when the export does not carry them.
type CSVParser struct {
	Name      string
	Separator rune
	HasHeader bool

	DateColumn        int
	DescriptionColumn int
	AmountColumn      int
	ReferenceColumn   int
	AccountColumn     int
	CurrencyColumn    int
}

// GenericCSVParser parses comma-separated exports laid out as
// date,description,amount,reference,account,currency with a header row.
func GenericCSVParser() *CSVParser {
	return &CSVParser{
		Name:              "generic",
		Separator:         ',',
		HasHeader:         true,
		DateColumn:        0,
		DescriptionColumn: 1,
		AmountColumn:      2,
		ReferenceColumn:   3,
		AccountColumn:     4,
		CurrencyColumn:    5,
	}
}

// DanskeCSVParser parses Danske Bank netbank exports: semicolon-separated
// Dato;Tekst;Beløb;Saldo with a header row, comma decimal amounts, no
// reference column.
func DanskeCSVParser() *CSVParser {
	return &CSVParser{
		Name:              "danske",
		Separator:         ';',
		HasHeader:         true,
		DateColumn:        0,
		DescriptionColumn: 1,
		AmountColumn:      2,
		ReferenceColumn:   -1,
		AccountColumn:     -1,
		CurrencyColumn:    -1,
	}
}

// Format returns the parser name.
func (p *CSVParser) Format() string { return p.Name }

// Parse reads the CSV and maps each record onto a raw transaction row.
// Records shorter than an optional column simply leave that field empty;
// records missing a required column fail with the row number.
func (p *CSVParser) Parse(r io.Reader) ([]statement.ParsedBankTransaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = p.Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", p.Name, err)
	}

	start := 0
	if p.HasHeader && len(records) > 0 {
		start = 1
	}

	var rows []statement.ParsedBankTransaction
	for i, record := range records[start:] {
		row, err := p.parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", start+i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (p *CSVParser) parseRecord(record []string) (statement.ParsedBankTransaction, error) {
	required := p.AmountColumn
	if p.DateColumn > required {
		required = p.DateColumn
	}
	if p.DescriptionColumn > required {
		required = p.DescriptionColumn
	}
	if len(record) <= required {
		return statement.ParsedBankTransaction{}, fmt.Errorf("expected at least %d columns, got %d", required+1, len(record))
	}

	return statement.ParsedBankTransaction{
		TransactionDate: record[p.DateColumn],
		Description:     record[p.DescriptionColumn],
		Amount:          record[p.AmountColumn],
		Reference:       optionalColumn(record, p.ReferenceColumn),
		AccountNumber:   optionalColumn(record, p.AccountColumn),
		Currency:        optionalColumn(record, p.CurrencyColumn),
	}, nil
}

func optionalColumn(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return record[index]
}
