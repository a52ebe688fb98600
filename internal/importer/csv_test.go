package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericCSVParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Date,Description,Amount,Reference,Account,Currency",
		"2024-01-15,Betaling Netto,-50.00,REF001,1234-567890,DKK",
		"2024-01-16,Indbetaling fra kunde,5000.00,,1234-567890,DKK",
	}, "\n")

	rows, err := GenericCSVParser().Parse(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "2024-01-15", rows[0].TransactionDate)
	assert.Equal(t, "Betaling Netto", rows[0].Description)
	assert.Equal(t, "-50.00", rows[0].Amount)
	assert.Equal(t, "REF001", rows[0].Reference)
	assert.Equal(t, "1234-567890", rows[0].AccountNumber)
	assert.Equal(t, "DKK", rows[0].Currency)

	assert.Equal(t, "", rows[1].Reference)
}

func TestDanskeCSVParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Dato;Tekst;Beløb;Saldo",
		"15.01.2024;Betaling Netto;-50,00;12.345,67",
		"16.01.2024;Indbetaling fra kunde;5.000,00;17.345,67",
	}, "\n")

	rows, err := DanskeCSVParser().Parse(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "15.01.2024", rows[0].TransactionDate)
	assert.Equal(t, "Betaling Netto", rows[0].Description)
	assert.Equal(t, "-50,00", rows[0].Amount)
	assert.Equal(t, "", rows[0].Reference)
	assert.Equal(t, "", rows[0].Currency)
}

func TestCSVParser_TooFewColumns(t *testing.T) {
	input := "Date,Description,Amount\n2024-01-15,Betaling\n"

	_, err := GenericCSVParser().Parse(strings.NewReader(input))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestCSVParser_EmptyFile(t *testing.T) {
	rows, err := GenericCSVParser().Parse(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	rows, err := GenericCSVParser().Parse(strings.NewReader("Date,Description,Amount,Reference,Account,Currency\n"))
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.NotNil(t, r.Get("generic"))
	assert.NotNil(t, r.Get("DANSKE"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("unknown"))
	assert.Equal(t, []string{"danske", "generic"}, r.Formats())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(GenericCSVParser())
	assert.Panics(t, func() { r.Register(GenericCSVParser()) })
}
