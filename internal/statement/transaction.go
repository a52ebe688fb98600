package statement

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ParsedBankTransaction is one raw row produced by a statement parser.
// All fields are strings because bank exports disagree on formats;
// Normalize is responsible for coercion.
type ParsedBankTransaction struct {
	TransactionDate string
	Amount          string
	Description     string
	Reference       string
	AccountNumber   string
	Currency        string
}

// NormalizedTransaction is a ParsedBankTransaction coerced into canonical,
// comparable form. Description keeps the original (trimmed) text for display;
// ComparableDescription is the case-folded, whitespace-collapsed form the
// matcher compares on.
type NormalizedTransaction struct {
	TransactionDate       time.Time
	Amount                decimal.Decimal
	Description           string
	ComparableDescription string
	Reference             string
	AccountNumber         string
	Currency              string
}

// StoredTransaction is a previously imported row, scoped to one organization.
type StoredTransaction struct {
	ID              uuid.UUID
	OrganizationID  int64
	TransactionDate time.Time
	Amount          decimal.Decimal
	Description     string
	Reference       string
	AccountNumber   string
	Currency        string
	CreatedAt       time.Time
}

// MatchReason explains which rule classified a candidate as a duplicate.
type MatchReason string

const (
	// ReasonExactReference matched on date + amount + equal non-empty reference.
	ReasonExactReference MatchReason = "exact-reference"
	// ReasonExactDescription matched on date + amount + normalized-equal description.
	ReasonExactDescription MatchReason = "exact-description"
	// ReasonDateAmount matched on date + amount alone, both references absent.
	ReasonDateAmount MatchReason = "date-amount"
)

// DuplicateCheckResult is the classification of one candidate transaction.
type DuplicateCheckResult struct {
	IsDuplicate          bool
	MatchedTransactionID uuid.UUID
	Reason               MatchReason
}

// DuplicateReport is the per-row detail plus aggregate counts for one batch.
// Duplicates + Unique == Total and len(Results) equals the candidate count.
type DuplicateReport struct {
	Total      int
	Duplicates int
	Unique     int
	Results    []DuplicateCheckResult
}

// Fingerprint derives a stable uniqueness key from the fields that identify a
// real-world bank entry. A unique index on (organization_id, fingerprint)
// stops two concurrent imports of overlapping statements from both inserting
// the same row.
func (t NormalizedTransaction) Fingerprint(organizationID int64) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%s|%s|%s",
		organizationID,
		t.TransactionDate.Format("2006-01-02"),
		t.Amount.StringFixed(2),
		t.Reference,
		t.AccountNumber,
	)
	return hex.EncodeToString(h.Sum(nil))
}
