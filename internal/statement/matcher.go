package statement

import "time"

// Match classifies one candidate against the stored set of the same
// organization. Rules are applied in order of decreasing confidence and the
// first hit wins:
//
//  1. same date + amount + equal non-empty reference ("exact-reference")
//  2. same date + amount + normalized-equal description ("exact-description")
//  3. same date + amount with references absent on both sides ("date-amount")
//
// Reference numbers are the most reliable anchor when present, but many
// Danish bank exports omit them, so the chain falls back to description and
// finally to date + amount alone. Pure function: no I/O, inputs unmodified.
func Match(candidate NormalizedTransaction, existing []StoredTransaction) DuplicateCheckResult {
	if candidate.Reference != "" {
		for _, row := range existing {
			if sameDay(row.TransactionDate, candidate.TransactionDate) &&
				row.Amount.Equal(candidate.Amount) &&
				row.Reference == candidate.Reference {
				return DuplicateCheckResult{
					IsDuplicate:          true,
					MatchedTransactionID: row.ID,
					Reason:               ReasonExactReference,
				}
			}
		}
	}

	if candidate.ComparableDescription != "" {
		for _, row := range existing {
			if sameDay(row.TransactionDate, candidate.TransactionDate) &&
				row.Amount.Equal(candidate.Amount) &&
				NormalizeDescription(row.Description) == candidate.ComparableDescription {
				return DuplicateCheckResult{
					IsDuplicate:          true,
					MatchedTransactionID: row.ID,
					Reason:               ReasonExactDescription,
				}
			}
		}
	}

	// Weakest rule: date + amount alone, only when neither side carries a
	// reference that could have confirmed or refuted the match.
	if candidate.Reference == "" {
		for _, row := range existing {
			if row.Reference == "" &&
				sameDay(row.TransactionDate, candidate.TransactionDate) &&
				row.Amount.Equal(candidate.Amount) {
				return DuplicateCheckResult{
					IsDuplicate:          true,
					MatchedTransactionID: row.ID,
					Reason:               ReasonDateAmount,
				}
			}
		}
	}

	return DuplicateCheckResult{}
}

// CheckBatch runs Match for every candidate against the same stored snapshot,
// preserving candidate order. Candidates are never compared against each
// other, only against already persisted rows.
func CheckBatch(candidates []NormalizedTransaction, existing []StoredTransaction) DuplicateReport {
	report := DuplicateReport{
		Total:   len(candidates),
		Results: make([]DuplicateCheckResult, len(candidates)),
	}

	for i, candidate := range candidates {
		result := Match(candidate, existing)
		report.Results[i] = result
		if result.IsDuplicate {
			report.Duplicates++
		} else {
			report.Unique++
		}
	}

	return report
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
