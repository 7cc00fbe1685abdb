// Package filter evaluates the predicates the upstream API cannot
// express: multi-select set membership and the derived policy-compliance
// flag. It runs locally over an already-fetched collection.
package filter

import "github.com/yurifrl/rampboard/pkg/models"

// Apply keeps the transactions matching every client-only predicate in
// filters. Dimensions combine with AND; an empty selection on a
// dimension means no constraint on it. The result preserves input order.
func Apply(transactions []*models.Transaction, filters models.FilterOptions) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matches(tx, filters) {
			out = append(out, tx)
		}
	}
	return out
}

func matches(tx *models.Transaction, f models.FilterOptions) bool {
	if !inSelection(tx.Department, f.Departments) {
		return false
	}
	if !inSelection(tx.CategoryName, f.Categories) {
		return false
	}
	if !inSelection(tx.MerchantName, f.Merchants) {
		return false
	}
	if !inSelection(tx.SpendProgramName, f.SpendPrograms) {
		return false
	}
	switch f.PolicyCompliance {
	case models.PolicyCompliant:
		return tx.IsCompliant
	case models.PolicyNonCompliant:
		return !tx.IsCompliant
	}
	return true
}

// inSelection is true when the selection is empty (no constraint) or the
// value is present in it. An empty value never matches a non-empty
// selection.
func inSelection(value string, selection []string) bool {
	if len(selection) == 0 {
		return true
	}
	if value == "" {
		return false
	}
	for _, s := range selection {
		if s == value {
			return true
		}
	}
	return false
}
