// Package stats computes the dashboard aggregates from a transaction
// collection in a single pass.
package stats

import (
	"time"

	"github.com/yurifrl/rampboard/pkg/models"
)

// Compute folds the collection into DashboardStats, using the current
// wall clock for the year-to-date and month-to-date windows.
func Compute(transactions []*models.Transaction) models.DashboardStats {
	return ComputeAt(transactions, time.Now())
}

// ComputeAt is Compute with an explicit reference time. Amount sums
// assume a uniform currency across the collection.
func ComputeAt(transactions []*models.Transaction, now time.Time) models.DashboardStats {
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var s models.DashboardStats
	for _, tx := range transactions {
		s.TotalTransactions++
		s.TotalAmount += tx.Amount

		if date, err := time.Parse(time.RFC3339, tx.Date); err == nil {
			if !date.Before(startOfYear) {
				s.YTDSpend += tx.Amount
			}
			if !date.Before(startOfMonth) {
				s.ThisMonthSpend += tx.Amount
			}
		}

		switch tx.Status {
		case models.StatusPending:
			s.PendingTransactions++
			s.PendingAmount += tx.Amount
		case models.StatusApproved:
			s.ApprovedTransactions++
			s.ApprovedAmount += tx.Amount
		case models.StatusReimbursed:
			s.ReimbursementsCount++
			s.ReimbursementsAmount += tx.Amount
		}

		if tx.HasReceipt() {
			s.ReceiptsCount++
		} else {
			s.MissingReceiptsCount++
		}
	}
	return s
}
