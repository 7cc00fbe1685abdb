package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yurifrl/rampboard/pkg/models"
)

func TestComputeEmpty(t *testing.T) {
	s := ComputeAt(nil, time.Now())
	assert.Equal(t, models.DashboardStats{}, s, "empty collection must yield all-zero counters")
}

func TestComputeWindows(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	txs := []*models.Transaction{
		{ID: "a", Amount: 10, Date: "2024-06-01T09:00:00Z", Status: models.StatusApproved},
		{ID: "b", Amount: 20, Date: "2024-06-10T09:00:00Z", Status: models.StatusApproved},
		{ID: "c", Amount: 30, Date: "2024-06-14T09:00:00Z", Status: models.StatusPending},
		{ID: "d", Amount: 5, Date: "2023-11-02T09:00:00Z", Status: models.StatusApproved},
	}

	s := ComputeAt(txs, now)
	assert.Equal(t, 4, s.TotalTransactions)
	assert.InDelta(t, 65, s.TotalAmount, 1e-9)
	assert.InDelta(t, 60, s.ThisMonthSpend, 1e-9)
	assert.InDelta(t, 60, s.YTDSpend, 1e-9)
}

func TestComputeStatusBuckets(t *testing.T) {
	txs := []*models.Transaction{
		{ID: "a", Amount: 10, Status: models.StatusPending},
		{ID: "b", Amount: 20, Status: models.StatusPending},
		{ID: "c", Amount: 40, Status: models.StatusApproved},
		{ID: "d", Amount: 80, Status: models.StatusReimbursed},
		{ID: "e", Amount: 160, Status: models.StatusDeclined},
	}

	s := ComputeAt(txs, time.Now())
	assert.Equal(t, 2, s.PendingTransactions)
	assert.InDelta(t, 30, s.PendingAmount, 1e-9)
	assert.Equal(t, 1, s.ApprovedTransactions)
	assert.InDelta(t, 40, s.ApprovedAmount, 1e-9)
	// Reimbursed is its own counter, not folded into approved.
	assert.Equal(t, 1, s.ReimbursementsCount)
	assert.InDelta(t, 80, s.ReimbursementsAmount, 1e-9)
	// Declined still counts toward totals.
	assert.Equal(t, 5, s.TotalTransactions)
	assert.InDelta(t, 310, s.TotalAmount, 1e-9)
}

func TestComputeReceiptPartition(t *testing.T) {
	txs := []*models.Transaction{
		{ID: "a", ReceiptURL: "https://app.ramp.com/receipts/r1"},
		{ID: "b", Receipts: []string{"https://app.ramp.com/receipts/r2"}},
		{ID: "c"},
	}

	s := ComputeAt(txs, time.Now())
	assert.Equal(t, 2, s.ReceiptsCount)
	assert.Equal(t, 1, s.MissingReceiptsCount)
}

func TestComputeIgnoresUnparseableDates(t *testing.T) {
	txs := []*models.Transaction{
		{ID: "a", Amount: 10, Date: "not-a-date"},
	}
	s := ComputeAt(txs, time.Now())
	assert.InDelta(t, 10, s.TotalAmount, 1e-9)
	assert.Zero(t, s.YTDSpend)
	assert.Zero(t, s.ThisMonthSpend)
}
