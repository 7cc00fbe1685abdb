package models

// ApiResponse is the paginated envelope produced for the UI and export
// layers, for transactions, cards and users alike.
type ApiResponse[T any] struct {
	Data       []T  `json:"data"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalCount int  `json:"total_count"`
	HasMore    bool `json:"has_more"`
}

// Paginate slices a fully-materialized collection into the response
// envelope. Out-of-range pages yield an empty data slice, not an error.
func Paginate[T any](data []T, page, pageSize int) *ApiResponse[T] {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(data) {
		start = len(data)
	}
	if end > len(data) {
		end = len(data)
	}
	return &ApiResponse[T]{
		Data:       data[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalCount: len(data),
		HasMore:    end < len(data),
	}
}

// DashboardStats holds the aggregate counters derived from a transaction
// collection. It is stateless and recomputed on every filter change.
//
// All sums are float accumulations in major currency units across the
// whole collection; no currency-uniformity check is performed.
type DashboardStats struct {
	TotalTransactions    int     `json:"totalTransactions"`
	TotalAmount          float64 `json:"totalAmount"`
	PendingTransactions  int     `json:"pendingTransactions"`
	PendingAmount        float64 `json:"pendingAmount"`
	ApprovedTransactions int     `json:"approvedTransactions"`
	ApprovedAmount       float64 `json:"approvedAmount"`
	YTDSpend             float64 `json:"ytdSpend"`
	ThisMonthSpend       float64 `json:"thisMonthSpend"`
	ReimbursementsCount  int     `json:"reimbursementsCount"`
	ReimbursementsAmount float64 `json:"reimbursementsAmount"`
	ReceiptsCount        int     `json:"receiptsCount"`
	MissingReceiptsCount int     `json:"missingReceiptsCount"`
}
