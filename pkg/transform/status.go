package transform

import (
	"strings"

	"github.com/yurifrl/rampboard/pkg/models"
)

// MapStatus normalizes an upstream state string to the canonical status
// vocabulary. It is total: any input, including the empty string, yields
// one of the four canonical values. Unrecognized states are treated as
// pending so that a new upstream state never breaks the pipeline.
func MapStatus(raw string) models.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending", "submitted", "processing":
		return models.StatusPending
	case "approved", "cleared", "settled":
		return models.StatusApproved
	case "declined", "rejected", "cancelled":
		return models.StatusDeclined
	case "reimbursed", "refunded":
		return models.StatusReimbursed
	default:
		return models.StatusPending
	}
}

// UpstreamStatus translates a canonical status back into the upstream
// enum used in query parameters.
func UpstreamStatus(status string) string {
	switch models.Status(strings.ToLower(strings.TrimSpace(status))) {
	case models.StatusApproved:
		return "CLEARED"
	case models.StatusDeclined:
		return "DECLINED"
	case models.StatusReimbursed:
		return "REIMBURSED"
	default:
		return "PENDING"
	}
}
