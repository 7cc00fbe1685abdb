package models

// Status is the closed set of canonical transaction states. Upstream
// vocabulary is folded into these four values by transform.MapStatus.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusDeclined   Status = "declined"
	StatusReimbursed Status = "reimbursed"
)

// Transaction is the canonical record consumed by the dashboard. Amounts
// are always in major currency units (dollars, never cents). Records are
// value objects produced fresh on every fetch; a "changed" transaction is
// simply a newer record with the same ID.
type Transaction struct {
	ID               string   `json:"id" yaml:"id"`
	Amount           float64  `json:"amount" yaml:"amount"`
	Currency         string   `json:"currency" yaml:"currency"`
	Description      string   `json:"description" yaml:"description"`
	MerchantName     string   `json:"merchant_name" yaml:"merchant_name"`
	CategoryName     string   `json:"category_name" yaml:"category_name"`
	EmployeeName     string   `json:"employee_name" yaml:"employee_name"`
	EmployeeEmail    string   `json:"employee_email" yaml:"employee_email"`
	CardHolderName   string   `json:"card_holder_name" yaml:"card_holder_name"`
	Date             string   `json:"date" yaml:"date"`
	Status           Status   `json:"status" yaml:"status"`
	ReceiptURL       string   `json:"receipt_url,omitempty" yaml:"receipt_url,omitempty"`
	Receipts         []string `json:"receipts,omitempty" yaml:"receipts,omitempty"`
	Memo             string   `json:"memo,omitempty" yaml:"memo,omitempty"`
	Department       string   `json:"department,omitempty" yaml:"department,omitempty"`
	Location         string   `json:"location,omitempty" yaml:"location,omitempty"`
	SpendProgramName string   `json:"spend_program_name,omitempty" yaml:"spend_program_name,omitempty"`
	SpendProgramID   string   `json:"spend_program_id,omitempty" yaml:"spend_program_id,omitempty"`
	PolicyViolations []string `json:"policy_violations,omitempty" yaml:"policy_violations,omitempty"`
	IsCompliant      bool     `json:"is_compliant" yaml:"is_compliant"`
	PendingApprover  string   `json:"pending_approver,omitempty" yaml:"pending_approver,omitempty"`
	CreatedAt        string   `json:"created_at" yaml:"created_at"`
	UpdatedAt        string   `json:"updated_at" yaml:"updated_at"`
}

// HasReceipt reports whether any receipt evidence is attached.
func (t *Transaction) HasReceipt() bool {
	return t.ReceiptURL != "" || len(t.Receipts) > 0
}

// Card is the canonical corporate-card record.
type Card struct {
	ID             string  `json:"id" yaml:"id"`
	DisplayName    string  `json:"display_name" yaml:"display_name"`
	LastFour       string  `json:"last_four" yaml:"last_four"`
	CardholderName string  `json:"cardholder_name" yaml:"cardholder_name"`
	Status         string  `json:"status" yaml:"status"`
	SpendingLimit  float64 `json:"spending_limit" yaml:"spending_limit"`
	AvailableLimit float64 `json:"available_limit" yaml:"available_limit"`
	CreatedAt      string  `json:"created_at" yaml:"created_at"`
}

// User is the canonical employee record.
type User struct {
	ID         string `json:"id" yaml:"id"`
	FirstName  string `json:"first_name" yaml:"first_name"`
	LastName   string `json:"last_name" yaml:"last_name"`
	Email      string `json:"email" yaml:"email"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	Role       string `json:"role" yaml:"role"`
	Status     string `json:"status" yaml:"status"`
}
