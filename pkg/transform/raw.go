package transform

import "encoding/json"

// Raw upstream payload shapes. Every field is optional: two generations
// of the upstream schema were observed in the wild and individual
// records may carry either, so pointers distinguish "absent" from zero.

// RawTransaction is one upstream transaction record as decoded from the
// API response.
type RawTransaction struct {
	ID     string   `json:"id"`
	Amount *float64 `json:"amount"` // major units when present
	// OriginalAmount carries the older minor-units convention.
	OriginalAmount *RawOriginalAmount `json:"original_transaction_amount"`
	CurrencyCode   string             `json:"currency_code"`
	Description    string             `json:"description"`
	MerchantName   string             `json:"merchant_name"`
	CategoryName   string             `json:"sk_category_name"`
	State          string             `json:"state"`
	Memo           string             `json:"memo"`

	User       *RawUser       `json:"user"`
	CardHolder *RawCardHolder `json:"card_holder"`
	Merchant   *RawMerchant   `json:"merchant"`

	// Receipts may be bare identifier strings or {id, url} objects
	// depending on the payload generation.
	Receipts []json.RawMessage `json:"receipts"`

	TrackingCategories []RawTrackingCategory `json:"tracking_categories"`
	PolicyViolations   []RawPolicyViolation  `json:"policy_violations"`
	SpendProgram       *RawSpendProgram      `json:"spend_program"`
	PendingApprover    *RawApprover          `json:"pending_approver"`

	UserTransactionTime string `json:"user_transaction_time"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}

// RawOriginalAmount holds the minor-units amount variant (cents).
type RawOriginalAmount struct {
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// RawUser is the embedded employee record on a transaction, and also the
// top-level record returned by the users endpoint.
type RawUser struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Role       string         `json:"role"`
	IsActive   *bool          `json:"is_active"`
	Department *RawDepartment `json:"department"`
}

// RawDepartment is the nested department object on a user.
type RawDepartment struct {
	Name string `json:"name"`
}

// RawCardHolder is the embedded card-holder record on a transaction.
type RawCardHolder struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DepartmentName string `json:"department_name"`
	LocationName   string `json:"location_name"`
}

// RawMerchant carries merchant geo fields used as a location fallback.
type RawMerchant struct {
	Descriptor string `json:"descriptor"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// RawReceipt is the object form of a receipt entry.
type RawReceipt struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// RawTrackingCategory is one custom accounting field attached to a
// transaction. Department and GL-account data ride on these when the
// dedicated fields are absent.
type RawTrackingCategory struct {
	Type  string `json:"tracking_category_remote_type"`
	Name  string `json:"tracking_category_remote_name"`
	Value string `json:"category_name"`
}

type RawPolicyViolation struct {
	Type string `json:"type"`
	Memo string `json:"memo"`
}

type RawSpendProgram struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RawApprover struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RawCard is one upstream card record.
type RawCard struct {
	ID                   string                   `json:"id"`
	DisplayName          string                   `json:"display_name"`
	LastFour             string                   `json:"last_four"`
	IsActive             *bool                    `json:"is_active"`
	Cardholder           *RawCardHolder           `json:"cardholder"`
	SpendingRestrictions *RawSpendingRestrictions `json:"spending_restrictions"`
	RemainingLimit       *int64                   `json:"remaining_limit"` // cents
	CreatedAt            string                   `json:"created_at"`
}

// RawSpendingRestrictions holds the card limit in cents.
type RawSpendingRestrictions struct {
	Amount int64 `json:"amount"`
}
