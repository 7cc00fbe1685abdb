package transform

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/yurifrl/rampboard/pkg/models"
)

func float(v float64) *float64 { return &v }

func TestTransactionMinimalRecord(t *testing.T) {
	raw := &RawTransaction{
		ID:     "t1",
		Amount: float(45.67),
		State:  "CLEARED",
		User:   &RawUser{FirstName: "Jane", LastName: "Doe"},
	}

	tx, err := Transaction(raw)
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}

	if tx.ID != "t1" {
		t.Errorf("id = %q, want t1", tx.ID)
	}
	if tx.Amount != 45.67 {
		t.Errorf("amount = %v, want 45.67", tx.Amount)
	}
	if tx.Status != models.StatusApproved {
		t.Errorf("status = %q, want approved", tx.Status)
	}
	if tx.EmployeeName != "Jane Doe" {
		t.Errorf("employee_name = %q, want Jane Doe", tx.EmployeeName)
	}
	if tx.CategoryName != "Uncategorized" {
		t.Errorf("category_name = %q, want Uncategorized", tx.CategoryName)
	}
	if tx.Currency != "USD" {
		t.Errorf("currency = %q, want USD", tx.Currency)
	}
	if !tx.IsCompliant {
		t.Error("expected compliant by default")
	}
}

func TestTransactionAllFieldsAbsent(t *testing.T) {
	tx, err := Transaction(&RawTransaction{ID: "t2"})
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}
	if tx.Amount != 0 {
		t.Errorf("amount = %v, want 0", tx.Amount)
	}
	if tx.Currency != "USD" || tx.CategoryName != "Uncategorized" {
		t.Errorf("defaults not applied: currency=%q category=%q", tx.Currency, tx.CategoryName)
	}
	if tx.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", tx.Status)
	}
	if tx.ReceiptURL != "" || tx.Receipts != nil {
		t.Errorf("expected no receipts, got %q %v", tx.ReceiptURL, tx.Receipts)
	}
}

func TestTransactionMissingID(t *testing.T) {
	_, err := Transaction(&RawTransaction{Amount: float(1)})
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if _, err := Transaction(nil); err == nil {
		t.Fatal("expected error for nil record")
	}
}

func TestTransactionIdempotent(t *testing.T) {
	raw := &RawTransaction{
		ID:     "t3",
		Amount: float(12.5),
		State:  "pending",
		User:   &RawUser{FirstName: "A", LastName: "B", Email: "a@b.com"},
		Receipts: []json.RawMessage{
			json.RawMessage(`"rcpt-1"`),
		},
	}
	first, err := Transaction(raw)
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}
	second, err := Transaction(raw)
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("transform not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestResolveAmountMinorUnits(t *testing.T) {
	// The older payload generation carries cents; division must be
	// exact.
	raw := &RawTransaction{
		ID:             "t4",
		OriginalAmount: &RawOriginalAmount{Amount: 1999, CurrencyCode: "EUR"},
	}
	tx, err := Transaction(raw)
	if err != nil {
		t.Fatalf("Transaction failed: %v", err)
	}
	if tx.Amount != 19.99 {
		t.Errorf("amount = %v, want 19.99", tx.Amount)
	}
	if tx.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", tx.Currency)
	}
}

func TestResolveAmountMajorUnitsWins(t *testing.T) {
	// When both conventions appear, the top-level amount is
	// authoritative.
	raw := &RawTransaction{
		ID:             "t5",
		Amount:         float(10),
		OriginalAmount: &RawOriginalAmount{Amount: 99999},
	}
	tx, _ := Transaction(raw)
	if tx.Amount != 10 {
		t.Errorf("amount = %v, want 10", tx.Amount)
	}
}

func TestEmployeeNameFallsBackToCardHolder(t *testing.T) {
	raw := &RawTransaction{
		ID:         "t6",
		User:       &RawUser{FirstName: "  ", LastName: ""},
		CardHolder: &RawCardHolder{FirstName: "Card", LastName: "Holder"},
	}
	tx, _ := Transaction(raw)
	if tx.EmployeeName != "Card Holder" {
		t.Errorf("employee_name = %q, want Card Holder", tx.EmployeeName)
	}
	if tx.CardHolderName != "Card Holder" {
		t.Errorf("card_holder_name = %q, want Card Holder", tx.CardHolderName)
	}
}

func TestDepartmentPriorityChain(t *testing.T) {
	trackingOnly := &RawTransaction{
		ID: "t7",
		TrackingCategories: []RawTrackingCategory{
			{Type: "GL_ACCOUNT", Name: "GL", Value: "6000 - Meals"},
			{Type: "OTHER", Name: "Department", Value: "Finance"},
		},
	}
	tx, _ := Transaction(trackingOnly)
	if tx.Department != "Finance" {
		t.Errorf("department = %q, want Finance (tracking category)", tx.Department)
	}
	if tx.CategoryName != "6000 - Meals" {
		t.Errorf("category_name = %q, want GL account fallback", tx.CategoryName)
	}

	userWins := &RawTransaction{
		ID:                 "t8",
		User:               &RawUser{Department: &RawDepartment{Name: "Marketing"}},
		TrackingCategories: trackingOnly.TrackingCategories,
	}
	tx, _ = Transaction(userWins)
	if tx.Department != "Marketing" {
		t.Errorf("department = %q, want Marketing (user beats tracking)", tx.Department)
	}

	cardHolderWins := &RawTransaction{
		ID:         "t9",
		User:       &RawUser{Department: &RawDepartment{Name: "Marketing"}},
		CardHolder: &RawCardHolder{DepartmentName: "Engineering"},
	}
	tx, _ = Transaction(cardHolderWins)
	if tx.Department != "Engineering" {
		t.Errorf("department = %q, want Engineering (card holder wins)", tx.Department)
	}
}

func TestResolveLocation(t *testing.T) {
	fromMerchant := &RawTransaction{
		ID:       "t10",
		Merchant: &RawMerchant{City: "Denver", Country: "US"},
	}
	tx, _ := Transaction(fromMerchant)
	if tx.Location != "Denver, US" {
		t.Errorf("location = %q, want Denver, US", tx.Location)
	}

	cardHolderWins := &RawTransaction{
		ID:         "t11",
		CardHolder: &RawCardHolder{LocationName: "HQ"},
		Merchant:   &RawMerchant{City: "Denver", State: "CO", Country: "US"},
	}
	tx, _ = Transaction(cardHolderWins)
	if tx.Location != "HQ" {
		t.Errorf("location = %q, want HQ", tx.Location)
	}
}

func TestResolveReceipts(t *testing.T) {
	bareIDs := &RawTransaction{
		ID: "t12",
		Receipts: []json.RawMessage{
			json.RawMessage(`"rcpt-1"`),
			json.RawMessage(`"rcpt-2"`),
		},
	}
	tx, _ := Transaction(bareIDs)
	want := []string{
		"https://app.ramp.com/receipts/rcpt-1",
		"https://app.ramp.com/receipts/rcpt-2",
	}
	if !reflect.DeepEqual(tx.Receipts, want) {
		t.Errorf("receipts = %v, want %v", tx.Receipts, want)
	}
	if tx.ReceiptURL != want[0] {
		t.Errorf("receipt_url = %q, want first receipt", tx.ReceiptURL)
	}

	objects := &RawTransaction{
		ID: "t13",
		Receipts: []json.RawMessage{
			json.RawMessage(`{"id":"rcpt-3","url":"https://files.example.com/rcpt-3.pdf"}`),
			json.RawMessage(`{"id":"rcpt-4"}`),
		},
	}
	tx, _ = Transaction(objects)
	if tx.ReceiptURL != "https://files.example.com/rcpt-3.pdf" {
		t.Errorf("receipt_url = %q, want object URL passthrough", tx.ReceiptURL)
	}
	if tx.Receipts[1] != "https://app.ramp.com/receipts/rcpt-4" {
		t.Errorf("receipts[1] = %q, want synthesized URL", tx.Receipts[1])
	}
}

func TestPolicyViolationsDriveCompliance(t *testing.T) {
	raw := &RawTransaction{
		ID: "t14",
		PolicyViolations: []RawPolicyViolation{
			{Type: "MISSING_RECEIPT", Memo: "Receipt required over $75"},
		},
	}
	tx, _ := Transaction(raw)
	if tx.IsCompliant {
		t.Error("expected non-compliant with violations present")
	}
	if len(tx.PolicyViolations) != 1 || tx.PolicyViolations[0] != "Receipt required over $75" {
		t.Errorf("policy_violations = %v", tx.PolicyViolations)
	}
}

func TestDatePrefersUserTransactionTime(t *testing.T) {
	raw := &RawTransaction{
		ID:                  "t15",
		UserTransactionTime: "2024-03-01T10:00:00Z",
		CreatedAt:           "2024-03-02T00:00:00Z",
	}
	tx, _ := Transaction(raw)
	if tx.Date != "2024-03-01T10:00:00Z" {
		t.Errorf("date = %q, want user transaction time", tx.Date)
	}

	raw.UserTransactionTime = ""
	tx, _ = Transaction(raw)
	if tx.Date != "2024-03-02T00:00:00Z" {
		t.Errorf("date = %q, want created_at fallback", tx.Date)
	}
}

func TestCard(t *testing.T) {
	inactive := false
	remaining := int64(320000)
	raw := &RawCard{
		ID:                   "card-1",
		DisplayName:          "Ops Card",
		LastFour:             "4242",
		IsActive:             &inactive,
		Cardholder:           &RawCardHolder{FirstName: "Sarah", LastName: "Wilson"},
		SpendingRestrictions: &RawSpendingRestrictions{Amount: 500000},
		RemainingLimit:       &remaining,
	}
	card, err := Card(raw)
	if err != nil {
		t.Fatalf("Card failed: %v", err)
	}
	if card.Status != "inactive" {
		t.Errorf("status = %q, want inactive", card.Status)
	}
	if card.SpendingLimit != 5000 || card.AvailableLimit != 3200 {
		t.Errorf("limits = %v/%v, want 5000/3200", card.SpendingLimit, card.AvailableLimit)
	}
	if card.CardholderName != "Sarah Wilson" {
		t.Errorf("cardholder_name = %q", card.CardholderName)
	}

	if _, err := Card(&RawCard{}); err == nil {
		t.Fatal("expected error for card without id")
	}
}

func TestUser(t *testing.T) {
	raw := &RawUser{
		ID:         "user-1",
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@company.com",
		Department: &RawDepartment{Name: "Engineering"},
	}
	user, err := User(raw)
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if user.Role != "user" {
		t.Errorf("role = %q, want default user", user.Role)
	}
	if user.Status != "active" {
		t.Errorf("status = %q, want active default", user.Status)
	}
	if user.Department != "Engineering" {
		t.Errorf("department = %q", user.Department)
	}

	if _, err := User(nil); err == nil {
		t.Fatal("expected error for nil user")
	}
}
