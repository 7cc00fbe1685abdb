// Package transform converts raw upstream records, which arrive in
// partially-optional and historically inconsistent shapes, into the
// canonical models consumed by the rest of the dashboard.
package transform

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yurifrl/rampboard/pkg/models"
)

// receiptURLTemplate synthesizes a browsable URL for payloads that carry
// bare receipt identifiers instead of receipt objects.
const receiptURLTemplate = "https://app.ramp.com/receipts/%s"

// MalformedRecordError marks a single upstream record as unusable. The
// record is skipped; the batch continues.
type MalformedRecordError struct {
	Kind   string // "transaction", "card", "user"
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: %s", e.Kind, e.Reason)
}

// Transaction converts one raw upstream transaction into the canonical
// record. Every field may be absent; only a missing id is fatal.
// The conversion is pure, so transforming the same raw record twice
// yields identical output.
func Transaction(raw *RawTransaction) (*models.Transaction, error) {
	if raw == nil || raw.ID == "" {
		return nil, &MalformedRecordError{Kind: "transaction", Reason: "missing id"}
	}

	receipts := resolveReceipts(raw.Receipts)
	receiptURL := ""
	if len(receipts) > 0 {
		receiptURL = receipts[0]
	}

	tx := &models.Transaction{
		ID:             raw.ID,
		Amount:         resolveAmount(raw),
		Currency:       resolveCurrency(raw),
		Description:    firstNonEmpty(raw.MerchantName, raw.Description),
		MerchantName:   raw.MerchantName,
		CategoryName:   resolveCategory(raw),
		EmployeeName:   resolveEmployeeName(raw),
		EmployeeEmail:  userEmail(raw.User),
		CardHolderName: cardHolderName(raw.CardHolder),
		Date:           firstNonEmpty(raw.UserTransactionTime, raw.CreatedAt),
		Status:         MapStatus(raw.State),
		ReceiptURL:     receiptURL,
		Receipts:       receipts,
		Memo:           raw.Memo,
		Department:     resolveDepartment(raw),
		Location:       resolveLocation(raw),
		IsCompliant:    len(raw.PolicyViolations) == 0,
		CreatedAt:      raw.CreatedAt,
		UpdatedAt:      raw.UpdatedAt,
	}

	for _, v := range raw.PolicyViolations {
		tx.PolicyViolations = append(tx.PolicyViolations, firstNonEmpty(v.Memo, v.Type))
	}
	if raw.SpendProgram != nil {
		tx.SpendProgramName = raw.SpendProgram.Name
		tx.SpendProgramID = raw.SpendProgram.ID
	}
	if raw.PendingApprover != nil {
		tx.PendingApprover = joinName(raw.PendingApprover.FirstName, raw.PendingApprover.LastName)
	}

	return tx, nil
}

// resolveAmount dispatches between the two observed amount conventions:
// a top-level numeric amount is already in major units; the nested
// original amount is in minor units and divided by 100. Neither present
// means zero. The division goes through decimal so cents convert
// exactly.
func resolveAmount(raw *RawTransaction) float64 {
	if raw.Amount != nil {
		return *raw.Amount
	}
	if raw.OriginalAmount != nil {
		major, _ := decimal.NewFromInt(raw.OriginalAmount.Amount).
			Div(decimal.NewFromInt(100)).
			Float64()
		return major
	}
	return 0
}

func resolveCurrency(raw *RawTransaction) string {
	if raw.CurrencyCode != "" {
		return raw.CurrencyCode
	}
	if raw.OriginalAmount != nil && raw.OriginalAmount.CurrencyCode != "" {
		return raw.OriginalAmount.CurrencyCode
	}
	return "USD"
}

// resolveEmployeeName prefers the user record's name and falls back to
// the card holder when the user record is absent or blank.
func resolveEmployeeName(raw *RawTransaction) string {
	if raw.User != nil {
		if name := joinName(raw.User.FirstName, raw.User.LastName); name != "" {
			return name
		}
	}
	return cardHolderName(raw.CardHolder)
}

// resolveDepartment walks the priority chain: card-holder department,
// user department, then a custom tracking category tagged OTHER with the
// name "Department".
func resolveDepartment(raw *RawTransaction) string {
	if raw.CardHolder != nil && raw.CardHolder.DepartmentName != "" {
		return raw.CardHolder.DepartmentName
	}
	if raw.User != nil && raw.User.Department != nil && raw.User.Department.Name != "" {
		return raw.User.Department.Name
	}
	for _, tc := range raw.TrackingCategories {
		if tc.Type == "OTHER" && tc.Name == "Department" && tc.Value != "" {
			return tc.Value
		}
	}
	return ""
}

// resolveCategory prefers the dedicated category field, then a
// GL_ACCOUNT tracking category, then the literal fallback.
func resolveCategory(raw *RawTransaction) string {
	if raw.CategoryName != "" {
		return raw.CategoryName
	}
	for _, tc := range raw.TrackingCategories {
		if tc.Type == "GL_ACCOUNT" && tc.Value != "" {
			return tc.Value
		}
	}
	return "Uncategorized"
}

// resolveLocation prefers the card-holder location and falls back to a
// comma-joined merchant city/state/country with empty parts dropped.
func resolveLocation(raw *RawTransaction) string {
	if raw.CardHolder != nil && raw.CardHolder.LocationName != "" {
		return raw.CardHolder.LocationName
	}
	if raw.Merchant == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{raw.Merchant.City, raw.Merchant.State, raw.Merchant.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// resolveReceipts accepts both payload generations: bare identifier
// strings get a URL templated around them, receipt objects pass their
// URL through. Unparseable entries are dropped.
func resolveReceipts(entries []json.RawMessage) []string {
	if len(entries) == 0 {
		return nil
	}
	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		var id string
		if err := json.Unmarshal(entry, &id); err == nil {
			if id != "" {
				urls = append(urls, fmt.Sprintf(receiptURLTemplate, id))
			}
			continue
		}
		var obj RawReceipt
		if err := json.Unmarshal(entry, &obj); err != nil {
			continue
		}
		switch {
		case obj.URL != "":
			urls = append(urls, obj.URL)
		case obj.ID != "":
			urls = append(urls, fmt.Sprintf(receiptURLTemplate, obj.ID))
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return urls
}

// Card converts one raw upstream card record. Limits arrive in cents.
func Card(raw *RawCard) (*models.Card, error) {
	if raw == nil || raw.ID == "" {
		return nil, &MalformedRecordError{Kind: "card", Reason: "missing id"}
	}
	card := &models.Card{
		ID:             raw.ID,
		DisplayName:    raw.DisplayName,
		LastFour:       raw.LastFour,
		CardholderName: cardHolderName(raw.Cardholder),
		Status:         activeStatus(raw.IsActive),
		CreatedAt:      raw.CreatedAt,
	}
	if raw.SpendingRestrictions != nil {
		card.SpendingLimit = centsToMajor(raw.SpendingRestrictions.Amount)
	}
	if raw.RemainingLimit != nil {
		card.AvailableLimit = centsToMajor(*raw.RemainingLimit)
	}
	return card, nil
}

// User converts one raw upstream user record.
func User(raw *RawUser) (*models.User, error) {
	if raw == nil || raw.ID == "" {
		return nil, &MalformedRecordError{Kind: "user", Reason: "missing id"}
	}
	user := &models.User{
		ID:        raw.ID,
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Email:     raw.Email,
		Role:      firstNonEmpty(raw.Role, "user"),
		Status:    activeStatus(raw.IsActive),
	}
	if raw.Department != nil {
		user.Department = raw.Department.Name
	}
	return user, nil
}

func centsToMajor(cents int64) float64 {
	major, _ := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).Float64()
	return major
}

func activeStatus(isActive *bool) string {
	if isActive != nil && !*isActive {
		return "inactive"
	}
	return "active"
}

func cardHolderName(ch *RawCardHolder) string {
	if ch == nil {
		return ""
	}
	return joinName(ch.FirstName, ch.LastName)
}

func userEmail(u *RawUser) string {
	if u == nil {
		return ""
	}
	return u.Email
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
