package mock

import "github.com/yurifrl/rampboard/pkg/models"

// The embedded fixture dataset. Deterministic by construction so demo
// sessions and tests see identical data.

func fixtureUsers() []*models.User {
	return []*models.User{
		{ID: "user-1", FirstName: "John", LastName: "Doe", Email: "john.doe@company.com", Department: "Engineering", Role: "Software Engineer", Status: "active"},
		{ID: "user-2", FirstName: "Jane", LastName: "Smith", Email: "jane.smith@company.com", Department: "Marketing", Role: "Marketing Manager", Status: "active"},
		{ID: "user-3", FirstName: "Mike", LastName: "Johnson", Email: "mike.johnson@company.com", Department: "Sales", Role: "Sales Representative", Status: "active"},
		{ID: "user-4", FirstName: "Sarah", LastName: "Wilson", Email: "sarah.wilson@company.com", Department: "Operations", Role: "Operations Manager", Status: "active"},
	}
}

func fixtureCards() []*models.Card {
	return []*models.Card{
		{ID: "card-1", DisplayName: "John Doe - Engineering", LastFour: "1234", CardholderName: "John Doe", Status: "active", SpendingLimit: 5000, AvailableLimit: 3200, CreatedAt: "2024-01-15T10:00:00Z"},
		{ID: "card-2", DisplayName: "Jane Smith - Marketing", LastFour: "5678", CardholderName: "Jane Smith", Status: "active", SpendingLimit: 3000, AvailableLimit: 1500, CreatedAt: "2024-01-20T10:00:00Z"},
	}
}

func fixtureTransactions() []*models.Transaction {
	return []*models.Transaction{
		{
			ID: "tx-1", Amount: 45.67, Currency: "USD",
			Description: "Team lunch at Chipotle", MerchantName: "Chipotle Mexican Grill",
			CategoryName: "Meals & Entertainment", EmployeeName: "John Doe",
			EmployeeEmail: "john.doe@company.com", CardHolderName: "John Doe",
			Date: "2024-01-15T12:30:00Z", Status: models.StatusApproved,
			Department: "Engineering", Location: "Denver, CO, US", Memo: "Team building lunch",
			ReceiptURL: "https://app.ramp.com/receipts/rcpt-1001",
			Receipts:   []string{"https://app.ramp.com/receipts/rcpt-1001"},
			IsCompliant: true,
			CreatedAt:   "2024-01-15T12:30:00Z", UpdatedAt: "2024-01-15T14:00:00Z",
		},
		{
			ID: "tx-2", Amount: 299.99, Currency: "USD",
			Description: "Adobe Creative Suite subscription", MerchantName: "Adobe Systems",
			CategoryName: "Software & Subscriptions", EmployeeName: "Jane Smith",
			EmployeeEmail: "jane.smith@company.com", CardHolderName: "Jane Smith",
			Date: "2024-01-14T09:15:00Z", Status: models.StatusApproved,
			Department: "Marketing", Memo: "Monthly design software subscription",
			SpendProgramName: "Software", SpendProgramID: "sp-1",
			ReceiptURL:  "https://app.ramp.com/receipts/rcpt-1002",
			Receipts:    []string{"https://app.ramp.com/receipts/rcpt-1002"},
			IsCompliant: true,
			CreatedAt:   "2024-01-14T09:15:00Z", UpdatedAt: "2024-01-14T10:30:00Z",
		},
		{
			ID: "tx-3", Amount: 1250.00, Currency: "USD",
			Description: "Flight to San Francisco", MerchantName: "United Airlines",
			CategoryName: "Travel", EmployeeName: "Mike Johnson",
			EmployeeEmail: "mike.johnson@company.com", CardHolderName: "Mike Johnson",
			Date: "2024-01-13T06:45:00Z", Status: models.StatusPending,
			Department: "Sales", Memo: "Client meeting in SF",
			SpendProgramName: "Travel", SpendProgramID: "sp-2",
			PolicyViolations: []string{"Missing itemized receipt"},
			IsCompliant:      false, PendingApprover: "Sarah Wilson",
			CreatedAt: "2024-01-13T06:45:00Z", UpdatedAt: "2024-01-13T06:45:00Z",
		},
		{
			ID: "tx-4", Amount: 89.50, Currency: "USD",
			Description: "Office supplies", MerchantName: "Staples",
			CategoryName: "Office Supplies", EmployeeName: "Sarah Wilson",
			EmployeeEmail: "sarah.wilson@company.com", CardHolderName: "Sarah Wilson",
			Date: "2024-01-12T14:20:00Z", Status: models.StatusApproved,
			Department: "Operations", Memo: "Printer paper and pens",
			ReceiptURL:  "https://app.ramp.com/receipts/rcpt-1004",
			Receipts:    []string{"https://app.ramp.com/receipts/rcpt-1004"},
			IsCompliant: true,
			CreatedAt:   "2024-01-12T14:20:00Z", UpdatedAt: "2024-01-12T15:00:00Z",
		},
		{
			ID: "tx-5", Amount: 15.99, Currency: "USD",
			Description: "Uber ride to airport", MerchantName: "Uber",
			CategoryName: "Travel", EmployeeName: "Mike Johnson",
			EmployeeEmail: "mike.johnson@company.com", CardHolderName: "Mike Johnson",
			Date: "2024-01-13T05:30:00Z", Status: models.StatusApproved,
			Department: "Sales", Memo: "Transportation to airport",
			SpendProgramName: "Travel", SpendProgramID: "sp-2",
			IsCompliant:      true,
			CreatedAt:        "2024-01-13T05:30:00Z", UpdatedAt: "2024-01-13T06:00:00Z",
		},
		{
			ID: "tx-6", Amount: 125.00, Currency: "USD",
			Description: "Hotel night in SF", MerchantName: "Marriott Hotels",
			CategoryName: "Travel", EmployeeName: "Mike Johnson",
			EmployeeEmail: "mike.johnson@company.com", CardHolderName: "Mike Johnson",
			Date: "2024-01-13T22:00:00Z", Status: models.StatusPending,
			Department: "Sales", Memo: "Overnight stay for client meeting",
			PolicyViolations: []string{"Booking outside travel policy"},
			IsCompliant:      false, PendingApprover: "Sarah Wilson",
			CreatedAt: "2024-01-13T22:00:00Z", UpdatedAt: "2024-01-13T22:00:00Z",
		},
		{
			ID: "tx-7", Amount: 67.89, Currency: "USD",
			Description: "Client dinner", MerchantName: "The Cheesecake Factory",
			CategoryName: "Meals & Entertainment", EmployeeName: "Jane Smith",
			EmployeeEmail: "jane.smith@company.com", CardHolderName: "Jane Smith",
			Date: "2024-01-11T19:30:00Z", Status: models.StatusReimbursed,
			Department: "Marketing", Memo: "Dinner with potential client",
			ReceiptURL:  "https://app.ramp.com/receipts/rcpt-1007",
			Receipts:    []string{"https://app.ramp.com/receipts/rcpt-1007"},
			IsCompliant: true,
			CreatedAt:   "2024-01-11T19:30:00Z", UpdatedAt: "2024-01-12T09:00:00Z",
		},
		{
			ID: "tx-8", Amount: 199.99, Currency: "USD",
			Description: "Zoom Pro subscription", MerchantName: "Zoom Video Communications",
			CategoryName: "Software & Subscriptions", EmployeeName: "Sarah Wilson",
			EmployeeEmail: "sarah.wilson@company.com", CardHolderName: "Sarah Wilson",
			Date: "2024-01-10T10:00:00Z", Status: models.StatusApproved,
			Department: "Operations", Memo: "Annual video conferencing subscription",
			SpendProgramName: "Software", SpendProgramID: "sp-1",
			ReceiptURL:       "https://app.ramp.com/receipts/rcpt-1008",
			Receipts:         []string{"https://app.ramp.com/receipts/rcpt-1008"},
			IsCompliant:      true,
			CreatedAt:        "2024-01-10T10:00:00Z", UpdatedAt: "2024-01-10T11:00:00Z",
		},
	}
}
