package export

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yurifrl/rampboard/pkg/models"
)

func TestWriteCSV(t *testing.T) {
	transactions := []*models.Transaction{
		{
			ID: "tx-1", Date: "2024-01-15T12:30:00Z",
			EmployeeName: "John Doe", EmployeeEmail: "john.doe@company.com",
			MerchantName: "Chipotle Mexican Grill", Description: "Team lunch",
			CategoryName: "Meals & Entertainment", Amount: 45.67, Currency: "USD",
			Status: models.StatusApproved, Department: "Engineering",
			CardHolderName: "John Doe", Memo: "Team building",
			CreatedAt: "2024-01-15T12:30:00Z",
		},
		{
			// Comma and quote in fields exercise RFC-4180 quoting.
			ID: "tx-2", MerchantName: `Joe's "Best" Diner`,
			Description: "Dinner, client meeting", Amount: 9.5,
			Status: models.StatusPending,
		},
	}

	var buf strings.Builder
	if err := WriteCSV(&buf, transactions); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 records", len(rows))
	}
	if rows[0][0] != "Transaction ID" || rows[0][len(rows[0])-1] != "Created At" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][7] != "45.67" {
		t.Errorf("amount column = %q, want two decimal places", rows[1][7])
	}
	if rows[2][4] != `Joe's "Best" Diner` || rows[2][5] != "Dinner, client meeting" {
		t.Errorf("quoting round-trip failed: %v", rows[2])
	}
	if rows[2][7] != "9.50" {
		t.Errorf("amount column = %q, want 9.50", rows[2][7])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf strings.Builder
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty collection must still emit the header, got %d lines", len(lines))
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	got, err := Filename(FormatCSV, now)
	if err != nil {
		t.Fatalf("Filename failed: %v", err)
	}
	if got != "transactions-2024-06-15.csv" {
		t.Errorf("filename = %q", got)
	}

	_, err = Filename("excel", now)
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Format != "excel" {
		t.Errorf("error format = %q", unsupported.Format)
	}
}
