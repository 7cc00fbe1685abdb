// Package export encodes transaction collections for download. CSV is
// the supported format; spreadsheet encodings are delegated to the
// consumer side and rejected here.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/yurifrl/rampboard/pkg/models"
)

// FormatCSV is the only format this package encodes.
const FormatCSV = "csv"

// UnsupportedFormatError is returned for format selectors this package
// does not encode (e.g. "excel").
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q", e.Format)
}

var header = []string{
	"Transaction ID",
	"Date",
	"Employee",
	"Email",
	"Merchant",
	"Description",
	"Category",
	"Amount",
	"Currency",
	"Status",
	"Department",
	"Card Holder",
	"Memo",
	"Created At",
}

// WriteCSV writes the collection as RFC-4180 CSV with a header row.
func WriteCSV(w io.Writer, transactions []*models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.ID,
			tx.Date,
			tx.EmployeeName,
			tx.EmployeeEmail,
			tx.MerchantName,
			tx.Description,
			tx.CategoryName,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Currency,
			string(tx.Status),
			tx.Department,
			tx.CardHolderName,
			tx.Memo,
			tx.CreatedAt,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing transaction %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename returns the date-stamped attachment filename for a format, or
// an UnsupportedFormatError when the format is not encodable.
func Filename(format string, now time.Time) (string, error) {
	if format != FormatCSV {
		return "", &UnsupportedFormatError{Format: format}
	}
	return fmt.Sprintf("transactions-%s.csv", now.Format("2006-01-02")), nil
}
