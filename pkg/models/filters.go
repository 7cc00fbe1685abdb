package models

// FilterOptions is the sparse predicate set accepted from the route
// layer. A zero value for any field (empty string, zero number, empty
// slice) means "no constraint on that dimension", never "match empty".
//
// The fields split into two classes: server-pushable predicates that the
// upstream API can express as query parameters, and client-only
// predicates that are evaluated locally after the fetch.
type FilterOptions struct {
	// Server-pushable.
	Employee   string  `json:"employee,omitempty"`
	Category   string  `json:"category,omitempty"`
	DateFrom   string  `json:"dateFrom,omitempty"`
	DateTo     string  `json:"dateTo,omitempty"`
	Status     string  `json:"status,omitempty"`
	MinAmount  float64 `json:"minAmount,omitempty"`
	MaxAmount  float64 `json:"maxAmount,omitempty"`
	Department string  `json:"department,omitempty"`

	// Client-only.
	Departments      []string `json:"departments,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	Merchants        []string `json:"merchants,omitempty"`
	SpendPrograms    []string `json:"spendPrograms,omitempty"`
	PolicyCompliance string   `json:"policyCompliance,omitempty"`
}

// ServerFilters is the server-pushable subset. It is comparable, which
// lets the orchestrator use it as a cache key for the last full fetch.
type ServerFilters struct {
	Employee   string
	Category   string
	DateFrom   string
	DateTo     string
	Status     string
	MinAmount  float64
	MaxAmount  float64
	Department string
}

// Policy compliance selector values.
const (
	PolicyCompliant    = "compliant"
	PolicyNonCompliant = "non-compliant"
)

// ServerSubset extracts the predicates the upstream API can express.
func (f FilterOptions) ServerSubset() ServerFilters {
	return ServerFilters{
		Employee:   f.Employee,
		Category:   f.Category,
		DateFrom:   f.DateFrom,
		DateTo:     f.DateTo,
		Status:     f.Status,
		MinAmount:  f.MinAmount,
		MaxAmount:  f.MaxAmount,
		Department: f.Department,
	}
}

// HasServerFilters reports whether any server-pushable predicate is set.
func (f FilterOptions) HasServerFilters() bool {
	return f.ServerSubset() != (ServerFilters{})
}

// HasClientFilters reports whether any client-only predicate is set.
func (f FilterOptions) HasClientFilters() bool {
	return len(f.Departments) > 0 ||
		len(f.Categories) > 0 ||
		len(f.Merchants) > 0 ||
		len(f.SpendPrograms) > 0 ||
		f.PolicyCompliance != ""
}
