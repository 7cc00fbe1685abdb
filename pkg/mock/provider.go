// Package mock serves a deterministic in-memory dataset with the same
// filter-and-paginate semantics as the live upstream, so the dashboard
// behaves identically when no valid credentials are configured.
package mock

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/yurifrl/rampboard/pkg/models"
	"github.com/yurifrl/rampboard/pkg/ramp"
)

// Provider is the mock-mode stand-in for the live client.
type Provider struct {
	logger       *log.Logger
	transactions []*models.Transaction
	cards        []*models.Card
	users        []*models.User
}

// fixtureFile is the YAML override schema.
type fixtureFile struct {
	Transactions []*models.Transaction `yaml:"transactions"`
	Cards        []*models.Card        `yaml:"cards"`
	Users        []*models.User        `yaml:"users"`
}

// NewProvider returns a provider backed by the embedded fixtures.
func NewProvider(logger *log.Logger) *Provider {
	return &Provider{
		logger:       logger,
		transactions: fixtureTransactions(),
		cards:        fixtureCards(),
		users:        fixtureUsers(),
	}
}

// NewProviderFromFile returns a provider backed by a YAML fixture file.
// Sections missing from the file fall back to the embedded fixtures.
func NewProviderFromFile(path string, logger *log.Logger) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}

	p := NewProvider(logger)
	if len(ff.Transactions) > 0 {
		p.transactions = ff.Transactions
	}
	if len(ff.Cards) > 0 {
		p.cards = ff.Cards
	}
	if len(ff.Users) > 0 {
		p.users = ff.Users
	}
	logger.Info("loaded fixture file", "path", path, "transactions", len(p.transactions))
	return p, nil
}

// FetchTransactions filters and paginates the fixture dataset with the
// live server-filter semantics. Page sizes above the single-page ceiling
// mean "fetch all", mirroring the live client.
func (p *Provider) FetchTransactions(_ context.Context, filters models.ServerFilters, page, pageSize int) (*models.ApiResponse[*models.Transaction], error) {
	filtered := filterTransactions(p.transactions, filters)
	if pageSize > ramp.SinglePageCeiling {
		return &models.ApiResponse[*models.Transaction]{
			Data:       filtered,
			Page:       1,
			PageSize:   len(filtered),
			TotalCount: len(filtered),
			HasMore:    false,
		}, nil
	}
	return models.Paginate(filtered, page, pageSize), nil
}

// FetchCards returns the fixture cards.
func (p *Provider) FetchCards(_ context.Context) (*models.ApiResponse[*models.Card], error) {
	return &models.ApiResponse[*models.Card]{
		Data:       p.cards,
		Page:       1,
		PageSize:   len(p.cards),
		TotalCount: len(p.cards),
		HasMore:    false,
	}, nil
}

// FetchUsers returns the fixture users.
func (p *Provider) FetchUsers(_ context.Context) (*models.ApiResponse[*models.User], error) {
	return &models.ApiResponse[*models.User]{
		Data:       p.users,
		Page:       1,
		PageSize:   len(p.users),
		TotalCount: len(p.users),
		HasMore:    false,
	}, nil
}

// filterTransactions mirrors the server-pushable filter semantics
// locally: employee is a case-insensitive substring of the employee
// name, category/status/department match exactly, dates and amounts are
// range checks.
func filterTransactions(transactions []*models.Transaction, f models.ServerFilters) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if f.Employee != "" && !strings.Contains(strings.ToLower(tx.EmployeeName), strings.ToLower(f.Employee)) {
			continue
		}
		if f.Category != "" && tx.CategoryName != f.Category {
			continue
		}
		if f.Status != "" && tx.Status != models.Status(f.Status) {
			continue
		}
		if f.Department != "" && tx.Department != f.Department {
			continue
		}
		if f.MinAmount > 0 && tx.Amount < f.MinAmount {
			continue
		}
		if f.MaxAmount > 0 && tx.Amount > f.MaxAmount {
			continue
		}
		if !withinDates(tx.Date, f.DateFrom, f.DateTo) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func withinDates(date, from, to string) bool {
	txDate, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return true
	}
	if from != "" {
		if f, err := parseDay(from); err == nil && txDate.Before(f) {
			return false
		}
	}
	if to != "" {
		if t, err := parseDay(to); err == nil && txDate.After(t.Add(24*time.Hour-time.Second)) {
			return false
		}
	}
	return true
}

func parseDay(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
