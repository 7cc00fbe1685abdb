// Package service composes the dashboard pipeline: decide mock vs live
// mode, fetch the server-filterable subset, apply client-only filters,
// and aggregate. One Dashboard serves all request handlers.
package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/rampboard/pkg/config"
	"github.com/yurifrl/rampboard/pkg/export"
	"github.com/yurifrl/rampboard/pkg/filter"
	"github.com/yurifrl/rampboard/pkg/mock"
	"github.com/yurifrl/rampboard/pkg/models"
	"github.com/yurifrl/rampboard/pkg/ramp"
	"github.com/yurifrl/rampboard/pkg/stats"
)

// Mode identifies the active data source.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

// fetchAllPageSize exceeds the single-page ceiling, signalling the
// source to collect every page (up to its cap).
const fetchAllPageSize = 1000

// Source is the data source contract shared by the live client and the
// mock provider.
type Source interface {
	FetchTransactions(ctx context.Context, filters models.ServerFilters, page, pageSize int) (*models.ApiResponse[*models.Transaction], error)
	FetchCards(ctx context.Context) (*models.ApiResponse[*models.Card], error)
	FetchUsers(ctx context.Context) (*models.ApiResponse[*models.User], error)
}

// Dashboard orchestrates fetch, filter and aggregation cycles. The only
// state it keeps is the last full fetch, so a filter change that touches
// only client-side predicates re-filters in memory instead of hitting
// the upstream again.
type Dashboard struct {
	source Source
	mode   Mode
	logger *log.Logger

	mu          sync.Mutex
	cacheValid  bool
	cacheKey    models.ServerFilters
	cacheData   []*models.Transaction
	lastFetched time.Time
}

// New selects the mode from the configured credentials and wires the
// matching source. Invalid credentials degrade to mock mode; the
// rejection reason is logged so operators can tell the silent fallback
// happened.
func New(cfg *config.Config, logger *log.Logger) (*Dashboard, error) {
	if cfg.Credentials.Valid() {
		logger.Info("live mode: upstream credentials configured", "api", cfg.APIBaseURL)
		return &Dashboard{source: ramp.New(cfg, logger), mode: ModeLive, logger: logger}, nil
	}

	logger.Warn("mock mode: upstream credentials rejected", "reason", cfg.Credentials.RejectReason())
	var provider *mock.Provider
	var err error
	if cfg.FixturePath != "" {
		provider, err = mock.NewProviderFromFile(cfg.FixturePath, logger)
		if err != nil {
			return nil, err
		}
	} else {
		provider = mock.NewProvider(logger)
	}
	return &Dashboard{source: provider, mode: ModeMock, logger: logger}, nil
}

// NewWithSource wires an explicit source. Used by tests.
func NewWithSource(source Source, mode Mode, logger *log.Logger) *Dashboard {
	return &Dashboard{source: source, mode: mode, logger: logger}
}

// Mode reports whether the dashboard is serving mock or live data.
func (d *Dashboard) Mode() Mode { return d.mode }

// Transactions serves one page of the filtered collection. Requests with
// no client-only predicates delegate pagination to the source; requests
// with client-only predicates need the full server-filtered set first,
// then filter and paginate locally.
func (d *Dashboard) Transactions(ctx context.Context, filters models.FilterOptions, page, pageSize int) (*models.ApiResponse[*models.Transaction], error) {
	if !filters.HasClientFilters() && pageSize <= ramp.SinglePageCeiling {
		return d.source.FetchTransactions(ctx, filters.ServerSubset(), page, pageSize)
	}

	full, err := d.fullSet(ctx, filters.ServerSubset())
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(full, filters)
	if pageSize > ramp.SinglePageCeiling {
		pageSize = len(filtered)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	return models.Paginate(filtered, page, pageSize), nil
}

// Stats runs the full pipeline and aggregates the result.
func (d *Dashboard) Stats(ctx context.Context, filters models.FilterOptions) (models.DashboardStats, error) {
	filtered, err := d.filteredSet(ctx, filters)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return stats.Compute(filtered), nil
}

// Export writes the filtered collection to w in the requested format and
// returns the attachment filename.
func (d *Dashboard) Export(ctx context.Context, filters models.FilterOptions, format string, w io.Writer) (string, error) {
	filename, err := export.Filename(format, time.Now())
	if err != nil {
		return "", err
	}
	filtered, err := d.filteredSet(ctx, filters)
	if err != nil {
		return "", err
	}
	if err := export.WriteCSV(w, filtered); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return filename, nil
}

// Cards passes the card collection through.
func (d *Dashboard) Cards(ctx context.Context) (*models.ApiResponse[*models.Card], error) {
	return d.source.FetchCards(ctx)
}

// Users passes the user collection through.
func (d *Dashboard) Users(ctx context.Context) (*models.ApiResponse[*models.User], error) {
	return d.source.FetchUsers(ctx)
}

// Refresh drops the cached full fetch and eagerly re-fetches each
// dataset, reporting success per dataset.
func (d *Dashboard) Refresh(ctx context.Context) map[string]error {
	d.mu.Lock()
	d.cacheValid = false
	d.mu.Unlock()

	results := make(map[string]error, 3)
	_, results["transactions"] = d.fullSet(ctx, models.ServerFilters{})
	_, results["cards"] = d.source.FetchCards(ctx)
	_, results["users"] = d.source.FetchUsers(ctx)
	return results
}

// filteredSet returns the full server-filtered set with client-only
// predicates applied.
func (d *Dashboard) filteredSet(ctx context.Context, filters models.FilterOptions) ([]*models.Transaction, error) {
	full, err := d.fullSet(ctx, filters.ServerSubset())
	if err != nil {
		return nil, err
	}
	return filter.Apply(full, filters), nil
}

// fullSet returns the complete collection for a server-filter subset,
// reusing the cached result when the subset matches the previous fetch.
func (d *Dashboard) fullSet(ctx context.Context, key models.ServerFilters) ([]*models.Transaction, error) {
	d.mu.Lock()
	if d.cacheValid && d.cacheKey == key {
		cached := d.cacheData
		d.mu.Unlock()
		d.logger.Debug("reusing cached fetch", "transactions", len(cached))
		return cached, nil
	}
	d.mu.Unlock()

	resp, err := d.source.FetchTransactions(ctx, key, 1, fetchAllPageSize)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.cacheValid = true
	d.cacheKey = key
	d.cacheData = resp.Data
	d.lastFetched = time.Now()
	d.mu.Unlock()

	d.logger.Info("fetched transactions", "count", len(resp.Data), "mode", d.mode)
	return resp.Data, nil
}
