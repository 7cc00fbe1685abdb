// Package ramp is the live upstream client. It translates the
// server-pushable filter subset into upstream query parameters, follows
// cursor pagination, and runs every raw record through the transformer
// before it leaves this package.
package ramp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/rampboard/pkg/config"
	"github.com/yurifrl/rampboard/pkg/models"
	"github.com/yurifrl/rampboard/pkg/transform"
)

const (
	// SinglePageCeiling is the largest page the upstream serves in one
	// request. A requested page size above it signals "fetch all".
	SinglePageCeiling = 100

	// defaultMaxPages bounds the fetch-all cursor loop against an
	// unbounded upstream collection.
	defaultMaxPages = 10
)

// Client talks to the live upstream API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenSource
	logger  *log.Logger

	// maxPages caps the fetch-all loop. Lowered in tests.
	maxPages int
}

// New builds a live client from the resolved configuration.
func New(cfg *config.Config, logger *log.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	return &Client{
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		http:     httpClient,
		tokens:   NewTokenSource(cfg.Credentials, cfg.TokenURL, httpClient, logger),
		logger:   logger,
		maxPages: defaultMaxPages,
	}
}

// transactionsEnvelope is the upstream transactions response shape.
type transactionsEnvelope struct {
	Data []*transform.RawTransaction `json:"data"`
	Page struct {
		Next string `json:"next"`
	} `json:"page"`
	TotalCount int `json:"total_count"`
}

// FetchTransactions fetches one page, or — when pageSize exceeds the
// single-page ceiling — follows cursors until they are exhausted or the
// page cap is reached, transforming every record on the way.
func (c *Client) FetchTransactions(ctx context.Context, filters models.ServerFilters, page, pageSize int) (*models.ApiResponse[*models.Transaction], error) {
	if pageSize > SinglePageCeiling {
		return c.fetchAllTransactions(ctx, filters)
	}

	params := translateFilters(filters)
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var envelope transactionsEnvelope
	if err := c.get(ctx, "/transactions", params, &envelope); err != nil {
		return nil, err
	}

	data := c.transformAll(envelope.Data)
	totalCount := envelope.TotalCount
	if totalCount == 0 {
		totalCount = len(data)
	}
	return &models.ApiResponse[*models.Transaction]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		HasMore:    envelope.Page.Next != "",
	}, nil
}

func (c *Client) fetchAllTransactions(ctx context.Context, filters models.ServerFilters) (*models.ApiResponse[*models.Transaction], error) {
	var all []*models.Transaction
	cursor := ""
	hasMore := false

	for fetched := 0; fetched < c.maxPages; fetched++ {
		params := translateFilters(filters)
		params.Set("page_size", strconv.Itoa(SinglePageCeiling))
		if cursor != "" {
			params.Set("start", cursor)
		}

		var envelope transactionsEnvelope
		if err := c.get(ctx, "/transactions", params, &envelope); err != nil {
			return nil, err
		}
		all = append(all, c.transformAll(envelope.Data)...)

		cursor = envelope.Page.Next
		hasMore = cursor != ""
		if !hasMore {
			break
		}
	}
	if hasMore {
		c.logger.Warn("fetch-all stopped at page cap with upstream pages remaining", "pages", c.maxPages, "records", len(all))
	}

	return &models.ApiResponse[*models.Transaction]{
		Data:       all,
		Page:       1,
		PageSize:   len(all),
		TotalCount: len(all),
		HasMore:    hasMore,
	}, nil
}

// FetchCards fetches and transforms the card collection.
func (c *Client) FetchCards(ctx context.Context) (*models.ApiResponse[*models.Card], error) {
	var envelope struct {
		Data []*transform.RawCard `json:"data"`
	}
	if err := c.get(ctx, "/cards", url.Values{}, &envelope); err != nil {
		return nil, err
	}

	cards := make([]*models.Card, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		card, err := transform.Card(raw)
		if err != nil {
			c.logger.Warn("skipping card record", "error", err)
			continue
		}
		cards = append(cards, card)
	}
	return collectionResponse(cards), nil
}

// FetchUsers fetches and transforms the user collection.
func (c *Client) FetchUsers(ctx context.Context) (*models.ApiResponse[*models.User], error) {
	var envelope struct {
		Data []*transform.RawUser `json:"data"`
	}
	if err := c.get(ctx, "/users", url.Values{}, &envelope); err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		user, err := transform.User(raw)
		if err != nil {
			c.logger.Warn("skipping user record", "error", err)
			continue
		}
		users = append(users, user)
	}
	return collectionResponse(users), nil
}

func (c *Client) transformAll(raws []*transform.RawTransaction) []*models.Transaction {
	out := make([]*models.Transaction, 0, len(raws))
	for _, raw := range raws {
		tx, err := transform.Transaction(raw)
		if err != nil {
			c.logger.Warn("skipping transaction record", "error", err)
			continue
		}
		out = append(out, tx)
	}
	return out
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, v any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	reqURL := c.baseURL + endpoint
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("upstream request", "endpoint", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("failed to read upstream response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// translateFilters maps the server-pushable filter subset onto upstream
// query parameters: amounts go to cents, the canonical status to the
// upstream enum, and calendar dates to day-boundary timestamps.
func translateFilters(f models.ServerFilters) url.Values {
	params := url.Values{}
	if f.Employee != "" {
		params.Set("user_id", f.Employee)
	}
	if f.Category != "" {
		params.Set("category_id", f.Category)
	}
	if f.Department != "" {
		params.Set("department_id", f.Department)
	}
	if f.DateFrom != "" {
		params.Set("from_date", dayBoundary(f.DateFrom, false))
	}
	if f.DateTo != "" {
		params.Set("to_date", dayBoundary(f.DateTo, true))
	}
	if f.Status != "" {
		params.Set("state", transform.UpstreamStatus(f.Status))
	}
	if f.MinAmount > 0 {
		params.Set("min_amount", toCents(f.MinAmount))
	}
	if f.MaxAmount > 0 {
		params.Set("max_amount", toCents(f.MaxAmount))
	}
	return params
}

// dayBoundary expands a calendar date to the matching edge of the day.
// Values that are not plain dates pass through untouched.
func dayBoundary(date string, end bool) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	if end {
		parsed = parsed.Add(24*time.Hour - time.Second)
	}
	return parsed.UTC().Format(time.RFC3339)
}

func toCents(major float64) string {
	return decimal.NewFromFloat(major).Mul(decimal.NewFromInt(100)).Round(0).String()
}

func collectionResponse[T any](data []T) *models.ApiResponse[T] {
	return &models.ApiResponse[T]{
		Data:       data,
		Page:       1,
		PageSize:   len(data),
		TotalCount: len(data),
		HasMore:    false,
	}
}
