package ramp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/rampboard/pkg/config"
)

// tokenScopes is the fixed scope set requested on every exchange.
const tokenScopes = "transactions:read cards:read users:read"

// expiryBuffer is subtracted from the token lifetime so a token is
// refreshed before it can expire mid-request.
const expiryBuffer = 5 * time.Minute

// TokenSource owns the OAuth client-credentials token lifecycle. The
// cached token and its expiry are guarded by a mutex, and the
// check-and-refresh runs under the lock so concurrent callers racing
// after expiry perform exactly one exchange.
type TokenSource struct {
	creds    config.Credentials
	tokenURL string
	client   *http.Client
	logger   *log.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenSource returns a token source for the given credentials.
func NewTokenSource(creds config.Credentials, tokenURL string, client *http.Client, logger *log.Logger) *TokenSource {
	return &TokenSource{
		creds:    creds,
		tokenURL: tokenURL,
		client:   client,
		logger:   logger,
	}
}

// Token returns a cached access token while it is still comfortably
// inside its lifetime, performing a token-endpoint exchange otherwise.
// Exchange failure is fatal for the calling request and is not retried.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expiresAt.Add(-expiryBuffer)) {
		return ts.token, nil
	}

	token, expiresIn, err := ts.exchange(ctx)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	ts.token = token
	ts.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	ts.logger.Debug("access token refreshed", "expires_in", expiresIn)
	return ts.token, nil
}

func (ts *TokenSource) exchange(ctx context.Context) (string, int64, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", tokenScopes)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.SetBasicAuth(ts.creds.ClientID, ts.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", 0, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", 0, fmt.Errorf("token endpoint returned an empty access token")
	}
	return payload.AccessToken, payload.ExpiresIn, nil
}
