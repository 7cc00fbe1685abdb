package config

import "strings"

// Known placeholder secrets that ship in example env files. Any match
// forces mock mode.
var placeholderLiterals = []string{
	"demo_key_replace_with_real_key",
	"your_ramp_api_key_here",
	"your_client_id_here",
	"your_client_secret_here",
}

// minCredentialLength is the shortest string accepted as a real
// credential.
const minCredentialLength = 10

// Credentials holds the OAuth client-credentials pair for the live
// upstream.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Valid reports whether the pair looks like real production
// credentials. Empty, short or placeholder-looking values are rejected
// so the dashboard degrades to mock mode instead of failing silently
// against the live API.
//
// Known limitation: a legitimate credential containing "test" is
// misclassified as a placeholder.
func (c Credentials) Valid() bool {
	return c.rejectReason() == ""
}

// RejectReason returns a human-readable explanation of why the
// credentials were rejected, or "" when they are valid. Surfaced in the
// mock-mode fallback log.
func (c Credentials) RejectReason() string {
	return c.rejectReason()
}

func (c Credentials) rejectReason() string {
	for name, value := range map[string]string{"client_id": c.ClientID, "client_secret": c.ClientSecret} {
		if reason := rejectValue(value); reason != "" {
			return name + " " + reason
		}
	}
	return ""
}

func rejectValue(value string) string {
	if value == "" {
		return "is empty"
	}
	if len(value) < minCredentialLength {
		return "is too short"
	}
	lower := strings.ToLower(value)
	for _, placeholder := range placeholderLiterals {
		if value == placeholder {
			return "is a placeholder value"
		}
	}
	if strings.Contains(lower, "demo") || strings.Contains(lower, "test") {
		return "looks like a demo/test value"
	}
	return ""
}
