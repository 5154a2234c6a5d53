// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. It targets the
// credentials this service handles: Notion integration tokens, bearer
// authorization values, basic-auth passwords and bcrypt hashes.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHashPlaceholder       = "[REDACTED_HASH]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; earlier, more specific rules win.
var rules = []rule{
	// Authorization: Bearer <token>
	{
		pattern:     regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]+`),
		replacement: "${1}" + RedactedKeyPlaceholder,
	},
	// Notion internal integration tokens (legacy "secret_" and current "ntn_").
	{
		pattern:     regexp.MustCompile(`\b(secret|ntn)_[A-Za-z0-9]{8,}`),
		replacement: RedactedKeyPlaceholder,
	},
	// bcrypt hashes
	{
		pattern:     regexp.MustCompile(`\$2[aby]?\$\d{2}\$[./A-Za-z0-9]{22,53}`),
		replacement: RedactedHashPlaceholder,
	},
	// userinfo embedded in URLs
	{
		pattern:     regexp.MustCompile(`(?i)([a-z][a-z0-9+.-]*://)[^/@\s:]+:[^/@\s]+@`),
		replacement: "${1}" + RedactedCredentialPlaceholder + "@",
	},
	// password=..., password: ...
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)(['"\s:=]+)[^'"&\s]{3,}`),
		replacement: "${1}${2}" + RedactedCredentialPlaceholder,
	},
	// api_key=..., token: ...
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		replacement: "${1}${2}" + RedactedKeyPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
