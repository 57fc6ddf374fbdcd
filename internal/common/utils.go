package common

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL indicates a URL that cannot be parsed into a navigable
// http(s) address even after sanitization.
var ErrInvalidURL = errors.New("invalid URL")

// markdownLinkPattern extracts the URL from a markdown link: [text](url)
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// ContentHash computes the SHA256 hash of content and returns a hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste
// issues: edge whitespace, markdown link wrappers, stray punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// "[click here](https://example.com)" -> "https://example.com"
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// "https://example.com," -> "https://example.com"
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	// "(https://example.com" -> "https://example.com"
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// EncodeURL sanitizes and percent-encodes a URL for navigation. Each
// component (path, query, fragment) is decoded and re-encoded, so the
// operation is idempotent: the user may pass either a raw or an already
// encoded URL and get the same result. Query structure (= and &) is
// preserved. Returns ErrInvalidURL for anything that is not a usable
// http(s) address.
func EncodeURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty after sanitization: %q", ErrInvalidURL, rawURL)
	}

	u, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidURL, rawURL)
	}
	// "https://example.com{}" should fail
	if strings.ContainsAny(u.Host, "{}[]<>\"' ") {
		return "", fmt.Errorf("%w: malformed host %q", ErrInvalidURL, u.Host)
	}

	// url.Parse decoded the path and fragment; clearing the raw forms makes
	// String() re-encode them canonically.
	u.RawPath = ""
	u.RawFragment = ""
	u.RawQuery = encodeQuery(u.RawQuery)

	return u.String(), nil
}

// encodeQuery re-encodes a raw query string pair by pair, preserving the
// = and & separators.
func encodeQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		key, value, hasValue := strings.Cut(pair, "=")
		if hasValue {
			pairs[i] = encodeQueryComponent(key) + "=" + encodeQueryComponent(value)
		} else {
			pairs[i] = encodeQueryComponent(key)
		}
	}
	return strings.Join(pairs, "&")
}

// encodeQueryComponent decodes then re-encodes one query key or value.
// Decoding first keeps the round trip idempotent; components with broken
// percent escapes are treated as literal text.
func encodeQueryComponent(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		decoded = s
	}
	// QueryEscape uses + for spaces; %20 is valid everywhere.
	return strings.ReplaceAll(url.QueryEscape(decoded), "+", "%20")
}
