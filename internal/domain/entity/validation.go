package entity

import (
	"fmt"
	"net/url"
	"strings"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

// ValidateRequired checks that value is non-empty after trimming whitespace.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateURL validates that rawURL is a well-formed absolute http(s) URL.
// The field name is reported back in the returned ValidationError.
func ValidateURL(field, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}

	// DoS protection: enforce maximum URL length
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "is not a valid URI"}
	}

	// HTTPまたはHTTPSスキームのみ許可
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "must have a valid host"}
	}

	return nil
}

// ValidateOptionalURL behaves like ValidateURL but accepts an empty value.
func ValidateOptionalURL(field, rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return nil
	}
	return ValidateURL(field, rawURL)
}
