package common

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// IsValidEndpoint checks the API endpoint is an absolute http(s) URL.
func IsValidEndpoint(endpoint string) bool {

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && len(parsed.Host) > 0
}

func IsValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsValidDate checks a YYYY-MM-DD calendar date.
func IsValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}
