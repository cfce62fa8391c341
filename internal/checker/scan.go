package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	consts "github.com/khanhnv2901/cookiescan-cli/internal/shared/constants"
)

// ScanReport is the aggregate result of one cookie scan. Slice fields are
// always materialized so an empty scan still serializes them as [].
type ScanReport struct {
	URL                     string             `json:"url"`
	ScanTime                time.Time          `json:"scan_time"`
	HTTPStatus              int                `json:"http_status"`
	CookiesFound            int                `json:"cookies_found"`
	CookieDetails           []CookieEvaluation `json:"cookie_details"`
	SecurityRecommendations []string           `json:"security_recommendations"`
}

// ErrorReport replaces a ScanReport when the scan could not complete.
type ErrorReport struct {
	Error    string    `json:"error"`
	URL      string    `json:"url"`
	ScanTime time.Time `json:"scan_time"`
}

// NewErrorReport converts a scan error into the failure payload. Request
// failures keep their descriptive message; anything else gets a generic one.
func NewErrorReport(target string, err error) *ErrorReport {
	message := fmt.Sprintf("unexpected error: %v", err)

	var requestErr *RequestError
	var statusErr *HTTPStatusError
	if errors.As(err, &requestErr) || errors.As(err, &statusErr) {
		message = err.Error()
	}

	return &ErrorReport{
		Error:    message,
		URL:      target,
		ScanTime: time.Now().UTC(),
	}
}

// CookieScanner fetches a single response from a target and evaluates the
// cookies it sets.
type CookieScanner struct {
	Timeout   time.Duration
	UserAgent string
}

// Scan issues one GET request to the target and builds a ScanReport from the
// cookies of the final response (redirects are followed). Failures are
// returned as *RequestError or *HTTPStatusError for the caller to convert.
func (s *CookieScanner) Scan(ctx context.Context, target string) (*ScanReport, error) {
	scanTime := time.Now().UTC()
	fullURL := NormalizeHTTPTarget(target)

	client := &http.Client{Timeout: s.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &RequestError{Target: target, Err: err}
	}

	userAgent := s.UserAgent
	if userAgent == "" {
		// Some sites withhold cookies from clients that do not look like a browser.
		userAgent = consts.DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &RequestError{Target: target, Err: err}
	}
	defer resp.Body.Close()

	// Discard response body - only the headers matter for cookie analysis
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return nil, &HTTPStatusError{Target: target, StatusCode: resp.StatusCode}
	}

	cookies := cookiesFromResponse(resp, scanTime)
	evaluations, siteRecommendations := Aggregate(cookies)

	return &ScanReport{
		URL:                     target,
		ScanTime:                scanTime,
		HTTPStatus:              resp.StatusCode,
		CookiesFound:            len(cookies),
		CookieDetails:           evaluations,
		SecurityRecommendations: siteRecommendations,
	}, nil
}

// Name returns the name of this checker
func (s *CookieScanner) Name() string {
	return "scan cookies"
}

// cookiesFromResponse converts the parsed Set-Cookie records into the form
// the evaluator consumes. Attributes net/http could not parse degrade to
// "flag not set" rather than failing the scan.
func cookiesFromResponse(resp *http.Response, now time.Time) []CookieAttributes {
	parsed := resp.Cookies()
	cookies := make([]CookieAttributes, 0, len(parsed))
	for _, c := range parsed {
		cookies = append(cookies, CookieAttributes{
			Name:     c.Name,
			Domain:   c.Domain,
			Path:     c.Path,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
			SameSite: sameSiteValue(c.SameSite),
			Expires:  cookieExpiry(c, now),
		})
	}
	return cookies
}

func sameSiteValue(s http.SameSite) string {
	switch s {
	case http.SameSiteStrictMode:
		return "Strict"
	case http.SameSiteLaxMode:
		return "Lax"
	case http.SameSiteNoneMode:
		return "None"
	}
	return ""
}

// cookieExpiry resolves Expires/Max-Age to an absolute timestamp.
// Nil means a session cookie.
func cookieExpiry(c *http.Cookie, now time.Time) *time.Time {
	if !c.Expires.IsZero() {
		expires := c.Expires.UTC()
		return &expires
	}
	if c.MaxAge > 0 {
		expires := now.Add(time.Duration(c.MaxAge) * time.Second)
		return &expires
	}
	return nil
}
