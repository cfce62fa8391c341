package checker

import (
	"sort"
	"time"
)

// Recommendation strings emitted by the evaluator. Site-wide deduplication
// relies on exact string equality, so these are the single source of truth.
const (
	recommendSecure   = "Set the Secure flag"
	recommendHTTPOnly = "Set the HttpOnly flag"
	recommendSameSite = "Set the SameSite attribute (recommended: 'Strict' or 'Lax')"
)

// CookieAttributes describes one cookie as observed in a single response.
type CookieAttributes struct {
	Name     string     `json:"name"`
	Domain   string     `json:"domain"`
	Path     string     `json:"path"`
	Secure   bool       `json:"secure"`
	HTTPOnly bool       `json:"http_only"`
	SameSite string     `json:"same_site,omitempty"`
	Expires  *time.Time `json:"expires,omitempty"`
}

// CookieEvaluation pairs a cookie with the recommendations derived for it.
type CookieEvaluation struct {
	CookieAttributes
	Recommendations []string `json:"recommendations"`
}

// EvaluateCookie checks one cookie against the baseline security flags.
// Checks run in a fixed order (Secure, HttpOnly, SameSite) so the output
// order is stable. A SameSite value that is present is never second-guessed,
// including "None".
func EvaluateCookie(c CookieAttributes) []string {
	recommendations := make([]string, 0, 3)
	if !c.Secure {
		recommendations = append(recommendations, recommendSecure)
	}
	if !c.HTTPOnly {
		recommendations = append(recommendations, recommendHTTPOnly)
	}
	if c.SameSite == "" {
		recommendations = append(recommendations, recommendSameSite)
	}
	return recommendations
}

// Aggregate evaluates every cookie in input order and folds the per-cookie
// recommendations into one deduplicated site-wide list, sorted ascending by
// code point for deterministic output.
func Aggregate(cookies []CookieAttributes) ([]CookieEvaluation, []string) {
	evaluations := make([]CookieEvaluation, 0, len(cookies))
	seen := make(map[string]struct{})

	for _, c := range cookies {
		recommendations := EvaluateCookie(c)
		evaluations = append(evaluations, CookieEvaluation{
			CookieAttributes: c,
			Recommendations:  recommendations,
		})
		for _, rec := range recommendations {
			seen[rec] = struct{}{}
		}
	}

	site := make([]string, 0, len(seen))
	for rec := range seen {
		site = append(site, rec)
	}
	sort.Strings(site)

	return evaluations, site
}
