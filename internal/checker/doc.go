// Package checker implements the cookie security scan.
//
// Architecture overview:
//
//   - EvaluateCookie is the core decision logic: a pure function mapping one
//     CookieAttributes record to the list of baseline recommendations
//     (Secure, HttpOnly, SameSite) it is missing. It never fails; malformed
//     or absent attributes degrade to "flag not set".
//   - Aggregate folds the per-cookie evaluations into a deduplicated,
//     lexicographically sorted site-wide recommendation list while preserving
//     the response's cookie order for the per-cookie details.
//   - CookieScanner is the thin orchestrator around the core: it issues the
//     single GET request (bounded timeout, browser User-Agent), converts the
//     parsed Set-Cookie records, and assembles the ScanReport.
//   - Failures surface as *RequestError or *HTTPStatusError; NewErrorReport
//     converts either into the ErrorReport payload that replaces a
//     ScanReport. The evaluator and aggregator themselves never error.
//
// This layout keeps the decision logic internal and side-effect free while
// cmd/ handles rendering, persistence, and terminal output.
package checker
