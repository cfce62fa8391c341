package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/khanhnv2901/cookiescan-cli/internal/checker"
)

func sampleScanReport() *checker.ScanReport {
	expires := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	return &checker.ScanReport{
		URL:          "https://example.com",
		ScanTime:     time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		HTTPStatus:   200,
		CookiesFound: 2,
		CookieDetails: []checker.CookieEvaluation{
			{
				CookieAttributes: checker.CookieAttributes{Name: "session", Domain: "example.com", Path: "/"},
				Recommendations: []string{
					"Set the Secure flag",
					"Set the HttpOnly flag",
					"Set the SameSite attribute (recommended: 'Strict' or 'Lax')",
				},
			},
			{
				CookieAttributes: checker.CookieAttributes{
					Name: "prefs", Domain: "example.com", Path: "/",
					Secure: true, HTTPOnly: true, SameSite: "Strict", Expires: &expires,
				},
				Recommendations: []string{},
			},
		},
		SecurityRecommendations: []string{
			"Set the HttpOnly flag",
			"Set the SameSite attribute (recommended: 'Strict' or 'Lax')",
			"Set the Secure flag",
		},
	}
}

func TestRenderScanReport(t *testing.T) {
	out := renderScanReport(sampleScanReport())

	wantLines := []string{
		"Cookie scan results for URL: https://example.com",
		"Scan time: 2026-08-28T10:00:00Z",
		"HTTP status code: 200",
		"Total cookies found: 2",
		"--- Cookie #1 ---",
		"Name: session",
		"Secure attribute: false",
		"HttpOnly attribute: false",
		"SameSite attribute: not set",
		"Expires: session",
		"  - Set the Secure flag",
		"--- Cookie #2 ---",
		"SameSite attribute: Strict",
		"Expires: 2026-12-31T23:59:59Z",
		siteSectionLine,
		"- Set the HttpOnly flag",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("report missing line %q\n%s", line, out)
		}
	}

	if strings.Contains(out, noCookiesLine) {
		t.Error("no-cookies sentence present despite cookies being listed")
	}
	if strings.Contains(out, noFindingsLine) {
		t.Error("no-findings sentence present despite recommendations")
	}
}

func TestRenderScanReport_NoCookies(t *testing.T) {
	report := &checker.ScanReport{
		URL:                     "https://example.com",
		ScanTime:                time.Now().UTC(),
		HTTPStatus:              204,
		CookieDetails:           []checker.CookieEvaluation{},
		SecurityRecommendations: []string{},
	}

	out := renderScanReport(report)
	if !strings.Contains(out, "Total cookies found: 0") {
		t.Errorf("expected zero cookie count:\n%s", out)
	}
	if !strings.Contains(out, noCookiesLine) {
		t.Errorf("expected no-cookies sentence:\n%s", out)
	}
	if !strings.Contains(out, noFindingsLine) {
		t.Errorf("expected no-findings sentence:\n%s", out)
	}
}

func TestRenderErrorReport(t *testing.T) {
	report := &checker.ErrorReport{
		Error:    "request to https://example.com failed: connection refused",
		URL:      "https://example.com",
		ScanTime: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}

	out := renderErrorReport(report)
	want := "Cookie scan failed for URL: https://example.com\n" +
		"Time: 2026-08-28T10:00:00Z\n" +
		"Error: request to https://example.com failed: connection refused\n"
	if out != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestWriteScanReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")

	if err := WriteScanReportFile(path, sampleScanReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report back: %v", err)
	}
	if !strings.Contains(string(data), "Cookie scan results for URL: https://example.com") {
		t.Errorf("unexpected file content:\n%s", data)
	}

	// A second write overwrites, not appends.
	if err := WriteScanReportFile(path, sampleScanReport()); err != nil {
		t.Fatalf("unexpected error on rewrite: %v", err)
	}
	again, _ := os.ReadFile(path)
	if len(again) != len(data) {
		t.Errorf("expected overwrite, file grew from %d to %d bytes", len(data), len(again))
	}
}

func TestWriteErrorReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	report := &checker.ErrorReport{Error: "boom", URL: "https://example.com", ScanTime: time.Now().UTC()}

	if err := WriteErrorReportFile(path, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report back: %v", err)
	}
	if !strings.Contains(string(data), "Error: boom") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}

func TestGeneratePDFReportBytes(t *testing.T) {
	data, err := generatePDFReportBytes(sampleScanReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", data[:min(8, len(data))])
	}
}
