package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/khanhnv2901/cookiescan-cli/internal/checker"
	consts "github.com/khanhnv2901/cookiescan-cli/internal/shared/constants"
)

const (
	noCookiesLine   = "No cookies were found or the server did not set any."
	noFindingsLine  = "No obvious gaps in the baseline security flags (Secure, HttpOnly, SameSite) were found for the analyzed cookies."
	siteSectionLine = "--- Site-wide security recommendations ---"

	sameSiteNotSet = "not set"
	sessionExpiry  = "session"
)

// renderScanReport produces the human-readable text report for a completed
// scan. The layout is fixed: header, one block per cookie in response order,
// then the site-wide recommendation section.
func renderScanReport(report *checker.ScanReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cookie scan results for URL: %s\n", report.URL)
	fmt.Fprintf(&b, "Scan time: %s\n", report.ScanTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "HTTP status code: %d\n", report.HTTPStatus)
	fmt.Fprintf(&b, "Total cookies found: %d\n\n", report.CookiesFound)

	if len(report.CookieDetails) == 0 {
		b.WriteString(noCookiesLine + "\n")
	}

	for i, detail := range report.CookieDetails {
		fmt.Fprintf(&b, "--- Cookie #%d ---\n", i+1)
		fmt.Fprintf(&b, "Name: %s\n", detail.Name)
		fmt.Fprintf(&b, "Domain: %s\n", detail.Domain)
		fmt.Fprintf(&b, "Path: %s\n", detail.Path)
		fmt.Fprintf(&b, "Secure attribute: %t\n", detail.Secure)
		fmt.Fprintf(&b, "HttpOnly attribute: %t\n", detail.HTTPOnly)
		fmt.Fprintf(&b, "SameSite attribute: %s\n", formatSameSite(detail.SameSite))
		fmt.Fprintf(&b, "Expires: %s\n", formatExpiry(detail.Expires))

		if len(detail.Recommendations) > 0 {
			b.WriteString("Security recommendations:\n")
			for _, rec := range detail.Recommendations {
				fmt.Fprintf(&b, "  - %s\n", rec)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + siteSectionLine + "\n")
	if len(report.SecurityRecommendations) > 0 {
		for _, rec := range report.SecurityRecommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	} else {
		b.WriteString(noFindingsLine + "\n")
	}

	return b.String()
}

// renderErrorReport produces the failure layout: header with URL, time, and
// a single error line.
func renderErrorReport(report *checker.ErrorReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cookie scan failed for URL: %s\n", report.URL)
	fmt.Fprintf(&b, "Time: %s\n", report.ScanTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Error: %s\n", report.Error)
	return b.String()
}

// WriteScanReportFile writes the text rendering of a ScanReport, overwriting
// any previous report at the same path.
func WriteScanReportFile(path string, report *checker.ScanReport) error {
	return os.WriteFile(path, []byte(renderScanReport(report)), consts.DefaultFilePerm)
}

// WriteErrorReportFile writes the failure rendering of an ErrorReport.
func WriteErrorReportFile(path string, report *checker.ErrorReport) error {
	return os.WriteFile(path, []byte(renderErrorReport(report)), consts.DefaultFilePerm)
}

func formatSameSite(value string) string {
	if value == "" {
		return sameSiteNotSet
	}
	return value
}

func formatExpiry(expires *time.Time) string {
	if expires == nil {
		return sessionExpiry
	}
	return expires.Format(time.RFC3339)
}

func generatePDFReportBytes(report *checker.ScanReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Cookie Scan Report: %s", report.URL), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Header section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Scan time: %s", report.ScanTime.Format(time.RFC3339)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("HTTP status code: %d", report.HTTPStatus), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total cookies found: %d", report.CookiesFound), "", 1, "", false, 0, "")
	pdf.Ln(5)

	if len(report.CookieDetails) == 0 {
		pdf.MultiCell(0, 5, noCookiesLine, "", "", false)
		pdf.Ln(3)
	}

	for i, detail := range report.CookieDetails {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Cookie #%d: %s", i+1, detail.Name), "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Domain: %s | Path: %s", detail.Domain, detail.Path), "", "", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Secure: %t | HttpOnly: %t | SameSite: %s | Expires: %s",
			detail.Secure, detail.HTTPOnly, formatSameSite(detail.SameSite), formatExpiry(detail.Expires)), "", "", false)
		for _, rec := range detail.Recommendations {
			pdf.MultiCell(0, 5, fmt.Sprintf("- %s", rec), "", "", false)
		}
		pdf.Ln(3)
	}

	// Site-wide recommendations
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Site-wide security recommendations", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	if len(report.SecurityRecommendations) > 0 {
		for _, rec := range report.SecurityRecommendations {
			pdf.MultiCell(0, 5, fmt.Sprintf("- %s", rec), "", "", false)
		}
	} else {
		pdf.MultiCell(0, 5, noFindingsLine, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDFReportFile renders the ScanReport as a PDF next to the text report.
func WritePDFReportFile(path string, report *checker.ScanReport) error {
	data, err := generatePDFReportBytes(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, consts.DefaultFilePerm)
}
