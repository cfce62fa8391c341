package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/khanhnv2901/cookiescan-cli/internal/checker"
	consts "github.com/khanhnv2901/cookiescan-cli/internal/shared/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

var scanCmd = &cobra.Command{
	Use:   "scan <url> [url...]",
	Short: "Fetch each URL once and evaluate the cookies it sets",
	Long: `Issue a single GET request per target and evaluate every cookie the
server sets against the baseline security attributes (Secure, HttpOnly,
SameSite).

For each target a human-readable text report is written (doc.txt for a
single target, doc-<host>.txt when several are given). The report is
written on failure too, carrying the error message instead of cookie
details. Use --json to print the structured result to stdout and --pdf
to render an additional PDF report.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeoutSecs, _ := cmd.Flags().GetInt("timeout")
		userAgent, _ := cmd.Flags().GetString("user-agent")
		rateLimit, _ := cmd.Flags().GetInt("rate")
		printJSON, _ := cmd.Flags().GetBool("json")
		writePDF, _ := cmd.Flags().GetBool("pdf")

		// Config file values apply when the flag was left at its default.
		if !cmd.Flags().Changed("timeout") {
			if v := viper.GetInt("timeout_secs"); v > 0 {
				timeoutSecs = v
			}
		}
		if userAgent == "" {
			userAgent = viper.GetString("user_agent")
		}
		if !cmd.Flags().Changed("rate") {
			if v := viper.GetInt("rate_limit"); v > 0 {
				rateLimit = v
			}
		}

		scanner := &checker.CookieScanner{
			Timeout:   time.Duration(timeoutSecs) * time.Second,
			UserAgent: userAgent,
		}
		logger.Infof("checker=%s targets=%d timeout_secs=%d", scanner.Name(), len(args), timeoutSecs)

		// Scans stay strictly sequential; the limiter only paces the gap
		// between requests on multi-target runs.
		limiter := rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
		ctx := cmd.Context()

		for _, target := range args {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			reportPath := reportFilePath(outputDir, target, len(args) > 1)
			report, err := scanner.Scan(ctx, target)

			if err != nil {
				errReport := checker.NewErrorReport(target, err)
				if werr := WriteErrorReportFile(reportPath, errReport); werr != nil {
					warnReportWrite(reportPath, werr)
				}
				fmt.Printf("%s %s: %s\n", formatScanStatus(true), target, errReport.Error)
				fmt.Printf("%s %s\n", colorInfo("Report:"), reportPath)
				if printJSON {
					if perr := printResultJSON(errReport); perr != nil {
						return perr
					}
				}
				continue
			}

			if werr := WriteScanReportFile(reportPath, report); werr != nil {
				warnReportWrite(reportPath, werr)
			}
			fmt.Printf("%s %s: %d cookie(s) found, %d site-wide recommendation(s)\n",
				formatScanStatus(false), target, report.CookiesFound, len(report.SecurityRecommendations))
			fmt.Printf("%s %s\n", colorInfo("Report:"), reportPath)

			if writePDF {
				pdfPath := strings.TrimSuffix(reportPath, filepath.Ext(reportPath)) + ".pdf"
				if werr := WritePDFReportFile(pdfPath, report); werr != nil {
					warnReportWrite(pdfPath, werr)
				} else {
					fmt.Printf("%s %s\n", colorInfo("PDF:"), pdfPath)
				}
			}

			if printJSON {
				if perr := printResultJSON(report); perr != nil {
					return perr
				}
			}
		}

		return nil
	},
}

// warnReportWrite surfaces a report-write failure without overriding the
// computed scan result.
func warnReportWrite(path string, err error) {
	logger.Warnf("failed to write report file %s: %v", path, err)
	fmt.Printf("%s report not written to %s: %v\n", colorWarn("WARN"), path, err)
}

func printResultJSON(result any) error {
	out, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// reportFilePath resolves where the text report for a target is written.
// Single-target runs keep the fixed filename; multi-target runs get one file
// per host so reports do not clobber each other.
func reportFilePath(dir, target string, multi bool) string {
	if !multi {
		return filepath.Join(dir, consts.DefaultReportFilename)
	}
	host := checker.ParseTarget(target).Host
	if host == "" {
		host = target
	}
	return filepath.Join(dir, "doc-"+sanitizeFilename(host)+".txt")
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		}
		return '-'
	}, s)
}

func init() {
	scanCmd.Flags().Int("timeout", consts.DefaultTimeoutSecs, "HTTP request timeout in seconds")
	scanCmd.Flags().String("user-agent", "", "User-Agent header for the request (default: a desktop Chrome string)")
	scanCmd.Flags().Int("rate", consts.DefaultRateLimit, "Requests per second across targets")
	scanCmd.Flags().Bool("json", false, "Print the structured scan result as JSON to stdout")
	scanCmd.Flags().Bool("pdf", false, "Additionally render the report as a PDF")
}
