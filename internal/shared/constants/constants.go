package constants

import "io/fs"

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// DefaultUserAgent mirrors a desktop Chrome build. Some sites withhold
	// cookies from clients that do not identify as a browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	// DefaultTimeoutSecs bounds the single outbound request of a scan.
	DefaultTimeoutSecs = 10
	// DefaultRateLimit paces requests when several targets are scanned.
	DefaultRateLimit = 1
	// DefaultReportFilename is the text report written for a single-target scan.
	DefaultReportFilename = "doc.txt"
)
