// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// AnimeOn is the canonical application identifier used for filesystem paths and CLI branding.
	AnimeOn = "animeon"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// BaseURL is the default catalog service endpoint.
	BaseURL = "https://animeon.club"

	// UserAgent is the default HTTP User-Agent string used for network requests to the catalog service.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)
