// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Service - these keys configure communication with the remote catalog API.
const (
	APIBaseURL = "api.base_url"
	APITimeout = "api.timeout"
)

// Search Interaction - these keys define the behavior of the search resolution chain.
const (
	SearchRankResults          = "search.rank_results"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Picker - these keys configure the interactive chooser backend.
const (
	PickerBackend      = "picker.backend"
	PickerFzfExtraArgs = "picker.fzf.extra_args"
)

// Preview Pane - these keys govern the rendered anime preview shown next to the picker.
const (
	PreviewEnabled = "preview.enabled"
	PreviewWidth   = "preview.width"
	PreviewHeight  = "preview.height"
)

// Media Playback - these keys maintain the configuration for external video players.
const (
	PlayerDefault   = "player.default"
	PlayerExtraArgs = "player.extra_args"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern top-level CLI behavior.
const (
	CliColored    = "cli.colored"
	CliStrictDeps = "cli.strict_deps"
)
