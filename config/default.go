// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"strings"
	"text/template"

	"github.com/animeon-cli/animeon/color"
	"github.com/animeon-cli/animeon/constant"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// prettyTemplate renders a field for terminal display.
var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"cyan":   style.Fg(color.Cyan),
	"value":  func(k string) any { return viper.Get(k) },
}).Parse(`{{ purple .Key }}
{{ faint .Description }}
Default: {{ bold .Value }}
Current: {{ cyan (printf "%v" (value .Key)) }}
Env: {{ bold .Env }}`))

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.AnimeOn + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
	})
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.APIBaseURL, constant.BaseURL, "Base URL of the catalog service")
	register(key.APITimeout, "30s", "Timeout for catalog requests.\nExpiry is treated like any other transport failure, no retries are attempted")
	register(key.SearchRankResults, true, "Order search results by title closeness to the query")
	register(key.SearchShowQuerySuggestions, true, "Suggest previously searched queries when a search comes up empty")
	register(key.PickerBackend, "fzf", "Interactive picker backend.\nAvailable options are: fzf, builtin, survey.\nOnly fzf supports the side-by-side preview pane")
	register(key.PickerFzfExtraArgs, []string{}, "Extra arguments passed to fzf")
	register(key.PreviewEnabled, true, "Render anime previews next to the picker")
	register(key.PreviewWidth, 45, "Poster art width in character cells")
	register(key.PreviewHeight, 25, "Poster art height in character cells")
	register(key.PlayerDefault, "mpv", "Media player to use (e.g., mpv, vlc)")
	register(key.PlayerExtraArgs, []string{}, "Extra arguments passed to the media player")
	register(key.IconsVariant, "emoji", "Icons variant.\nAvailable options are: emoji, nerd, plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliStrictDeps, false, "Exit instead of warning when a required external tool is missing")
}
