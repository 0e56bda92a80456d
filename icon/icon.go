// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, or plain ASCII depending on user preference.
package icon

import (
	"github.com/animeon-cli/animeon/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a single UI symbol in the global registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Warning
	Search

	// Preview field labels.
	Rating
	Type
	Episodes
	Status
	Genres
	Year
	Studio
	Producer
	Duration
	Description
)

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]iconDef{
	Fail:        {emoji: "❌", nerd: "", plain: "x"},
	Success:     {emoji: "✅", nerd: "", plain: "+"},
	Progress:    {emoji: "⏳", nerd: "", plain: "..."},
	Warning:     {emoji: "⚠️", nerd: "", plain: "!"},
	Search:      {emoji: "🔍", nerd: "", plain: ">"},
	Rating:      {emoji: "⭐", nerd: "", plain: "*"},
	Type:        {emoji: "🎬", nerd: "", plain: "#"},
	Episodes:    {emoji: "🗂️", nerd: "", plain: "="},
	Status:      {emoji: "📊", nerd: "", plain: "~"},
	Genres:      {emoji: "📚", nerd: "", plain: "@"},
	Year:        {emoji: "🗓️", nerd: "", plain: "y"},
	Studio:      {emoji: "📺", nerd: "", plain: "s"},
	Producer:    {emoji: "👤", nerd: "", plain: "p"},
	Duration:    {emoji: "⏳", nerd: "", plain: "t"},
	Description: {emoji: "📝", nerd: "", plain: "-"},
}

// Get retrieves the visual representation for the receiver definition based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return d.plain
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	d := icons[i]
	return d.Get()
}
