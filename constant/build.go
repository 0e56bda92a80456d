package constant

// Build metadata, overridden at release time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)

// AsciiArtLogo is the banner shown on the root help screen.
const AsciiArtLogo = `
  ▄▀█ █▄ █ █ █▀▄▀█ █▀▀ █▀█ █▄ █
  █▀█ █ ▀█ █ █ ▀ █ ██▄ █▄█ █ ▀█`
