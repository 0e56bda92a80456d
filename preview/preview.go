// Package preview builds the textual previews shown next to the anime picker.
//
// Previews are precomputed for every candidate and stored in a temporary JSON
// artifact keyed by picker label, which the fzf backend reads back with jq.
package preview

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/filesystem"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/where"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Renderer converts raw image bytes into a terminal-printable block.
type Renderer interface {
	Render(image []byte, width, height int) (string, error)
}

// FetchFunc downloads poster bytes. A false return means "no image",
// already logged by the fetcher.
type FetchFunc func(url string) ([]byte, bool)

// Generator assembles per-anime previews from detail text and rendered posters.
type Generator struct {
	fetch    FetchFunc
	renderer Renderer
	width    int
	height   int
}

func NewGenerator(fetch FetchFunc, renderer Renderer) *Generator {
	return &Generator{
		fetch:    fetch,
		renderer: renderer,
		width:    viper.GetInt(key.PreviewWidth),
		height:   viper.GetInt(key.PreviewHeight),
	}
}

// Generate writes the preview artifact for the given label to anime mapping
// and returns its path. Poster failures degrade to a text-only preview.
func (g *Generator) Generate(entries map[string]*catalog.Anime) (string, error) {
	previews := make(map[string]string, len(entries))
	for label, anime := range entries {
		previews[label] = g.build(anime)
	}

	// Previews hold rendered terminal output, so the encoder must not
	// HTML-escape the angle brackets of escape sequences and markup.
	var payload bytes.Buffer
	encoder := json.NewEncoder(&payload)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(previews); err != nil {
		return "", fmt.Errorf("encode previews: %w", err)
	}

	file, err := afero.TempFile(filesystem.API(), where.Temp(), "preview-*.json")
	if err != nil {
		return "", fmt.Errorf("create preview artifact: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(payload.Bytes()); err != nil {
		return "", fmt.Errorf("write preview artifact: %w", err)
	}

	return file.Name(), nil
}

func (g *Generator) build(anime *catalog.Anime) string {
	details := FormatDetails(anime, g.width)

	if anime.Poster == "" {
		return details
	}

	image, ok := g.fetch(anime.Poster)
	if !ok {
		return details
	}

	rendered, err := g.renderer.Render(image, g.width, g.height)
	if err != nil {
		log.Errorf("render poster for %q: %s", anime.Title, err)
		return details
	}

	return rendered + "\n" + details
}

// Command returns the shell command the fzf preview window runs per
// highlighted label, {} being fzf's placeholder for the label itself.
func Command(artifact string) string {
	return fmt.Sprintf(`jq -r --arg label {} '.[$label] // "No preview available"' %q`, artifact)
}
