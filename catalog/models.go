package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SearchResult is a lightweight search hit. Only the title is usable for
// display at this stage; full detail requires a follow-up lookup by id.
type SearchResult struct {
	ID    int
	Title string
}

func (r SearchResult) String() string {
	return r.Title
}

// Fandub is a named voice-dub group offering one or more player sources.
// An empty Players list is a valid dead end for the selection chain.
type Fandub struct {
	ID      int
	Name    string
	Players []Player
}

func (f Fandub) String() string {
	return f.Name
}

// Player is a named video-hosting mirror under a given dub,
// distinct from the local playback engine.
type Player struct {
	ID   int
	Name string
}

func (p Player) String() string {
	return p.Name
}

// Episode is a single watchable entry; its video URL is resolved lazily,
// one network call per episode, only once selected.
type Episode struct {
	ID     int
	Number int
}

// Label returns the display label used by the picker.
func (e Episode) Label() string {
	return fmt.Sprintf("Episode %d", e.Number)
}

// flexInt decodes a numeric field that the service serves either as a JSON
// number or as a numeric string. A non-coercible value is an error, which
// drops the whole containing record.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	*n = flexInt(v)
	return nil
}

// genreName decodes a genre list item, which the service serves as an object
// carrying a "nameUa" key. Items of any other shape decode to empty and are
// skipped by the caller, never failing the containing record.
type genreName string

func (g *genreName) UnmarshalJSON(data []byte) error {
	var obj struct {
		NameUa string `json:"nameUa"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		*g = ""
		return nil
	}

	*g = genreName(obj.NameUa)
	return nil
}

// flexString decodes a field served as a plain string, a bare number,
// or an object carrying a "name" key.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*f = flexString(obj.Name)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Bare number, keep its textual form.
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return err
		}
		*f = flexString(num.String())
		return nil
	}

	*f = flexString(s)
	return nil
}
