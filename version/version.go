// Package version provides update discovery against the public release registry.
package version

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/animeon-cli/animeon/network"
	"github.com/animeon-cli/animeon/util"
)

const releasesURL = "https://api.github.com/repos/animeon-cli/animeon/releases/latest"

// Latest retrieves the most recent stable version identifier from the
// GitHub Releases API.
func Latest() (string, error) {
	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("release registry returned " + resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
