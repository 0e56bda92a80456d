package version

import (
	"fmt"

	"github.com/animeon-cli/animeon/color"
	"github.com/animeon-cli/animeon/constant"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/style"
)

// Notify prints an update hint when a newer release is published.
// Lookup failures stay silent, the hint is best effort.
func Notify() {
	latest, err := Latest()
	if err != nil {
		log.Errorf("check latest version: %s", err)
		return
	}

	if !IsNewer(latest, constant.Version) {
		return
	}

	fmt.Printf(
		"\n%s %s is out! Update with %s\n",
		style.Fg(color.Cyan)(constant.AnimeOn+" "+latest),
		style.Faint("(current "+constant.Version+")"),
		style.Fg(color.Yellow)("go install github.com/animeon-cli/animeon@latest"),
	)
}
