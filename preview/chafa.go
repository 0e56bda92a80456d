package preview

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Chafa renders images with the external chafa tool,
// which picks the best output mode the terminal supports.
type Chafa struct{}

func (c *Chafa) Render(image []byte, width, height int) (string, error) {
	cmd := exec.Command("chafa", fmt.Sprintf("--size=%dx%d", width, height), "-")
	cmd.Stdin = bytes.NewReader(image)

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("chafa: %w", err)
	}

	return string(out), nil
}
