// Package cmd implements the command-line interface for animeon.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/animeon-cli/animeon/icon"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// optionalTools degrade the experience when missing but never block a session:
// the picker falls back to the builtin backend and previews are skipped.
var optionalTools = []string{"fzf", "jq", "chafa"}

// CheckDependencies verifies the availability of external tools before a session.
// Optional tools produce warnings. A missing media player is fatal only when
// cli.strict_deps is enabled, otherwise the session proceeds and playback
// reports the failure itself.
func CheckDependencies() {
	for _, tool := range optionalTools {
		if _, err := exec.LookPath(tool); err != nil {
			log.Warnf("%s not found in PATH", tool)
			fmt.Printf("%s %s not found, some features will be degraded\n", icon.Get(icon.Warning), tool)
		}
	}

	playerBin := viper.GetString(key.PlayerDefault)
	if _, err := exec.LookPath(playerBin); err != nil {
		printMissingDependencyError(playerBin)

		if viper.GetBool(key.CliStrictDeps) {
			os.Exit(1)
		}
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The configured media player '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
