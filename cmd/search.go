// Package cmd implements the command-line interface for animeon.
package cmd

import (
	"strings"

	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/player"
	"github.com/animeon-cli/animeon/preview"
	"github.com/animeon-cli/animeon/prompt"
	"github.com/animeon-cli/animeon/query"
	"github.com/animeon-cli/animeon/selector"
	"github.com/animeon-cli/animeon/watch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

// searchCmd runs the interactive search-to-playback session.
var searchCmd = &cobra.Command{
	Use:     "search <query>...",
	Short:   "Search the catalog and play the picked episodes",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"watch"},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		mediaPlayer, err := player.New()
		handleErr(err)

		client := catalog.New()
		chooser := selector.New(
			prompt.New(),
			preview.NewGenerator(client.Poster, &preview.Chafa{}),
		)

		session := watch.New(client, chooser, mediaPlayer)
		handleErr(session.Run(strings.Join(args, " ")))
	},
}
