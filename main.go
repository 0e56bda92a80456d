// Package main is the entry point for the animeon application.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/animeon-cli/animeon/cmd"
	"github.com/animeon-cli/animeon/config"
	"github.com/animeon-cli/animeon/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Walking away mid-session with Ctrl+C is a normal exit, not a failure.
	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt

		log.Info("Exiting...")
		fmt.Println()
		os.Exit(0)
	}()

	cmd.Execute()
}
