package main

import (
	"os"

	"github.com/reoring/rpcskema/cmd/rpcskema/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
