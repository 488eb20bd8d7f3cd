package main

import (
	"os"

	"github.com/code-payments/code-fixtures/cmd/fixtures/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
