package main

import (
	"os"

	"github.com/idilsaglam/simpletodo/internal/cli"
)

func main() {
	// Flags, config and subcommands are handled by the cli package.
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
