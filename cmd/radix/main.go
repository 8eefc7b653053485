package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/radixtree/pkg/cli"
	"github.com/khalid-nowaf/radixtree/pkg/radix"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.Name("radix"), kong.Description(cli.Description), kong.UsageOnError())
	logger := cli.NewLogger(cli.CLI.LogLevel, os.Stderr)
	tree := radix.New(radix.WithLogger(logger))
	if err := ctx.Run(cli.NewContext(tree, os.Stdout, logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
