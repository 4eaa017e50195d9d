// Command sieve renders SQL from filter query strings.
package main

import (
	"fmt"
	"os"

	"sieve/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
