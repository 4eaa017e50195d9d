// Package cli implements the sieve command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Schema  string // YAML resource schema, optional
	Format  string // "json" | "text"
	Verbose bool
	Clamp   bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the sieve CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sieve",
		Short: "Render SQL from filter query strings",
		Long: "sieve turns query strings such as filter[age][gte]=20&sort=age into " +
			"parameterized PostgreSQL statements for the resources of a schema.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Schema, "schema", "s", "", "resource schema file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.Clamp, "clamp", false, "cap page sizes at the resource maximum")

	cmd.AddCommand(NewResourcesCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}
