package cli

import (
	"github.com/spf13/cobra"

	"sieve/internal/domain/preview"
	"sieve/internal/domain/query"
	"sieve/internal/domain/users"
	"sieve/internal/metadata"
)

// loadRegistry registers the built-in resources, then the resources of the
// schema file. A schema resource replaces a built-in one of the same name.
func loadRegistry(path string) (*metadata.Registry, error) {
	reg := metadata.NewRegistry()
	if err := reg.Register(users.Definition()); err != nil {
		return nil, err
	}
	if path == "" {
		return reg, nil
	}
	if err := reg.LoadFile(path); err != nil {
		return nil, err
	}
	return reg, nil
}

func newService(opts *RootOptions) (*preview.Service, error) {
	reg, err := loadRegistry(opts.Schema)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load schema", err)
	}
	cfg := query.DefaultConfig()
	cfg.ClampLimit = opts.Clamp
	return preview.NewService(preview.Config{Registry: reg, Query: cfg}), nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
