package cli

import (
	"github.com/spf13/cobra"

	"sieve/internal/core/apperror"
	"sieve/internal/domain/preview"
)

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	*RootOptions
	Delete bool
}

// NewRenderCommand renders the statement a query string describes.
//
//	sieve render users 'filter[age][gte]=20&sort=age&order=desc'
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <resource> <query>",
		Short: "Render the SQL of a query string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.Delete, "delete", false, "render a DELETE instead of a SELECT")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions, resource, raw string) error {
	svc, err := newService(opts.RootOptions)
	if err != nil {
		return err
	}
	out := newFormatter(opts.RootOptions, cmd)

	kind := preview.KindSelect
	if opts.Delete {
		kind = preview.KindDelete
	}

	res, err := svc.Preview(cmd.Context(), preview.Request{
		Resource: resource,
		RawQuery: raw,
		Kind:     kind,
	})
	if err != nil {
		appErr, ok := apperror.AsAppError(err)
		if !ok {
			return WrapExitError(ExitCommandError, "render", err)
		}
		if err := out.Error(appErr.Code, appErr.Message, appErr.Details); err != nil {
			return err
		}
		return WrapExitError(ExitFailure, "render", err)
	}

	out.VerboseLog("sql: %s", res.SQL)
	out.VerboseLog("args: %v", res.Args)
	out.VerboseLog("offset=%d limit=%d", res.Offset, res.Limit)
	return out.Success(res, res.Inline)
}
