package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sieve/internal/metadata"
)

// NewResourcesCommand lists the registered resources.
func NewResourcesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the filterable resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(rootOpts)
			if err != nil {
				return err
			}
			out := newFormatter(rootOpts, cmd)

			defs := svc.Resources()
			out.VerboseLog("%d resources registered", len(defs))
			return out.Success(defs, resourceTable(defs))
		},
	}
}

func resourceTable(defs []metadata.ResourceDef) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTABLE\tFIELDS")
	for _, def := range defs {
		fields := make([]string, 0, len(def.Fields))
		for _, f := range def.Fields {
			s := f.Name + ":" + string(f.Type)
			if f.Sortable {
				s += "*"
			}
			fields = append(fields, s)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Name, def.Table, strings.Join(fields, " "))
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
