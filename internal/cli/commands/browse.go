package commands

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"wardbook/internal/services"
)

type browseOptions struct {
	limit  string
	column string
	value  string
	format string
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand() *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse <table>",
		Short: "Show rows of a table",
		Long: `Show the first rows of one explorer table.

--column and --value together keep only rows whose column contains the
value, ignoring case. The limit is capped at BROWSE_MAX_LIMIT.`,
		Example: `  # First 50 patients
  wardctl browse patient

  # Doctors whose specialisation contains "kardio"
  wardctl browse arzt --column spezialisierung --value kardio

  # Ten medications as JSON
  wardctl browse medizin --limit 10 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			svc := services.NewBrowseService(cmdCtx.Store, cmdCtx.Cfg.BrowseMaxLimit, cmdCtx.Cfg.BrowseAccountTables, cmdCtx.Logger)
			return runBrowse(cmd.Context(), cmd.OutOrStdout(), svc, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.limit, "limit", strconv.Itoa(services.DefaultBrowseLimit), "Maximum number of rows")
	cmd.Flags().StringVar(&opts.column, "column", "", "Column to filter on")
	cmd.Flags().StringVar(&opts.value, "value", "", "Substring the column must contain")
	cmd.Flags().StringVar(&opts.format, "format", formatTable, "Output format (table|json)")
	return cmd
}

func runBrowse(ctx context.Context, w io.Writer, svc *services.BrowseService, table string, opts *browseOptions) error {
	result, err := svc.Browse(ctx, services.BrowseRequest{
		Table:        table,
		Limit:        opts.limit,
		SearchColumn: opts.column,
		SearchValue:  opts.value,
	})
	if err != nil {
		return err
	}
	return renderBrowse(w, result, opts.format)
}
