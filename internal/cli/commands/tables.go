package commands

import (
	"github.com/spf13/cobra"

	"wardbook/internal/services"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the browsable tables",
		Long: `List every table the explorer can browse, with its columns.

The users and todos tables are included unless BROWSE_ACCOUNT_TABLES=false.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			env, err := envFrom(cmd.Context())
			if err != nil {
				return err
			}
			svc := services.NewBrowseService(nil, env.Config.BrowseMaxLimit, env.Config.BrowseAccountTables, env.Logger)
			return renderTables(cmd.OutOrStdout(), svc.Tables(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format (table|json)")
	return cmd
}
