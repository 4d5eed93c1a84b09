package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wardbook/internal/database"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the ward book tables",
		Long: `Create every ward book table that does not exist yet.

With --seed the demo patients, doctors and medications are inserted as well.
Re-running is safe: existing tables and rows are left alone.`,
		Example: `  # Apply the schema
  wardctl migrate

  # Apply the schema and load demo data
  wardctl migrate --seed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			if err := database.RunMigrations(ctx, cmdCtx.Pool, cmdCtx.Logger); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")

			if seed {
				if err := database.Seed(ctx, cmdCtx.Pool, cmdCtx.Logger); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Demo data loaded")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Insert demo data after migrating")
	return cmd
}
