package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"wardbook/internal/services"
)

// NewGraphCommand creates the graph command.
func NewGraphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Export the ward graph as JSON",
		Long: `Print the same {"classes": [...]} document the /api/v1/graph endpoint
serves: one node per user, todo, patient, doctor and medication, followed by
one node per treatment and prescription.`,
		Example: `  wardctl graph > graph.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return runGraph(cmd.Context(), cmd.OutOrStdout(), services.NewGraphService(cmdCtx.Store, cmdCtx.Logger))
		},
	}
}

func runGraph(ctx context.Context, w io.Writer, svc *services.GraphService) error {
	nodes, err := svc.Export(ctx)
	if err != nil {
		return err
	}
	return renderJSON(w, map[string]any{"classes": nodes})
}
