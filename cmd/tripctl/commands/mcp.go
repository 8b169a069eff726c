package commands

import (
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/mcpserver"
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the weather tool and the flows over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weatherService, flowsService, err := opts.services(cmd, true)
			if err != nil {
				return err
			}
			server := mcpserver.NewServer(weatherService, flowsService.Registry(), opts.logger(cmd))
			return mcpserver.Serve(cmd.Context(), server)
		},
	}
}
