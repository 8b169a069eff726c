package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func newWeatherCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "weather <location>",
		Short:   "Print the mock weather reading for a location",
		Example: `  tripctl weather "Madikeri, Coorg"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.services(cmd, false)
			if err != nil {
				return err
			}
			reading := svc.GetWeather(cmd.Context(), strings.Join(args, " "))
			return opts.print(cmd.OutOrStdout(), reading)
		},
	}
}
