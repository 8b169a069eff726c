package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
)

func newFlowsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flows",
		Short: "List, describe and run travel flows",
	}
	cmd.AddCommand(newFlowsListCmd(opts), newFlowsSchemaCmd(opts), newFlowsRunCmd(opts))
	return cmd
}

func completeFlowNames(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{
		flows.RecommendationsFlowName,
		flows.ItineraryFlowName,
		flows.TravelRecommendationFlowName,
	}, cobra.ShellCompDirectiveNoFileComp
}

func newFlowsListCmd(opts *options) *cobra.Command {
	var table bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered flows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.services(cmd, false)
			if err != nil {
				return err
			}
			summaries := svc.Registry().List()
			if !table {
				return opts.print(cmd.OutOrStdout(), summaries)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tTOOLS\tDESCRIPTION")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%v\t%s\n", s.Name, s.Tools, s.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&table, "table", false, "print a table instead of structured output")
	return cmd
}

func newFlowsSchemaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:               "schema <name>",
		Short:             "Print a flow's input and output JSON Schema",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, svc, err := opts.services(cmd, false)
			if err != nil {
				return err
			}
			runner, err := svc.Registry().Lookup(args[0])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), flows.DescribeRunner(runner))
		},
	}
}

func newFlowsRunCmd(opts *options) *cobra.Command {
	var input, file string
	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Invoke a flow against the configured model",
		Example: `  tripctl flows run generateItinerary --input '{"destinations":"Mysore,Coorg","duration":"3 days","interests":"history"}'
  tripctl flows run personalizedTravelRecommendations --file prefs.json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFlowNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, input, file)
			if err != nil {
				return err
			}
			_, svc, err := opts.services(cmd, true)
			if err != nil {
				return err
			}
			runner, err := svc.Registry().Lookup(args[0])
			if err != nil {
				return err
			}

			out, err := runner.InvokeJSON(cmd.Context(), raw)
			if err != nil {
				return err
			}
			var v any
			if err := json.Unmarshal(out, &v); err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), v)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "flow input as inline JSON")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read flow input from a JSON file, - for stdin")
	return cmd
}
