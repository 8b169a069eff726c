package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/flows"
	generativeAI "github.com/FACorreiaa/karnataka-trip-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/karnataka-trip-planner/internal/api/weather"
)

// newModel builds the model client for commands that invoke a flow.
// Tests replace it with a double.
var newModel = generativeAI.NewModel

// errNoModel backs the registry for commands that only inspect flows.
var errNoModel = errors.New("no model configured for this command")

type offlineModel struct{}

func (offlineModel) Generate(context.Context, generativeAI.Request) (*generativeAI.Response, error) {
	return nil, errNoModel
}

type options struct {
	output   string
	logLevel string
}

// NewRootCmd assembles the tripctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tripctl",
		Short: "Developer CLI for the Karnataka trip planner",
		Long: `Run the weather tool and the travel flows from the command line,
inspect flow schemas, or serve everything over MCP.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newWeatherCmd(opts))
	root.AddCommand(newFlowsCmd(opts))
	root.AddCommand(newMCPCmd(opts))
	return root
}

// logger writes to stderr so stdout stays machine readable.
func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		level = slog.LevelWarn
	}
	return slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{Level: level}))
}

func (o *options) print(w io.Writer, v any) error {
	switch strings.ToLower(o.output) {
	case "yaml", "yml":
		// Round-trip through JSON so the YAML keys match the JSON field names.
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
}

// services builds the weather service and flow service. When withModel is
// false the flows are backed by a model that always fails.
func (o *options) services(cmd *cobra.Command, withModel bool) (*weather.ServiceImpl, *flows.ServiceImpl, error) {
	logger := o.logger(cmd)
	cfg, err := config.InitConfig()
	if err != nil {
		return nil, nil, err
	}

	var model generativeAI.Model = offlineModel{}
	if withModel {
		model, err = newModel(cmd.Context(), cfg.AI, logger)
		if err != nil {
			return nil, nil, err
		}
	}

	weatherService := weather.NewWeatherService(logger)
	return weatherService, flows.NewFlowsService(model, weatherService, cfg.AI.ModelTimeout, logger), nil
}

func readInput(cmd *cobra.Command, inline, path string) ([]byte, error) {
	switch {
	case inline != "" && path != "":
		return nil, errors.New("use either --input or --file, not both")
	case inline != "":
		return []byte(inline), nil
	case path == "-":
		return io.ReadAll(cmd.InOrStdin())
	case path != "":
		return os.ReadFile(path)
	default:
		return nil, errors.New("flow input is required: pass --input '<json>' or --file <path>")
	}
}
