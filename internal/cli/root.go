package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/graphio"
	"github.com/katalvlaran/shortpath/internal/ctxlog"
)

// rootFlags holds the persistent logging flags shared by every subcommand.
type rootFlags struct {
	logLevel  string
	logFormat string
}

// flags holds one subcommand's raw flag values before validation.
type flags struct {
	*rootFlags
	source      string
	destination string
	format      string
	undirected  bool
	maxDistance float64
}

// NewRootCommand builds the command tree. Reports go to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:   "shortpath",
		Short: "Shortest routes over weighted graphs",
		Long: `shortpath runs Dijkstra's algorithm from a source node and prints the
shortest distance and route to every other node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(errOut, f.logFormat, f.logLevel)
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "Logging level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&f.logFormat, "log-format", "text", "Log output format: text or json")

	root.AddCommand(newRouteCommand(f), newExampleCommand(f))

	return root
}

func newRouteCommand(rf *rootFlags) *cobra.Command {
	f := &flags{rootFlags: rf}
	cmd := &cobra.Command{
		Use:   "route GRAPH_FILE",
		Short: "Print shortest routes from a graph description file",
		Long: `Reads a graph description (.hcl, .yaml, .json or a plain "FROM TO WEIGHT"
adjacency list) and prints the shortest route from --source to every node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(cmd, args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			ctxlog.FromContext(ctx).Info("Computing routes.", "graph", cfg.GraphPath, "source", cfg.Source)

			g, err := graphio.Load(ctx, cfg.GraphPath, cfg.loadOptions()...)
			if err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}

			return Report(ctx, cmd.OutOrStdout(), g, cfg)
		},
	}
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "Source node (required)")
	cmd.Flags().StringVarP(&f.destination, "to", "t", "", "Only print the route to this node")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Graph format: hcl, yaml, json or text (default: from extension)")
	cmd.Flags().BoolVarP(&f.undirected, "undirected", "u", false, "Mirror every edge, arc and adjacency entry of the graph")
	cmd.Flags().Float64Var(&f.maxDistance, "max-distance", 0, "Treat nodes farther than this as unreachable")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newExampleCommand(rf *rootFlags) *cobra.Command {
	f := &flags{rootFlags: rf}
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print shortest routes on the built-in eight-node graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.config(cmd, "")
			if err != nil {
				return err
			}

			return Report(cmd.Context(), cmd.OutOrStdout(), ExampleGraph(), cfg)
		},
	}
	cmd.Flags().StringVarP(&f.source, "source", "s", "A", "Source node")
	cmd.Flags().StringVarP(&f.destination, "to", "t", "", "Only print the route to this node")
	cmd.Flags().Float64Var(&f.maxDistance, "max-distance", 0, "Treat nodes farther than this as unreachable")

	return cmd
}

// config validates the raw flags of cmd into a Config.
func (f *flags) config(cmd *cobra.Command, graphPath string) (*Config, error) {
	maxDistance := math.Inf(1)
	if cmd.Flags().Changed("max-distance") {
		maxDistance = f.maxDistance
	}

	var format graphio.Format
	if f.format != "" {
		var err error
		if format, err = graphio.ParseFormat(f.format); err != nil {
			return nil, &ExitError{Code: ExitUsage, Err: err}
		}
	}

	cfg, err := NewConfig(Config{
		GraphPath:   graphPath,
		Format:      format,
		Undirected:  f.undirected,
		Source:      f.source,
		Destination: f.destination,
		MaxDistance: maxDistance,
		LogLevel:    f.logLevel,
		LogFormat:   f.logFormat,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: err}
	}

	return cfg, nil
}

// Execute runs the command tree with args and returns the process exit code.
// Errors are printed to errOut.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(errOut, "Error:", err)
	}

	return ExitCode(err)
}
