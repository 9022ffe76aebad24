package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/internal/ctxlog"
)

// unreachableMarker replaces the distance of nodes the source cannot reach.
const unreachableMarker = "unreachable"

// Report runs the engine over g from cfg.Source and writes one line per
// node, or only for cfg.Destination when set.
func Report(ctx context.Context, w io.Writer, g *core.Graph[string], cfg *Config) error {
	logger := ctxlog.FromContext(ctx)

	res, err := dijkstra.ShortestPaths(g, cfg.Source, cfg.engineOptions()...)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	logger.Debug("Shortest paths computed.", "source", cfg.Source, "nodes", len(res.Dist))

	nodes := g.Nodes()
	if cfg.Destination != "" {
		if !g.HasNode(cfg.Destination) {
			return &ExitError{Code: ExitFailure, Err: fmt.Errorf("%w: %s", dijkstra.ErrUnknownNode, cfg.Destination)}
		}
		nodes = []string{cfg.Destination}
	}

	for _, n := range nodes {
		if err = WriteRoute(w, res, n); err != nil {
			return err
		}
	}

	return nil
}

// WriteRoute writes the route line for dest:
//
//	Shortest path from A to H: 9 (Route: A -> B -> E -> G -> H)
//	Shortest path from A to Z: unreachable
func WriteRoute(w io.Writer, res *dijkstra.Result[string], dest string) error {
	path, err := res.PathTo(dest)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachableDestination):
		_, err = fmt.Fprintf(w, "Shortest path from %s to %s: %s\n", res.Source, dest, unreachableMarker)
		return err
	case err != nil:
		return &ExitError{Code: ExitFailure, Err: err}
	}

	_, err = fmt.Fprintf(w, "Shortest path from %s to %s: %s (Route: %s)\n",
		res.Source, dest, formatDistance(res.Dist[dest]), strings.Join(path, " -> "))

	return err
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}
