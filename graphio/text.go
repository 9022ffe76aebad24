package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// decodeText reads the line-oriented adjacency list:
//
//	undirected | directed   switch mode for the whole file
//	NODE                    declare a node
//	FROM TO WEIGHT          edge (mirrored when undirected)
//	arc FROM TO WEIGHT      single directed arc
//
// '#' starts a comment; blank lines are ignored. A lone "undirected" or
// "directed" token is always read as a mode switch, so nodes with those names
// can only appear as endpoints of a connection.
func decodeText(r io.Reader) (*description, error) {
	var d description
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)

		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && fields[0] == "undirected":
			d.Undirected = true
		case len(fields) == 1 && fields[0] == "directed":
			d.Undirected = false
		case len(fields) == 1:
			d.Nodes = append(d.Nodes, fields[0])
		case len(fields) == 3:
			l, err := parseLink(fields, lineNo)
			if err != nil {
				return nil, err
			}
			d.Edges = append(d.Edges, l)
		case len(fields) == 4 && fields[0] == "arc":
			l, err := parseLink(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			d.Arcs = append(d.Arcs, l)
		default:
			return nil, fmt.Errorf("%w: line %d: want \"FROM TO WEIGHT\", got %q", ErrSyntax, lineNo, strings.TrimSpace(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: scan: %w", err)
	}

	return &d, nil
}

func parseLink(fields []string, lineNo int) (link, error) {
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return link{}, fmt.Errorf("%w: line %d: weight %q: %w", ErrSyntax, lineNo, fields[2], err)
	}

	return newLink(fields[0], fields[1], w), nil
}
