package graphio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/internal/ctxlog"
)

// Sentinel errors returned by graphio.
var (
	// ErrUnknownFormat indicates a format name that no decoder handles.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrSyntax indicates a description that could not be decoded.
	ErrSyntax = errors.New("graphio: syntax error")

	// ErrEmptyNode indicates an empty node identifier.
	ErrEmptyNode = errors.New("graphio: empty node identifier")
)

// Format names a graph description encoding.
type Format string

// Supported formats.
const (
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHCL, FormatYAML, FormatJSON, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from the file extension. Unrecognised
// extensions fall back to FormatText.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	format     Format
	undirected bool
}

// WithFormat overrides extension-based format detection in Load.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithUndirected mirrors every connection regardless of what the description
// says: edges, explicit arcs and adjacency entries all gain their reverse arc
// with the same weight.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// Load reads the graph description at path.
func Load(ctx context.Context, path string, opts ...Option) (*core.Graph[string], error) {
	logger := ctxlog.FromContext(ctx)

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	format := o.format
	if format == "" {
		format = FormatFromPath(path)
	}
	logger.Debug("Loading graph description.", "path", path, "format", format)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}

	g, err := decode(src, path, format, o.undirected)
	if err != nil {
		return nil, err
	}
	logger.Debug("Graph description loaded.", "path", path, "nodes", g.Order(), "arcs", g.Size(), "undirected", g.Undirected())

	return g, nil
}

// Parse decodes a graph description of the given format from r.
func Parse(ctx context.Context, r io.Reader, format Format, opts ...Option) (*core.Graph[string], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	g, err := decode(src, "<input>."+string(format), format, o.undirected)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Graph description parsed.", "format", format, "nodes", g.Order(), "arcs", g.Size())

	return g, nil
}

func decode(src []byte, name string, format Format, undirected bool) (*core.Graph[string], error) {
	var (
		d   *description
		err error
	)
	switch format {
	case FormatHCL:
		d, err = decodeHCL(src, name)
	case FormatYAML:
		d, err = decodeYAML(bytes.NewReader(src))
	case FormatJSON:
		d, err = decodeJSON(bytes.NewReader(src))
	case FormatText:
		d, err = decodeText(bytes.NewReader(src))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if undirected {
		d.Undirected = true
		d.mirrorAll = true
	}

	return d.build()
}
