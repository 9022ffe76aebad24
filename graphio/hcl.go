package graphio

import (
	"fmt"
	"maps"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// hclGraphFile is the top-level structure of an HCL graph description,
// minus the locals blocks which are evaluated beforehand.
type hclGraphFile struct {
	Undirected *bool     `hcl:"undirected,optional"`
	Nodes      []hclNode `hcl:"node,block"`
	Edges      []hclLink `hcl:"edge,block"`
	Arcs       []hclLink `hcl:"arc,block"`
}

type hclNode struct {
	Name string `hcl:"name,label"`
}

type hclLink struct {
	From   string  `hcl:"from,label"`
	To     string  `hcl:"to,label"`
	Weight float64 `hcl:"weight"`
}

// localsSchema peels locals blocks off the body so they can be evaluated first.
var localsSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "locals"}},
}

// hclFunctions are the numeric helpers available in weight expressions.
var hclFunctions = map[string]function.Function{
	"abs":   stdlib.AbsoluteFunc,
	"ceil":  stdlib.CeilFunc,
	"floor": stdlib.FloorFunc,
	"max":   stdlib.MaxFunc,
	"min":   stdlib.MinFunc,
	"pow":   stdlib.PowFunc,
}

// decodeHCL parses src, evaluates locals into the local.* namespace and
// decodes the remaining body into a description.
func decodeHCL(src []byte, filename string) (*description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrSyntax, filename, diags)
	}

	content, remain, diags := file.Body.PartialContent(localsSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrSyntax, filename, diags)
	}

	evalCtx, diags := evalLocals(content.Blocks)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to evaluate locals in %s: %w", ErrSyntax, filename, diags)
	}

	var parsed hclGraphFile
	if diags = gohcl.DecodeBody(remain, evalCtx, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrSyntax, filename, diags)
	}

	d := &description{}
	if parsed.Undirected != nil {
		d.Undirected = *parsed.Undirected
	}
	for _, n := range parsed.Nodes {
		d.Nodes = append(d.Nodes, n.Name)
	}
	for _, e := range parsed.Edges {
		d.Edges = append(d.Edges, newLink(e.From, e.To, e.Weight))
	}
	for _, a := range parsed.Arcs {
		d.Arcs = append(d.Arcs, newLink(a.From, a.To, a.Weight))
	}

	return d, nil
}

// evalLocals evaluates every attribute of every locals block in source
// order. A local may reference locals defined above it.
func evalLocals(blocks hcl.Blocks) (*hcl.EvalContext, hcl.Diagnostics) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": cty.EmptyObjectVal},
		Functions: hclFunctions,
	}

	var all hcl.Diagnostics
	attrs := make(hcl.Attributes)
	for _, block := range blocks {
		blockAttrs, diags := block.Body.JustAttributes()
		all = append(all, diags...)
		for name, attr := range blockAttrs {
			if prev, dup := attrs[name]; dup {
				all = append(all, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate local value",
					Detail:   fmt.Sprintf("Local %q was already defined at %s.", name, prev.NameRange),
					Subject:  attr.NameRange.Ptr(),
				})
				continue
			}
			attrs[name] = attr
		}
	}
	if all.HasErrors() {
		return nil, all
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return attrs[names[i]].Range.Start.Byte < attrs[names[j]].Range.Start.Byte
	})

	values := make(map[string]cty.Value, len(attrs))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(evalCtx)
		all = append(all, diags...)
		if diags.HasErrors() {
			continue
		}
		values[name] = val
		evalCtx.Variables["local"] = cty.ObjectVal(maps.Clone(values))
	}

	return evalCtx, all
}
