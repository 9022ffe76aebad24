package graphio_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graphio"
)

func parseHCL(t *testing.T, src string) error {
	t.Helper()
	_, err := graphio.Parse(context.Background(), strings.NewReader(src), graphio.FormatHCL)

	return err
}

func TestParse_HCLDirectedByDefault(t *testing.T) {
	src := `
node "Z" {}
edge "A" "B" { weight = 2 }
arc  "B" "C" { weight = min(3, 7) }
`
	g, err := graphio.Parse(context.Background(), strings.NewReader(src), graphio.FormatHCL)
	require.NoError(t, err)

	assert.False(t, g.Undirected())
	assert.Equal(t, []string{"A", "B", "C", "Z"}, g.Nodes())
	assert.False(t, g.HasArc("B", "A"))
	w, err := g.Weight("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
}

func TestParse_HCLLocalsAndFunctions(t *testing.T) {
	src := `
undirected = true

locals {
  base = 1.5
}

locals {
  double = local.base * 2
}

edge "A" "B" { weight = local.double }
edge "B" "C" { weight = floor(local.base) }
edge "C" "D" { weight = abs(-4) }
edge "D" "E" { weight = ceil(0.2) }
`
	g, err := graphio.Parse(context.Background(), strings.NewReader(src), graphio.FormatHCL)
	require.NoError(t, err)

	want := map[[2]string]float64{
		{"B", "A"}: 3,
		{"C", "B"}: 1,
		{"D", "C"}: 4,
		{"E", "D"}: 1,
	}
	for arc, w := range want {
		got, err := g.Weight(arc[0], arc[1])
		require.NoError(t, err, arc)
		assert.Equal(t, w, got, arc)
	}
}

func TestParse_HCLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"unclosed block", `edge "A" "B" {`, "failed to parse"},
		{"missing weight", `edge "A" "B" {}`, "weight"},
		{"missing label", `edge "A" { weight = 1 }`, "failed to decode"},
		{"unknown local", `edge "A" "B" { weight = local.nope }`, "nope"},
		{"forward local reference", "locals {\n a = local.b\n b = 1\n}\n", "failed to evaluate locals"},
		{"duplicate local", "locals {\n a = 1\n}\nlocals {\n a = 2\n}\n", "Duplicate local value"},
		{"string weight", `edge "A" "B" { weight = "heavy" }`, "failed to decode"},
		{"unknown block", `vertex "A" {}`, "failed to decode"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := parseHCL(t, tc.src)
			require.ErrorIs(t, err, graphio.ErrSyntax)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
