package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func TestCayleyGraph(t *testing.T) {

	cayley := CayleyGraph()

	require.Equal(t, GroupOrder, cayley.Nodes().Len())

	for _, rot := range Rotations() {
		out := graph.NodesOf(cayley.From(int64(rot.ID())))
		assert.Len(t, out, len(AllAxes), "%q", rot.Name())
		for _, axis := range AllAxes {
			to := ComposeRotations(rot.ID(), GeneratorID(axis))
			assert.True(t, cayley.HasEdgeFromTo(int64(rot.ID()), int64(to)))
		}
	}

}

func TestCayleyShortestPathsMatchNames(t *testing.T) {

	cayley := CayleyGraph()
	shortest := path.DijkstraFrom(simple.Node(IdentityID), cayley)

	for _, rot := range Rotations() {
		nodes, weight := shortest.To(int64(rot.ID()))
		require.NotEmpty(t, nodes)
		assert.Equal(t, float64(len(rot.Tokens())), weight, "%q", rot.Name())
	}

}

func BenchmarkDiscover(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := discover(AllAxes); err != nil {
			b.Fatal(err)
		}
	}

}
