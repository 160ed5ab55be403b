package frames

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// cayleyGraph builds the Cayley graph of the group: one node per rotation (node ID = RotationID), and an edge from
// every rotation t to the rotation reached by following t with one of the generators.
func (g *group) cayleyGraph() *simple.DirectedGraph {

	cayley := simple.NewDirectedGraph()

	for i := range g.rotations {
		cayley.AddNode(simple.Node(i))
	}

	for i := range g.rotations {
		for _, gen := range g.generators {
			to := g.products[i][gen]
			cayley.SetEdge(cayley.NewEdge(simple.Node(i), simple.Node(to)))
		}
	}

	return cayley

}

// checkNameLengths walks the Cayley graph breadth-first from the identity and checks that every canonical name is
// exactly as long as the shortest path to its element.
func (g *group) checkNameLengths() error {

	depths := make(map[int64]int, len(g.rotations))

	bf := traverse.BreadthFirst{}
	bf.Walk(g.cayleyGraph(), simple.Node(IdentityID), func(n graph.Node, d int) bool {
		depths[n.ID()] = d
		return false
	})

	if len(depths) != len(g.rotations) {
		return consistencyErrorf("minimality", "only %d of %d elements reachable from the identity", len(depths), len(g.rotations))
	}

	for _, rot := range g.rotations {
		if d := depths[int64(rot.id)]; d != len(rot.tokens) {
			return consistencyErrorf("minimality", "%q is %d steps from the identity but its name has %d tokens", rot.Name(), d, len(rot.tokens))
		}
	}

	return nil

}

// CayleyGraph returns the rotation group as a gonum directed graph. Node IDs are RotationIDs, and each node has one
// outgoing edge per generator, leading to the rotation reached by following it with that quarter turn. The graph is
// freshly built on each call, so callers may modify it.
func CayleyGraph() graph.Directed {
	return rotationGroup().cayleyGraph()
}
