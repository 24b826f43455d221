package maxflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/internal/maxflow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp and the global min cut.
type EdmondsKarpSuite struct {
	suite.Suite
	opts maxflow.FlowOptions
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.opts = maxflow.DefaultOptions()
}

func (s *EdmondsKarpSuite) graph(entries ...string) *core.Graph {
	g := core.NewGraph()
	added, err := g.AddEdges(entries)
	require.NoError(s.T(), err)
	require.Equal(s.T(), len(entries), added)

	return g
}

// TestSingleEdge: A—B => maxFlow = 1.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	g := s.graph("A -- B")

	mf, side, err := maxflow.EdmondsKarp(g, core.NewVertex("A"), core.NewVertex("B"), s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, mf)
	require.Equal(s.T(), []core.Vertex{core.NewVertex("A")}, side)
}

// TestParallelEdges: three copies of A—B carry three units.
func (s *EdmondsKarpSuite) TestParallelEdges() {
	g := s.graph("A -- B", "A -- B", "A -- B", "B -- C")

	mf, _, err := maxflow.EdmondsKarp(g, core.NewVertex("A"), core.NewVertex("B"), s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, mf)

	mf, side, err := maxflow.EdmondsKarp(g, core.NewVertex("A"), core.NewVertex("C"), s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, mf, "B—C is the bottleneck")
	require.Len(s.T(), side, 2)
}

// TestMultiPath: two disjoint routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := s.graph("s -- a", "a -- t", "s -- b", "b -- t", "s -- s")

	mf, _, err := maxflow.EdmondsKarp(g, core.NewVertex("s"), core.NewVertex("t"), s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, mf)
}

// TestSourceSinkErrors covers missing and equal endpoints.
func (s *EdmondsKarpSuite) TestSourceSinkErrors() {
	g := s.graph("A -- B")
	a := core.NewVertex("A")

	_, _, err := maxflow.EdmondsKarp(g, core.NewVertex("X"), a, s.opts)
	require.True(s.T(), errors.Is(err, maxflow.ErrSourceNotFound))

	_, _, err = maxflow.EdmondsKarp(g, a, core.NewVertex("Z"), s.opts)
	require.True(s.T(), errors.Is(err, maxflow.ErrSinkNotFound))

	_, _, err = maxflow.EdmondsKarp(g, a, a, s.opts)
	require.ErrorIs(s.T(), err, maxflow.ErrSameEndpoints)

	_, _, err = maxflow.EdmondsKarp(nil, a, a, s.opts)
	require.ErrorIs(s.T(), err, core.ErrNilGraph)
}

// TestCanceled returns the context error.
func (s *EdmondsKarpSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := s.graph("A -- B", "B -- C")

	_, err := maxflow.GlobalMinCut(g, maxflow.FlowOptions{Ctx: ctx})
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestGlobalMinCut_Fixtures checks the known min cuts of the builder shapes.
func (s *EdmondsKarpSuite) TestGlobalMinCut_Fixtures() {
	cases := []struct {
		name string
		cons builder.Constructor
		want int
	}{
		{"Cycle", builder.Cycle(7), 2},
		{"Path", builder.Path(5), 1},
		{"Wheel", builder.Wheel(6), 3},
		{"Complete", builder.Complete(6), 5},
		{"Bipartite", builder.CompleteBipartite(3, 5), 3},
		{"Grid", builder.Grid(3, 4), 2},
		{"Barbell", builder.Barbell(6, 2), 2},
	}
	for _, tc := range cases {
		g, err := builder.BuildGraph(nil, tc.cons)
		require.NoError(s.T(), err, tc.name)

		cut, err := maxflow.GlobalMinCut(g, s.opts)
		require.NoError(s.T(), err, tc.name)
		require.Equal(s.T(), tc.want, cut.Size, tc.name)
		require.Len(s.T(), append(cut.Left, cut.Right...), g.NumVertices(), tc.name)
	}
}

// TestGlobalMinCut_BarbellPartition checks the partition of the 23-edge fixture.
func (s *EdmondsKarpSuite) TestGlobalMinCut_BarbellPartition() {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOneBasedIDs()}, builder.Barbell(5, 3))
	require.NoError(s.T(), err)

	cut, err := maxflow.GlobalMinCut(g, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, cut.Size)
	require.Equal(s.T(), []string{"1", "2", "3", "4", "5"}, cut.Left)
	require.Equal(s.T(), []string{"10", "6", "7", "8", "9"}, cut.Right)
}

// TestGlobalMinCut_Disconnected yields 0 with the first component on the left.
func (s *EdmondsKarpSuite) TestGlobalMinCut_Disconnected() {
	g := s.graph("A -- B", "B -- C", "X -- Y")

	cut, err := maxflow.GlobalMinCut(g, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, cut.Size)
	require.Equal(s.T(), []string{"A", "B", "C"}, cut.Left)
}

// TestGlobalMinCut_TooSmall rejects single-vertex and nil graphs.
func (s *EdmondsKarpSuite) TestGlobalMinCut_TooSmall() {
	_, err := maxflow.GlobalMinCut(s.graph("A -- A"), s.opts)
	require.ErrorIs(s.T(), err, maxflow.ErrTooFewVertices)
	require.ErrorIs(s.T(), err, core.ErrInvalidArgument)

	_, err = maxflow.GlobalMinCut(nil, s.opts)
	require.ErrorIs(s.T(), err, core.ErrNilGraph)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
