package maxflow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("maxflow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("maxflow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// ErrSameEndpoints is returned when source and sink are the same vertex.
var ErrSameEndpoints = fmt.Errorf("%w: maxflow: source equals sink", core.ErrInvalidArgument)

// ErrTooFewVertices is returned by GlobalMinCut on graphs with fewer than two vertices.
var ErrTooFewVertices = fmt.Errorf("%w: maxflow: graph has fewer than two vertices", core.ErrInvalidArgument)

// FlowOptions configures the max-flow routines.
//   - Ctx: checked between augmentations; nil means context.Background().
type FlowOptions struct {
	Ctx context.Context
}

// DefaultOptions returns FlowOptions with a background context.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

func (o FlowOptions) context() context.Context {
	if o.Ctx == nil {
		return context.Background()
	}

	return o.Ctx
}

// Cut is an exact minimum cut.
type Cut struct {
	// Size is the number of edges crossing the partition.
	Size int
	// Left is the sorted source side, Right the sorted rest.
	Left, Right []string
}
