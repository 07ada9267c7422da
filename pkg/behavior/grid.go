package behavior

import (
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// minCellSize keeps a degenerate configuration from producing a huge grid.
const minCellSize = 1.0

type gridKey struct {
	x, y int
}

// Grid is a uniform spatial hash over agent centers, storing slice indexes.
// It is the broad phase of the collision pass: with a cell at least as wide
// as the largest possible contact distance, every overlapping pair sits in
// the same or an adjacent cell.
type Grid struct {
	cellSize float64
	cells    map[gridKey][]int
}

// NewGrid returns a grid whose cells are cellSize wide (clamped to a small minimum).
func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: math.Max(cellSize, minCellSize),
		cells:    make(map[gridKey][]int),
	}
}

// CellSizeFor returns the smallest cell size that guarantees contact pairs
// are found in a 3x3 neighbourhood for agents up to maxRadius.
func CellSizeFor(maxRadius float64) float64 {
	return math.Max(2*maxRadius, minCellSize)
}

// CellSize returns the width of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) key(p geometry.Vector2D) gridKey {
	// Floor rather than truncation: the padding band and wrapped agents can
	// have negative coordinates.
	return gridKey{
		x: int(math.Floor(p.X / g.cellSize)),
		y: int(math.Floor(p.Y / g.cellSize)),
	}
}

// Rebuild re-buckets every agent by center.
// Slices are truncated, not freed, so a steady population stops allocating
// after the first few ticks.
func (g *Grid) Rebuild(agents []Agent) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := range agents {
		k := g.key(agents[i].Center())
		g.cells[k] = append(g.cells[k], i)
	}
}

// Nearby appends to dst the indexes bucketed in the 3x3 block of cells
// around p, in ascending index order, and returns the extended slice.
func (g *Grid) Nearby(p geometry.Vector2D, dst []int) []int {
	c := g.key(p)
	start := len(dst)
	for i := c.x - 1; i <= c.x+1; i++ {
		for j := c.y - 1; j <= c.y+1; j++ {
			if idx, ok := g.cells[gridKey{x: i, y: j}]; ok {
				dst = append(dst, idx...)
			}
		}
	}
	slices.Sort(dst[start:])
	return dst
}
