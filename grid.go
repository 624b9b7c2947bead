package shorebreak

import "math"

// SpatialGrid is the uniform-grid broad phase. Cells are at least twice the
// largest particle radius wide, so any overlapping pair of disks lies in the
// same cell or in adjacent cells. The grid is rebuilt from scratch every tick;
// cell buckets are reused between rebuilds to avoid allocation.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols, rows  int
	cells       [][]int
}

func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

func (g *SpatialGrid) cellCoords(p Vector) (int, int) {
	col := int(p.X * g.invCellSize)
	row := int(p.Y * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// Rebuild re-buckets every particle index by the cell its center falls in.
func (g *SpatialGrid) Rebuild(ps *ParticleSystem) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := 0; i < ps.Count(); i++ {
		col, row := g.cellCoords(ps.At(i).Pos)
		idx := row*g.cols + col
		g.cells[idx] = append(g.cells[idx], i)
	}
}

// ForEachPair calls fn once for every candidate unordered pair. Pairs within
// a cell are emitted by bucket order; cross-cell pairs only against the four
// forward neighbors (E, SW, S, SE), so no unordered pair is seen twice.
func (g *SpatialGrid) ForEachPair(fn func(i, j int)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			bucket := g.cells[row*g.cols+col]
			if len(bucket) == 0 {
				continue
			}

			for a := 0; a < len(bucket); a++ {
				for b := a + 1; b < len(bucket); b++ {
					fn(bucket[a], bucket[b])
				}
			}

			g.crossPairs(bucket, col+1, row, fn)
			g.crossPairs(bucket, col-1, row+1, fn)
			g.crossPairs(bucket, col, row+1, fn)
			g.crossPairs(bucket, col+1, row+1, fn)
		}
	}
}

func (g *SpatialGrid) crossPairs(bucket []int, col, row int, fn func(i, j int)) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	other := g.cells[row*g.cols+col]
	for _, i := range bucket {
		for _, j := range other {
			fn(i, j)
		}
	}
}
