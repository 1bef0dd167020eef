package astar

// coordinates scans the grid linearly for the cell holding vertex and
// returns its (row, col). The scan is O(rows×cols); it runs only during
// construction, never per query.
func coordinates(grid Grid, vertex int) (int, int, bool) {
	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] == vertex {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// manhattan returns |x1-x2| + |y1-y2|.
func manhattan(x1, y1, x2, y2 int) int64 {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}

	return int64(dx + dy)
}

// initHeuristics locates the destination's grid cell and caches, for every
// cell holding a real vertex, the Manhattan distance to that cell.
// Vertices absent from the grid keep heuristic 0, which is trivially
// admissible. Returns ErrDestinationNotInGrid if the destination never
// appears. One full grid scan; computed once, cached forever.
func (s *Solver) initHeuristics(grid Grid) error {
	dx, dy, ok := coordinates(grid, s.destination)
	if !ok {
		return ErrDestinationNotInGrid
	}

	var u int
	for i := range grid {
		for j := range grid[i] {
			u = grid[i][j]
			if u != NoVertex && u >= 0 && u < s.numVertices {
				s.heuristic[u] = manhattan(i, j, dx, dy)
			}
		}
	}

	return nil
}
