package costgrid

// kingMoves is the 8-connected structuring element used for obstacle
// dilation. Traversal in package dijkstra is 4-connected; dilation is wider
// so walls also grow across diagonals.
var kingMoves = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// dilate applies iters rounds of binary morphological dilation to mask and
// returns the result. Each round marks every cell adjacent (king-move) to a
// marked cell. Dilation only ever turns cells on, never off. iters ≤ 0
// returns the input mask unchanged.
//
// Complexity: O(W×H×iters) time, O(W×H) memory.
func dilate(mask [][]bool, iters int) [][]bool {
	if iters <= 0 || len(mask) == 0 {
		return mask
	}
	rows, cols := len(mask), len(mask[0])

	cur := mask
	for i := 0; i < iters; i++ {
		next := make([][]bool, rows)
		for r := 0; r < rows; r++ {
			next[r] = make([]bool, cols)
			copy(next[r], cur[r])
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !cur[r][c] {
					continue
				}
				for _, d := range kingMoves {
					nr, nc := r+d[0], c+d[1]
					if nr >= 0 && nr < rows && nc >= 0 && nc < cols {
						next[nr][nc] = true
					}
				}
			}
		}
		cur = next
	}

	return cur
}
