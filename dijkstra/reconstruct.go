package dijkstra

import (
	"github.com/katalvlaran/lvlpath/costgrid"
)

// Reconstruct walks prev backward from target to start and returns the cell
// sequence from start to target inclusive, or nil when no path exists.
//
// nil is returned in three situations:
//
//   - target carries NoPredecessor and is not the start itself (unreached),
//   - a NoPredecessor shows up mid-walk before reaching start (broken chain),
//   - the walk exceeds rows×cols hops (cycle guard; cannot happen
//     with maps produced by Compute, but must not hang on corrupt input).
//
// Complexity: O(len(path)) time, O(len(path)) space.
func Reconstruct(prev PredecessorMap, start, target costgrid.Cell) []costgrid.Cell {
	rows := len(prev)
	if rows == 0 {
		return nil
	}
	cols := len(prev[0])
	if !inBounds(target, rows, cols) || !inBounds(start, rows, cols) {
		return nil
	}

	// Unreached target: only the start cell may legitimately carry the
	// sentinel.
	if prev.At(target) == NoPredecessor && target != start {
		return nil
	}

	maxHops := rows * cols
	path := make([]costgrid.Cell, 0, 16)
	cur := target
	for hops := 0; cur != start; hops++ {
		if hops >= maxHops {
			return nil // cycle guard
		}
		path = append(path, cur)
		next := prev.At(cur)
		if next == NoPredecessor || !inBounds(next, rows, cols) {
			return nil // chain broke before reaching start
		}
		cur = next
	}
	path = append(path, start)

	// The walk collected target→start; flip it to start→target.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// inBounds reports whether cell lies within a rows×cols map.
func inBounds(cell costgrid.Cell, rows, cols int) bool {
	return cell.Row >= 0 && cell.Row < rows && cell.Col >= 0 && cell.Col < cols
}
