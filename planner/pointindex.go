package planner

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// pointTolerance is the half-width of the degenerate rectangle each point
// occupies inside the R-tree. Points closer than this are still distinct
// entries; the tolerance only shapes the tree, not the answers.
const pointTolerance = 1e-9

// PointIndex answers nearest-point and region queries over a named point
// set, such as "which pick aisle did the user click on". It is a spatial
// view over layout points: build it once per edit session and rebuild it
// after renames or moves.
type PointIndex struct {
	tree *rtreego.Rtree
}

type pointEntry struct {
	name     string
	location rtreego.Point
}

func (e *pointEntry) Bounds() rtreego.Rect {
	return e.location.ToRect(pointTolerance)
}

// NewPointIndex builds an index over the given named points.
func NewPointIndex(points map[string]orb.Point) *PointIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for name, p := range points {
		tree.Insert(&pointEntry{
			name:     name,
			location: rtreego.Point{p.X(), p.Y()},
		})
	}

	return &PointIndex{tree: tree}
}

// Len returns the number of indexed points.
func (idx *PointIndex) Len() int { return idx.tree.Size() }

// Nearest returns the name of the indexed point closest to p. ok=false only
// when the index is empty.
func (idx *PointIndex) Nearest(p orb.Point) (string, bool) {
	if idx.tree.Size() == 0 {
		return "", false
	}
	hit := idx.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	entry, ok := hit.(*pointEntry)
	if !ok {
		return "", false
	}

	return entry.name, true
}

// Within returns the names of all indexed points inside the bound, sorted
// for deterministic output. The bound is inclusive on all edges.
func (idx *PointIndex) Within(b orb.Bound) []string {
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Left(), b.Bottom()},
		[]float64{b.Right() - b.Left(), b.Top() - b.Bottom()},
	)
	if err != nil {
		return nil
	}

	hits := idx.tree.SearchIntersect(rect)
	names := make([]string, 0, len(hits))
	for _, hit := range hits {
		if entry, ok := hit.(*pointEntry); ok {
			names = append(names, entry.name)
		}
	}
	sort.Strings(names)

	return names
}
