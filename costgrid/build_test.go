package costgrid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvlpath/costgrid"
)

// square returns a closed axis-aligned ring from (x0,y0) to (x1,y1).
func square(x0, y0, x1, y1 float64) orb.Ring {
	return orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

//----------------------------------------------------------------------------//
// Build validation
//----------------------------------------------------------------------------//

// TestBuild_InvalidDimensions verifies that non-positive dimensions are fatal.
func TestBuild_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 5},
		{"ZeroHeight", 5, 0},
		{"NegativeWidth", -3, 5},
		{"NegativeHeight", 5, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := costgrid.Build(tc.width, tc.height, nil, nil)
			if !errors.Is(err, costgrid.ErrInvalidDimensions) {
				t.Errorf("Build(%d,%d) error = %v; want ErrInvalidDimensions", tc.width, tc.height, err)
			}
			if g != nil {
				t.Error("Build returned a grid alongside a fatal error")
			}
		})
	}
}

// TestBuild_EmptyLayout checks that a layout without polygons yields a grid
// of pure baseline cost with the requested shape.
func TestBuild_EmptyLayout(t *testing.T) {
	g, err := costgrid.Build(4, 3, nil, nil)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if g.Rows != 3 || g.Cols != 4 {
		t.Fatalf("grid shape = %d×%d; want 3×4", g.Rows, g.Cols)
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) != costgrid.CostEmpty {
				t.Errorf("At(%d,%d) = %v; want CostEmpty", r, c, g.At(r, c))
			}
		}
	}
}

// TestBuild_DegeneratePolygonsSkipped verifies that polygons with fewer than
// three vertices are ignored rather than rejected.
func TestBuild_DegeneratePolygonsSkipped(t *testing.T) {
	degenerate := []orb.Ring{
		{},
		{{1, 1}},
		{{1, 1}, {4, 4}},
	}
	g, err := costgrid.Build(5, 5, degenerate, degenerate, costgrid.WithDilation(0))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c) != costgrid.CostEmpty {
				t.Fatalf("degenerate polygon affected cell (%d,%d)", r, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Cost model
//----------------------------------------------------------------------------//

// TestBuild_StagingPenalty checks that staging cells carry exactly one
// penalty application, even under overlapping staging polygons.
func TestBuild_StagingPenalty(t *testing.T) {
	staging := []orb.Ring{
		square(0, 0, 3, 3),
		square(1, 1, 3, 3), // overlaps the first; must not stack
	}
	g, err := costgrid.Build(6, 6, nil, staging,
		costgrid.WithStagingPenalty(5),
		costgrid.WithDilation(0),
	)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	want := costgrid.CostEmpty + 5
	if got := g.At(1, 1); got != want {
		t.Errorf("staging cell cost = %v; want %v", got, want)
	}
	if got := g.At(2, 2); got != want {
		t.Errorf("overlapped staging cell cost = %v; want %v (penalties must not stack)", got, want)
	}
	if got := g.At(4, 4); got != costgrid.CostEmpty {
		t.Errorf("outside cell cost = %v; want CostEmpty", got)
	}
}

// TestBuild_ObstacleOverridesStaging verifies obstacle precedence where the
// two polygon kinds overlap.
func TestBuild_ObstacleOverridesStaging(t *testing.T) {
	zone := []orb.Ring{square(0, 0, 4, 4)}
	g, err := costgrid.Build(8, 8, zone, zone, costgrid.WithDilation(0))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !math.IsInf(g.At(2, 2), 1) {
		t.Errorf("overlapping cell cost = %v; want CostObstacle", g.At(2, 2))
	}
}

// TestBuild_ValueDomain checks that an undilated grid only ever contains
// CostEmpty, CostEmpty+penalty, or CostObstacle.
func TestBuild_ValueDomain(t *testing.T) {
	obstacles := []orb.Ring{square(1, 1, 4, 4)}
	staging := []orb.Ring{square(5, 5, 9, 9)}
	g, err := costgrid.Build(10, 10, obstacles, staging,
		costgrid.WithStagingPenalty(7),
		costgrid.WithDilation(0),
	)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			v := g.At(r, c)
			if v != costgrid.CostEmpty && v != costgrid.CostEmpty+7 && !math.IsInf(v, 1) {
				t.Fatalf("At(%d,%d) = %v; outside the permitted value domain", r, c, v)
			}
			if v < 0 {
				t.Fatalf("At(%d,%d) = %v; costs must never be negative", r, c, v)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Dilation
//----------------------------------------------------------------------------//

// TestBuild_DilationGrowsObstacles verifies that dilation converts finite
// cells around an obstacle to CostObstacle, including diagonal neighbors.
func TestBuild_DilationGrowsObstacles(t *testing.T) {
	// One obstacle covering only the cell whose center is (4.5, 4.5).
	obstacles := []orb.Ring{square(4, 4, 5, 5)}

	plain, err := costgrid.Build(10, 10, obstacles, nil, costgrid.WithDilation(0))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	grown, err := costgrid.Build(10, 10, obstacles, nil, costgrid.WithDilation(1))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if !math.IsInf(plain.At(4, 4), 1) {
		t.Fatal("expected raw obstacle at (4,4)")
	}
	if math.IsInf(plain.At(3, 3), 1) {
		t.Fatal("undilated grid already blocks (3,3)")
	}
	// Single iteration blocks the full king-move neighborhood.
	for r := 3; r <= 5; r++ {
		for c := 3; c <= 5; c++ {
			if !math.IsInf(grown.At(r, c), 1) {
				t.Errorf("dilated grid At(%d,%d) = %v; want CostObstacle", r, c, grown.At(r, c))
			}
		}
	}
	if math.IsInf(grown.At(2, 2), 1) {
		t.Error("one dilation iteration reached (2,2); grew too far")
	}

	// Dilation may only convert finite cells to CostObstacle, never back.
	for r := 0; r < plain.Rows; r++ {
		for c := 0; c < plain.Cols; c++ {
			if math.IsInf(plain.At(r, c), 1) && !math.IsInf(grown.At(r, c), 1) {
				t.Fatalf("dilation un-blocked cell (%d,%d)", r, c)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Determinism and accessors
//----------------------------------------------------------------------------//

// TestBuild_Deterministic verifies that identical inputs produce
// bit-identical cost arrays.
func TestBuild_Deterministic(t *testing.T) {
	obstacles := []orb.Ring{square(2, 2, 7, 5), square(10, 1, 12, 12)}
	staging := []orb.Ring{square(6, 8, 13, 11)}

	a, err := costgrid.Build(16, 14, obstacles, staging, costgrid.WithStagingPenalty(3))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	b, err := costgrid.Build(16, 14, obstacles, staging, costgrid.WithStagingPenalty(3))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	av, bv := a.Values(), b.Values()
	for r := range av {
		for c := range av[r] {
			// Bit-identical: ∞ == ∞ and exact float equality everywhere else.
			if av[r][c] != bv[r][c] && !(math.IsInf(av[r][c], 1) && math.IsInf(bv[r][c], 1)) {
				t.Fatalf("grids differ at (%d,%d): %v vs %v", r, c, av[r][c], bv[r][c])
			}
		}
	}
}

// TestGrid_CellForPoint checks the clamped floor mapping at a non-unit
// resolution.
func TestGrid_CellForPoint(t *testing.T) {
	g, err := costgrid.Build(10, 8, nil, nil, costgrid.WithResolution(2))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	cases := []struct {
		name  string
		point orb.Point
		want  costgrid.Cell
	}{
		{"Origin", orb.Point{0, 0}, costgrid.Cell{Row: 0, Col: 0}},
		{"Interior", orb.Point{5, 3}, costgrid.Cell{Row: 1, Col: 2}},
		{"ClampHigh", orb.Point{99, 99}, costgrid.Cell{Row: 7, Col: 9}},
		{"ClampNegative", orb.Point{-4, -4}, costgrid.Cell{Row: 0, Col: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.CellForPoint(tc.point); got != tc.want {
				t.Errorf("CellForPoint(%v) = %+v; want %+v", tc.point, got, tc.want)
			}
		})
	}
}

// TestGrid_CenterOf checks the cell-center mapping used for path polylines.
func TestGrid_CenterOf(t *testing.T) {
	g, err := costgrid.Build(4, 4, nil, nil, costgrid.WithResolution(2))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	got := g.CenterOf(costgrid.Cell{Row: 1, Col: 3})
	want := orb.Point{7, 3}
	if got != want {
		t.Errorf("CenterOf(1,3) = %v; want %v", got, want)
	}
}

// TestGrid_CloneIndependence verifies deep copies do not alias grid storage.
func TestGrid_CloneIndependence(t *testing.T) {
	g, err := costgrid.Build(3, 3, nil, nil)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	values := g.Values()
	values[1][1] = 42
	if g.At(1, 1) == 42 {
		t.Error("mutating Values() copy changed the grid")
	}

	clone := g.Clone()
	if clone.Rows != g.Rows || clone.Cols != g.Cols || clone.Resolution != g.Resolution {
		t.Error("clone shape differs from original")
	}
}
