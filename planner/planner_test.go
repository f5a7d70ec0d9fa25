package planner_test

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/planner"
	"github.com/katalvlaran/lvlpath/units"
)

// square returns a closed axis-aligned ring from (x0,y0) to (x1,y1).
func square(x0, y0, x1, y1 float64) orb.Ring {
	return orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

// openLayout is a 20×20 px empty floor with one source in the corner and a
// calibrated scale of 2 px per meter.
func openLayout() *planner.Layout {
	l := planner.NewLayout(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{20, 20}})
	l.AddSource("A1", orb.Point{0.5, 0.5})
	l.SetScale(2, units.Meters)

	return l
}

//----------------------------------------------------------------------------//
// State machine
//----------------------------------------------------------------------------//

func TestPlanner_StartsStale(t *testing.T) {
	p := planner.New(openLayout())
	require.False(t, p.Valid())
	require.Nil(t, p.Grid())

	_, _, err := p.ShortestPath("A1", orb.Point{5, 5})
	require.ErrorIs(t, err, planner.ErrStale)
}

func TestPlanner_RebuildValidates(t *testing.T) {
	p := planner.New(openLayout())

	failed, err := p.Rebuild(context.Background())
	require.NoError(t, err)
	require.Empty(t, failed)
	require.True(t, p.Valid())
	require.NotNil(t, p.Grid())
	require.Equal(t, 20, p.Grid().Rows)
	require.Equal(t, 20, p.Grid().Cols)
}

func TestPlanner_EditInvalidates(t *testing.T) {
	l := openLayout()
	p := planner.New(l)
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	l.AddObstacle(square(4, 4, 6, 6))
	require.False(t, p.Valid())

	_, _, err = p.ShortestPath("A1", orb.Point{5, 5})
	require.ErrorIs(t, err, planner.ErrStale)

	// A fresh rebuild restores service against the edited layout.
	_, err = p.Rebuild(context.Background())
	require.NoError(t, err)
	require.True(t, p.Valid())
}

func TestPlanner_DisplayUnitDoesNotInvalidate(t *testing.T) {
	l := openLayout()
	p := planner.New(l)
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	l.SetDisplayUnit(units.Feet)
	require.True(t, p.Valid(), "display unit is reporting-only and must not stale the pair")

	path, ok, err := p.ShortestPath("A1", orb.Point{10.5, 0.5})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, units.Feet, path.Unit)
	require.InDelta(t, 5*3.28084, path.Distance, 1e-9)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestPlanner_ShortestPath(t *testing.T) {
	p := planner.New(openLayout())
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	// Straight run: source cell (0,0) to target cell (0,10). Ten unit steps
	// of pixel length 1 each, at 2 px per meter.
	path, ok, err := p.ShortestPath("A1", orb.Point{10.5, 0.5})
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, path.Cells, 11)
	require.Len(t, path.Points, 11)
	require.Equal(t, units.Meters, path.Unit)
	require.InDelta(t, 5.0, path.Distance, 1e-9)

	// The polyline starts at the source cell center.
	require.Equal(t, 0.5, path.Points[0].X())
	require.Equal(t, 0.5, path.Points[0].Y())
}

func TestPlanner_UnreachableTarget(t *testing.T) {
	l := openLayout()
	l.AddObstacle(square(0, 9, 20, 11)) // full-width wall
	p := planner.New(l, planner.WithDilation(0))
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	path, ok, err := p.ShortestPath("A1", orb.Point{10.5, 15.5})
	require.NoError(t, err, "an unreachable target is not an error")
	require.False(t, ok)
	require.Zero(t, path)
}

func TestPlanner_UnknownSource(t *testing.T) {
	p := planner.New(openLayout())
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	_, _, err = p.ShortestPath("ZZ9", orb.Point{5, 5})
	require.ErrorIs(t, err, planner.ErrUnknownSource)
}

func TestPlanner_NoScale(t *testing.T) {
	l := planner.NewLayout(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{20, 20}})
	l.AddSource("A1", orb.Point{0.5, 0.5})
	p := planner.New(l)
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	_, _, err = p.ShortestPath("A1", orb.Point{5, 5})
	require.ErrorIs(t, err, planner.ErrNoScale)
}

func TestPlanner_PathBetween(t *testing.T) {
	l := openLayout()
	l.AddTarget("S1", orb.Point{10.5, 0.5})
	p := planner.New(l)
	_, err := p.Rebuild(context.Background())
	require.NoError(t, err)

	dist, ok, err := p.Distance("A1", "S1")
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 5.0, dist, 1e-9)

	_, _, err = p.PathBetween("A1", "S99")
	require.ErrorIs(t, err, planner.ErrUnknownTarget)
}

func TestPlanner_ObstacleSeatedSourceFails(t *testing.T) {
	l := openLayout()
	l.AddSource("A2", orb.Point{10.5, 10.5})
	l.AddObstacle(square(10, 10, 11, 11))
	p := planner.New(l, planner.WithDilation(0))

	failed, err := p.Rebuild(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"A2"}, failed)
	require.True(t, p.Valid(), "a partial rebuild is still a usable pair")

	// The failed source has no maps; the surviving one still answers.
	_, _, err = p.ShortestPath("A2", orb.Point{5, 5})
	require.ErrorIs(t, err, planner.ErrUnknownSource)

	_, ok, err := p.ShortestPath("A1", orb.Point{5.5, 0.5})
	require.NoError(t, err)
	require.True(t, ok)
}

//----------------------------------------------------------------------------//
// Granularity
//----------------------------------------------------------------------------//

func TestPlanner_Granularity(t *testing.T) {
	l := openLayout()
	l.SetResolution(2)
	l.SetScale(4, units.Meters)
	l.SetDisplayUnit(units.Feet)
	p := planner.New(l)

	// Granularity depends only on layout state, not on the cached pair.
	v, unit, ok := p.Granularity()
	require.True(t, ok)
	require.Equal(t, units.Feet, unit)
	require.InDelta(t, 0.5*3.28084, v, 1e-9)
}

func TestPlanner_GranularityWithoutScale(t *testing.T) {
	l := planner.NewLayout(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{20, 20}})
	p := planner.New(l)

	_, _, ok := p.Granularity()
	require.False(t, ok)
}

//----------------------------------------------------------------------------//
// Option validation
//----------------------------------------------------------------------------//

func TestPlanner_OptionPanics(t *testing.T) {
	require.Panics(t, func() { planner.WithWorkers(0)(&planner.Options{}) })
	require.Panics(t, func() { planner.WithDilation(-1)(&planner.Options{}) })
}
