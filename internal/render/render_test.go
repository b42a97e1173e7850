package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/palette"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

func TestCellBuffer(t *testing.T) {
	t.Parallel()

	buf := NewCellBuffer(10, 3)
	buf.WriteString(1, 0, "hié", palette.Yellow, palette.Black)
	require.Equal(t, " hi?", buf.Text(0))
	require.Equal(t, Cell{Glyph: 'h', FG: palette.Yellow, BG: palette.Black}, buf.Get(1, 0))

	buf.Set(-1, 0, 'x', 0, 0)
	buf.Set(10, 2, 'x', 0, 0)
	require.Equal(t, Cell{}, buf.Get(10, 2))

	buf.WriteCentered(1, "abcd", palette.White, palette.Black)
	require.Equal(t, "   abcd", buf.Text(1))

	buf.Clear()
	require.Equal(t, "", buf.Text(0))
	require.Equal(t, "", buf.Text(7))
}

func TestCameraRoundTrip(t *testing.T) {
	t.Parallel()

	cam := Camera{Width: 1280, Height: 720, Scale: 60}
	x, y := cam.WorldToScreen(anim.Vec{})
	require.Equal(t, 640.0, x)
	require.Equal(t, 360.0, y)

	x, y = cam.WorldToScreen(anim.Vec{X: 1, Y: 1})
	require.Equal(t, 700.0, x)
	require.Equal(t, 300.0, y)

	p := anim.Vec{X: -4, Y: 2.5}
	require.Equal(t, p, cam.ScreenToWorld(cam.WorldToScreen(p)))

	col, row := cam.Cell(anim.Vec{X: -11, Y: 6.5}, CellSize, CellSize)
	require.Equal(t, -2, col)
	require.Equal(t, -2, row)

	require.Equal(t, anim.Vec{}, Camera{}.ScreenToWorld(10, 10))
}

func TestPathPointsCloseTheCircle(t *testing.T) {
	t.Parallel()

	o := stage.Orbit{Center: anim.Vec{X: 1, Y: -1}, Radius: 2}
	pts := PathPoints(o, 8)
	require.Len(t, pts, 9)
	require.Equal(t, pts[0], pts[8])
	for _, p := range pts {
		require.InDelta(t, 2, p.Dist(o.Center), 1e-9)
	}
	require.InDelta(t, 3, pts[0].X, 1e-9)
	require.InDelta(t, 1, pts[2].Y, 1e-9)

	require.Len(t, PathPoints(o, 0), stage.DefaultPathSegments+1)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a rocky", "world"}, Wrap("a rocky world", 8))
	require.Equal(t, []string{""}, Wrap("   ", 8))
	require.Equal(t, []string{"supercalifragilistic", "x"}, Wrap("supercalifragilistic x", 5))
}

func TestComposeLayers(t *testing.T) {
	t.Parallel()

	cam := Camera{Width: 640, Height: 320, Scale: 32}
	l := NewLayers(cam, CellSize, CellSize)
	require.Equal(t, 40, l.Title.Cols)
	require.Equal(t, 20, l.Title.Rows)

	st := stage.New()
	it := st.Add(stage.ItemSpec{Name: "Vesta", Description: []string{"bright rocky body"}})
	panel := stage.NewDetailPanel()
	panel.Show(it)
	restart := stage.NewButton("Restart", stage.Rect{Min: anim.Vec{X: 6, Y: -5}, Max: anim.Vec{X: 9, Y: -4}})
	restart.SetEnabled(true)

	l.Compose(View{
		Stage:   st,
		Title:   stage.NewGroup("title", "OrbitSphere", "click to begin"),
		Orbits:  stage.NewGroup("orbits", "pick an item"),
		Extras:  stage.NewGroup("extras"),
		Panel:   panel,
		Restart: restart,
		Feed:    []string{"one", "two", "three", "four", "five"},
		Status:  "detail",
	})

	require.Equal(t, strings.Repeat(" ", 14)+"OrbitSphere", l.Title.Text(9))
	require.Equal(t, "  pick an item", l.HUD.Text(1))
	require.Contains(t, l.Extras.Text(3), "Vesta")
	require.Contains(t, l.Extras.Text(5), "bright rocky body")
	require.Equal(t, "[ Restart ]", strings.TrimSpace(l.Extras.Text(18)))
	require.Equal(t, uint8(palette.White), l.Extras.Get(32, 18).FG)

	require.Equal(t, "  two", l.Status.Text(15))
	require.Equal(t, "  five", l.Status.Text(18))
	require.Equal(t, strings.Repeat(" ", 32)+"detail", l.Status.Text(19))
}
