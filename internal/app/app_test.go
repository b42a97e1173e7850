package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/scene"
	"github.com/ashshourov/OrbitSphere/internal/world"
)

const step = 0.125

func runUntil(t *testing.T, a *App, want scene.State) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		a.Step(step)
		if s, ok := a.Orchestrator().Active(); ok && s == want {
			return
		}
	}
	t.Fatalf("never became active in %s (status %q)", want, a.Status())
}

func newStarted(t *testing.T) *App {
	t.Helper()
	a, err := New(nil, nil, nil)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	require.NoError(t, a.Start())
	return a
}

func TestFullLoop(t *testing.T) {
	t.Parallel()

	a := newStarted(t)
	var timeline []scene.State
	a.OnSceneChange(func(s scene.State, at float64) {
		require.GreaterOrEqual(t, at, 0.0)
		timeline = append(timeline, s)
	})

	runUntil(t, a, scene.Title)
	require.False(t, a.Click(anim.Vec{}))

	handled, err := a.Select("vesta")
	require.NoError(t, err)
	require.False(t, handled)

	runUntil(t, a, scene.Orbit)
	handled, err = a.Select("vesta")
	require.NoError(t, err)
	require.True(t, handled)

	runUntil(t, a, scene.Detail)
	it, ok := a.Selection().Get()
	require.True(t, ok)
	require.Equal(t, "Vesta", it.Name())
	require.True(t, a.Elements().Panel.Shown())

	lines := a.Feed().Lines(2)
	require.Contains(t, lines[0], "entering detail")
	require.Equal(t, "inspecting Vesta", lines[1])

	bounds := a.Elements().Restart.Bounds()
	center := bounds.Min.Add(bounds.Max).Scale(0.5)
	require.True(t, a.Click(center))

	runUntil(t, a, scene.Title)
	require.Equal(t, []scene.State{scene.Title, scene.Orbit, scene.Detail, scene.Title}, timeline)
}

func TestSelectPicksCoveredItem(t *testing.T) {
	t.Parallel()

	layout := &world.Layout{Items: []world.ItemDef{
		{Name: "Under", Radius: 3, Speed: 30, Size: 0.5},
		{Name: "Over", Radius: 3, Speed: 30, Size: 0.5},
	}}
	a, err := New(nil, nil, layout)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	require.NoError(t, a.Start())

	runUntil(t, a, scene.Orbit)
	handled, err := a.Select("under")
	require.NoError(t, err)
	require.True(t, handled)

	it, ok := a.Selection().Get()
	require.True(t, ok)
	require.Equal(t, "Under", it.Name())
}

func TestSelectUnknownItem(t *testing.T) {
	t.Parallel()

	a := newStarted(t)
	_, err := a.Select("Pluto")
	require.ErrorIs(t, err, ErrUnknownItem)
	require.Contains(t, err.Error(), `"Pluto"`)
}

func TestRestartOnlyFromDetail(t *testing.T) {
	t.Parallel()

	a := newStarted(t)
	runUntil(t, a, scene.Orbit)
	require.False(t, a.Restart())

	_, err := a.Select("Ceres")
	require.NoError(t, err)
	runUntil(t, a, scene.Detail)
	require.True(t, a.Restart())
	runUntil(t, a, scene.Title)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	a, err := New(nil, nil, nil)
	require.NoError(t, err)
	defer a.Close()

	require.Equal(t, "none  0.0s", a.Status())
	require.NoError(t, a.Start())
	require.Equal(t, "none -> title", a.Status())

	runUntil(t, a, scene.Title)
	require.True(t, strings.HasPrefix(a.Status(), "title  "))

	v := a.View()
	require.Equal(t, a.Stage(), v.Stage)
	require.Len(t, v.Feed, 1)
	require.Contains(t, v.Feed[0], "entering title")
}

func TestNewRejectsUnknownEasing(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Scenes.Easing = "bouncy"
	_, err := New(cfg, nil, nil)
	require.ErrorContains(t, err, "scene easing")
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	t.Parallel()

	a, err := New(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, a.Elements().Picker.Subscribers())
	require.Equal(t, 1, a.Elements().Restart.Listeners())

	a.Close()
	require.Zero(t, a.Elements().Picker.Subscribers())
	require.Zero(t, a.Elements().Restart.Listeners())
	a.Close()
}

func TestFeed(t *testing.T) {
	t.Parallel()

	f := NewFeed(3, 10)
	f.Add("one", PriorityInfo, 0)
	require.Equal(t, []string{"one"}, f.Lines(5))

	f.Add("a very long line here", PriorityWarning, 1)
	require.Equal(t, 3, f.Len())
	require.Equal(t, []string{"a very", "long line", "here"}, f.Lines(3))

	recent := f.Recent(1)
	require.Equal(t, Event{Text: "here", Priority: PriorityWarning, At: 1}, recent[0])
	require.Empty(t, f.Recent(0))
	require.Empty(t, f.Recent(-2))

	require.Equal(t, 1, NewFeed(0, 10).maxSize)
}
