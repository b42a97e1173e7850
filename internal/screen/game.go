package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ashshourov/OrbitSphere/internal/app"
	"github.com/ashshourov/OrbitSphere/internal/config"
	"github.com/ashshourov/OrbitSphere/internal/render"
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All scene state lives in the app.
type Game struct {
	app      *app.App
	renderer *render.Renderer
	width    int
	height   int
	showFPS  bool
}

func NewGame(a *app.App, cfg config.WindowConfig) *Game {
	cam := render.Camera{Width: cfg.Width, Height: cfg.Height, Scale: cfg.Scale}
	return &Game{
		app:      a,
		renderer: render.NewRenderer(cam),
		width:    cfg.Width,
		height:   cfg.Height,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showFPS = !g.showFPS
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.app.Click(g.renderer.Camera().ScreenToWorld(float64(mx), float64(my)))
	}

	g.app.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	v := g.app.View()
	if g.showFPS {
		v.Status = fmt.Sprintf("FPS: %.0f  TPS: %.0f  %s", ebiten.ActualFPS(), ebiten.ActualTPS(), v.Status)
	}
	g.renderer.Draw(screen, v)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(a *app.App, cfg config.WindowConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(a, cfg)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
