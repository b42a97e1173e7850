package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ashshourov/OrbitSphere/assets"
	"github.com/ashshourov/OrbitSphere/internal/anim"
	"github.com/ashshourov/OrbitSphere/internal/palette"
	"github.com/ashshourov/OrbitSphere/internal/stage"
)

// DefaultLayoutFile is the embedded layout used when no path is configured.
const DefaultLayoutFile = "layouts/default.json"

// ErrInvalidLayout is wrapped by every validation failure.
var ErrInvalidLayout = errors.New("world: invalid layout")

// Layout is the JSON-serializable definition of a stage.
type Layout struct {
	Name    string    `json:"name"`
	Title   []string  `json:"title"`
	HUD     []string  `json:"hud"`
	Hint    []string  `json:"hint"`
	Restart RectDef   `json:"restart"`
	Items   []ItemDef `json:"items"`
}

// RectDef is a world-space rectangle as [x, y] corners.
type RectDef struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

// ItemDef defines one orbiting item.
type ItemDef struct {
	Name        string     `json:"name"`
	Center      [2]float64 `json:"center"`
	Radius      float64    `json:"radius"`
	Speed       float64    `json:"speed"`
	Phase       float64    `json:"phase"`
	Size        float64    `json:"size"`
	Color       string     `json:"color"`
	Segments    int        `json:"segments"`
	Description []string   `json:"description"`
}

// LoadLayout parses and validates a Layout from JSON bytes.
func LoadLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse stage layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// LoadLayoutFile reads a layout from disk. An empty path loads the embedded
// default.
func LoadLayoutFile(path string) (*Layout, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage layout: %w", err)
	}
	return LoadLayout(data)
}

// LoadDefault loads the embedded layout.
func LoadDefault() (*Layout, error) {
	data, err := assets.Layouts.ReadFile(DefaultLayoutFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded layout: %w", err)
	}
	return LoadLayout(data)
}

// Validate checks item names and colors and the restart rectangle.
func (l *Layout) Validate() error {
	if len(l.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidLayout)
	}
	seen := make(map[string]bool, len(l.Items))
	for i, it := range l.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidLayout, i)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate item %q", ErrInvalidLayout, name)
		}
		seen[key] = true
		if it.Radius < 0 || it.Size < 0 {
			return fmt.Errorf("%w: item %q has a negative radius or size", ErrInvalidLayout, name)
		}
		if it.Color != "" {
			if _, ok := palette.ByName(it.Color); !ok {
				return fmt.Errorf("%w: item %q has unknown color %q (valid: %s)",
					ErrInvalidLayout, name, it.Color, strings.Join(palette.Names(), ", "))
			}
		}
	}
	r := l.Restart
	if r != (RectDef{}) && (r.Max[0] <= r.Min[0] || r.Max[1] <= r.Min[1]) {
		return fmt.Errorf("%w: restart rectangle is empty", ErrInvalidLayout)
	}
	return nil
}

// Build adds every item to st in layout order and returns their handles.
func (l *Layout) Build(st *stage.Stage) []stage.Item {
	items := make([]stage.Item, 0, len(l.Items))
	for _, def := range l.Items {
		color := uint8(palette.White)
		if c, ok := palette.ByName(def.Color); ok {
			color = c
		}
		items = append(items, st.Add(stage.ItemSpec{
			Name:        strings.TrimSpace(def.Name),
			Center:      anim.Vec{X: def.Center[0], Y: def.Center[1]},
			Radius:      def.Radius,
			Speed:       def.Speed,
			Phase:       def.Phase,
			Size:        def.Size,
			Color:       color,
			Segments:    def.Segments,
			Description: def.Description,
		}))
	}
	return items
}

// RestartRect returns the restart button bounds, or a default box in the
// lower right when the layout leaves it out.
func (l *Layout) RestartRect() stage.Rect {
	r := l.Restart
	if r == (RectDef{}) {
		return stage.Rect{Min: anim.Vec{X: 7, Y: -5.5}, Max: anim.Vec{X: 10, Y: -4.5}}
	}
	return stage.Rect{
		Min: anim.Vec{X: r.Min[0], Y: r.Min[1]},
		Max: anim.Vec{X: r.Max[0], Y: r.Max[1]},
	}
}
