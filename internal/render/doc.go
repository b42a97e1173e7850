// Package render draws the viewer with Ebitengine: orbit paths and items as
// vector shapes, and the title, HUD, detail and status text as cell grids
// rasterized from a basicfont glyph atlas.
package render
