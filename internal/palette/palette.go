// Package palette holds the CGA 16-color palette and its names. It has no
// graphics dependencies so layout parsing can resolve colors headlessly.
package palette

import (
	"image/color"
	"sort"
	"strings"
)

// CGA 16-color palette indices.
const (
	Black        = 0
	Blue         = 1
	Green        = 2
	Cyan         = 3
	Red          = 4
	Magenta      = 5
	Brown        = 6
	LightGray    = 7
	DarkGray     = 8
	LightBlue    = 9
	LightGreen   = 10
	LightCyan    = 11
	LightRed     = 12
	LightMagenta = 13
	Yellow       = 14
	White        = 15
)

// RGBA contains the classic CGA 16-color palette.
var RGBA = [16]color.RGBA{
	{0, 0, 0, 255},       // 0: Black
	{0, 0, 170, 255},     // 1: Blue
	{0, 170, 0, 255},     // 2: Green
	{0, 170, 170, 255},   // 3: Cyan
	{170, 0, 0, 255},     // 4: Red
	{170, 0, 170, 255},   // 5: Magenta
	{170, 85, 0, 255},    // 6: Brown
	{170, 170, 170, 255}, // 7: Light Gray
	{85, 85, 85, 255},    // 8: Dark Gray
	{85, 85, 255, 255},   // 9: Light Blue
	{85, 255, 85, 255},   // 10: Light Green
	{85, 255, 255, 255},  // 11: Light Cyan
	{255, 85, 85, 255},   // 12: Light Red
	{255, 85, 255, 255},  // 13: Light Magenta
	{255, 255, 85, 255},  // 14: Yellow
	{255, 255, 255, 255}, // 15: White
}

var names = map[string]uint8{
	"black":         Black,
	"blue":          Blue,
	"green":         Green,
	"cyan":          Cyan,
	"red":           Red,
	"magenta":       Magenta,
	"brown":         Brown,
	"light-gray":    LightGray,
	"dark-gray":     DarkGray,
	"light-blue":    LightBlue,
	"light-green":   LightGreen,
	"light-cyan":    LightCyan,
	"light-red":     LightRed,
	"light-magenta": LightMagenta,
	"yellow":        Yellow,
	"white":         White,
}

// ByName resolves a palette name such as "light-cyan". Matching is
// case-insensitive and accepts underscores or spaces for the hyphen.
func ByName(name string) (uint8, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	c, ok := names[key]
	return c, ok
}

// Names lists the accepted palette names, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Faded returns palette color c with its alpha scaled by alpha in [0, 1].
// The result is premultiplied, as ebiten expects.
func Faded(c uint8, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	p := RGBA[c&0x0f]
	return color.RGBA{
		R: uint8(float64(p.R) * alpha),
		G: uint8(float64(p.G) * alpha),
		B: uint8(float64(p.B) * alpha),
		A: uint8(float64(p.A) * alpha),
	}
}
