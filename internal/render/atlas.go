package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 8
)

// Glyph codes outside printable ASCII that the atlas draws by hand.
const (
	GlyphShade  byte = 0x7f
	GlyphBlock  byte = 0x01
	GlyphSquare byte = 0x02
	GlyphBullet byte = 0x03
)

// FontAtlas holds the glyph atlas and cached sub-images for codes 0-127.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [AtlasCols * AtlasRows]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup. Printable ASCII is rendered
// with basicfont.Face7x13; the few block glyphs are drawn directly.
func NewFontAtlas() *FontAtlas {
	img := atlasImage()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}

	for code := range a.glyphs {
		a.glyphs[code] = eimg.SubImage(glyphRect(byte(code))).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for code. Codes past the atlas map to
// '?'.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if int(code) >= len(a.glyphs) {
		code = '?'
	}
	return a.glyphs[code]
}

func glyphRect(code byte) image.Rectangle {
	x := int(code) % AtlasCols * GlyphWidth
	y := int(code) / AtlasCols * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// atlasImage rasterizes every glyph into one CPU-side image.
func atlasImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < AtlasCols*AtlasRows; code++ {
		r := glyphRect(byte(code))
		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, r.Min.X, r.Min.Y, rune(code))
		default:
			drawBlockGlyph(img, r.Min.X, r.Min.Y, byte(code))
		}
	}
	return img
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawBlockGlyph fills the hand-drawn glyphs; other control codes stay blank.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	fill := func(x0, y0, x1, y1 int, keep func(x, y int) bool) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if keep == nil || keep(x, y) {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	}

	switch code {
	case GlyphShade:
		fill(0, 0, GlyphWidth, GlyphHeight, func(x, y int) bool { return (x+y)%2 == 0 })
	case GlyphBlock:
		fill(0, 0, GlyphWidth, GlyphHeight, nil)
	case GlyphSquare:
		fill(4, 4, 12, 12, nil)
	case GlyphBullet:
		fill(6, 6, 10, 10, nil)
	}
}
