package captcha

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	ImageWidth  = 120
	ImageHeight = 40

	glyphAdvance = 9
	glyphCanvasH = 18
	noiseLines   = 6
	noiseDots    = 120
)

var (
	backgroundColor = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	textColor       = color.RGBA{R: 0x33, G: 0x33, B: 0x66, A: 0xFF}
)

// PNGRenderer draws the text with a bitmap font, upscales it and adds noise.
// The output is a data URL so it can be embedded directly in an img tag.
type PNGRenderer struct{}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{}
}

func (r *PNGRenderer) Render(text string) (imageURL string, err error) {
	glyphs := image.NewRGBA(image.Rect(0, 0, len(text)*glyphAdvance+4, glyphCanvasH))
	drawer := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}
	for i, char := range text {
		drawer.Dot = fixed.P(2+i*glyphAdvance, 13+rand.IntN(3)-1)
		drawer.DrawString(string(char))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, ImageWidth, ImageHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(canvas, canvas.Bounds().Inset(4), glyphs, glyphs.Bounds(), draw.Over, nil)
	addNoise(canvas)

	var buf bytes.Buffer
	if err = png.Encode(&buf, canvas); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func addNoise(canvas *image.RGBA) {
	bounds := canvas.Bounds()
	for range noiseLines {
		lineColor := randomColor()
		y0, y1 := rand.IntN(bounds.Dy()), rand.IntN(bounds.Dy())
		for x := range bounds.Dx() {
			y := y0 + (y1-y0)*x/bounds.Dx()
			canvas.Set(x, y, lineColor)
		}
	}

	for range noiseDots {
		canvas.Set(rand.IntN(bounds.Dx()), rand.IntN(bounds.Dy()), randomColor())
	}
}

func randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(rand.IntN(200)),
		G: uint8(rand.IntN(200)),
		B: uint8(rand.IntN(200)),
		A: 0xFF,
	}
}
