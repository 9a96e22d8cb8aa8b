package visualization

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorAxis       = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	colorGrid       = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	colorText       = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// RenderPNG draws a bar chart and encodes it as PNG.
func RenderPNG(w io.Writer, bars []Bar, opts ChartOptions) error {
	l, err := newLayout(bars, opts)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	face := basicfont.Face7x13

	// Dashed grid and tick labels.
	for _, tick := range l.ticks {
		y := l.y(tick)
		for x := l.left; x < l.right; x += 8 {
			fillRect(img, x, y, min(x+4, l.right), y+1, colorGrid)
		}
		label := valueLabel(tick)
		drawText(img, face, label, l.left-8-textWidth(face, label), y+4, colorText)
	}

	for i, b := range bars {
		c, err := parseHex(barColor(i))
		if err != nil {
			return err
		}
		x0, bw := l.slot(i, len(bars))
		top := l.y(b.Value)
		fillRect(img, x0, top, x0+bw, l.bottom, c)

		label := valueLabel(b.Value)
		drawText(img, face, label, x0+(bw-textWidth(face, label))/2, top-6, colorText)
		drawText(img, face, b.Label, x0+(bw-textWidth(face, b.Label))/2, l.bottom+20, colorText)
	}

	// Axes.
	fillRect(img, l.left, l.top, l.left+1, l.bottom+1, colorAxis)
	fillRect(img, l.left, l.bottom, l.right, l.bottom+1, colorAxis)

	drawText(img, face, opts.Title, (l.width-textWidth(face, opts.Title))/2, l.top-28, colorText)
	drawText(img, face, opts.YLabel, 8, l.top-10, colorText)

	return png.Encode(w, img)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
