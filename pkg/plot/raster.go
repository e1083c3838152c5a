package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
)

// ImageRasterizer draws the plot directly onto an RGBA canvas and encodes
// PNG. It redraws the same primitives as RenderSVG instead of rasterizing
// the SVG output; a full SVG renderer is far more machinery than stems,
// heads and an axis deserve.
type ImageRasterizer struct{}

var _ Rasterizer = ImageRasterizer{}

var residueRGBA = map[string]color.RGBA{
	"S": {R: 0x4c, G: 0x78, B: 0xa8, A: 0xff},
	"T": {R: 0xf5, G: 0x85, B: 0x18, A: 0xff},
	"Y": {R: 0xe4, G: 0x57, B: 0x56, A: 0xff},
}

var (
	axisGray = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	stemGray = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	fallback = color.RGBA{R: 0x9d, G: 0x9d, B: 0x9d, A: 0xff}
)

func (ImageRasterizer) Render(s State, geom Geometry) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, geom.Width, geom.Height))
	fillRect(img, 0, 0, geom.Width, geom.Height, color.RGBA{255, 255, 255, 255})

	base := geom.baseline()
	left := geom.MarginLeft
	right := geom.Width - geom.MarginRight

	fillRect(img, left, base, right, base+1, axisGray)
	fillRect(img, left, geom.MarginTop, left+1, base, axisGray)

	if s.Phase == Ready {
		xs := XScale(s, geom)
		ys := Scale{
			DomainMin: 0, DomainMax: 1,
			RangeMin: float64(base), RangeMax: float64(geom.MarginTop),
		}

		for _, site := range Visible(s) {
			x := px(xs.Apply(float64(site.Position)))
			y := px(ys.Apply(site.ProbabilityCalibrated))

			c, ok := residueRGBA[string(site.Residue)]
			if !ok {
				c = fallback
			}

			fillRect(img, x, y, x+1, base, stemGray)
			fillCircle(img, x, y, 5, c)
		}
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !image.Pt(x, y).In(img.Rect) {
				continue
			}
			if math.Hypot(float64(x-cx), float64(y-cy)) <= float64(r) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
