package plot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
)

// Geometry is the pixel box of a rendered plot.
type Geometry struct {
	Width  int
	Height int

	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:  960,
		Height: 420,

		MarginLeft:   50,
		MarginRight:  20,
		MarginTop:    20,
		MarginBottom: 60,
	}
}

// baseline is the y pixel of the position axis.
func (g Geometry) baseline() int {
	return g.Height - g.MarginBottom
}

// residue colors, also used by the raster renderer.
var residueColors = map[kdb.Residue]string{
	kdb.Serine:    "#4c78a8",
	kdb.Threonine: "#f58518",
	kdb.Tyrosine:  "#e45756",
}

const fallbackColor = "#9d9d9d"

// widest zoom at which per-residue glyphs are still legible.
const sequenceStripMaxSpan = 120

// RenderSVG draws the lollipop plot of the current state: a position axis,
// one stem+head per visible site (y = calibrated probability), and a
// sequence strip when the view is zoomed tightly enough to letter
// individual residues.
func RenderSVG(w io.Writer, s State, geom Geometry) error {
	canvas := svg.New(w)
	canvas.Start(geom.Width, geom.Height)
	defer canvas.End()

	if s.Phase != Ready {
		message := "loading..."
		if s.Phase == Failed {
			message = s.Reason
			if message == "" {
				message = "could not load protein data"
			}
		}
		canvas.Text(
			geom.Width/2, geom.Height/2, message,
			"text-anchor:middle;font-family:sans-serif;fill:#666",
		)
		return nil
	}

	xs := XScale(s, geom)
	ys := Scale{
		DomainMin: 0, DomainMax: 1,
		RangeMin: float64(geom.baseline()), RangeMax: float64(geom.MarginTop),
	}

	drawAxes(canvas, s, geom, xs)

	for _, site := range Visible(s) {
		x := px(xs.Apply(float64(site.Position)))
		y := px(ys.Apply(site.ProbabilityCalibrated))

		color, ok := residueColors[site.Residue]
		if !ok {
			color = fallbackColor
		}

		canvas.Line(x, geom.baseline(), x, y, "stroke:#bbb;stroke-width:1")

		radius := 5
		style := "fill:" + color
		if site.KnownPositive {
			style += ";stroke:#222;stroke-width:1.5"
		}
		if s.Highlight != nil && *s.Highlight == site.Position {
			canvas.Circle(x, y, radius+4, "fill:none;stroke:"+color+";stroke-width:2")
			radius += 1
		}
		canvas.Circle(x, y, radius, style)
	}

	drawSequenceStrip(canvas, s, geom, xs)
	return nil
}

func drawAxes(canvas *svg.SVG, s State, geom Geometry, xs Scale) {
	base := geom.baseline()
	left := geom.MarginLeft
	right := geom.Width - geom.MarginRight

	canvas.Line(left, base, right, base, "stroke:#333;stroke-width:1")
	canvas.Line(left, base, left, geom.MarginTop, "stroke:#333;stroke-width:1")

	dmin, dmax := Domain(s)
	canvas.Text(
		left, base+18, fmt.Sprintf("%d", int(math.Round(dmin))),
		"text-anchor:start;font-family:sans-serif;font-size:11px;fill:#333",
	)
	canvas.Text(
		right, base+18, fmt.Sprintf("%d", int(math.Round(dmax))),
		"text-anchor:end;font-family:sans-serif;font-size:11px;fill:#333",
	)
	canvas.Text(
		(left+right)/2, geom.Height-12, "position",
		"text-anchor:middle;font-family:sans-serif;font-size:12px;fill:#333",
	)

	canvas.TranslateRotate(14, (base+geom.MarginTop)/2, -90)
	canvas.Text(0, 0, "calibrated probability",
		"text-anchor:middle;font-family:sans-serif;font-size:12px;fill:#333")
	canvas.Gend()
}

// drawSequenceStrip letters the residues along the axis. Only drawn when
// the visible span is narrow; letters overlap beyond that.
func drawSequenceStrip(canvas *svg.SVG, s State, geom Geometry, xs Scale) {
	dmin, dmax := Domain(s)
	if sequenceStripMaxSpan < dmax-dmin {
		return
	}

	first := int(math.Ceil(dmin))
	last := int(math.Floor(dmax))
	if first < 1 {
		first = 1
	}
	if len(s.Sequence) < last {
		last = len(s.Sequence)
	}

	y := geom.baseline() + 34
	for position := first; position <= last; position++ {
		letter := string(s.Sequence[position-1])
		style := "text-anchor:middle;font-family:monospace;font-size:10px;fill:#666"
		if color, ok := residueColors[kdb.Residue(letter)]; ok {
			style = "text-anchor:middle;font-family:monospace;font-size:10px;font-weight:bold;fill:" + color
		}
		canvas.Text(px(xs.Apply(float64(position))), y, letter, style)
	}
}

func px(v float64) int {
	return int(math.Round(v))
}
