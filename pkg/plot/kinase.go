package plot

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
)

// ExportKinaseProfileSVG renders the profile of one kinase across a
// protein: position on x, specificity percentile (0-100) on y. seqLen
// bounds the axis; when 0 the maximum profiled position is used.
func ExportKinaseProfileSVG(kinase string, profile []kdb.KinaseSite, seqLen int, geom Geometry) ([]byte, error) {
	if seqLen < 1 {
		for _, entry := range profile {
			if seqLen < entry.Position {
				seqLen = entry.Position
			}
		}
		if seqLen < 1 {
			seqLen = 1
		}
	}

	buf := &bytes.Buffer{}
	canvas := svg.New(buf)
	canvas.Start(geom.Width, geom.Height)

	base := geom.baseline()
	left := geom.MarginLeft
	right := geom.Width - geom.MarginRight

	canvas.Line(left, base, right, base, "stroke:#333;stroke-width:1")
	canvas.Line(left, base, left, geom.MarginTop, "stroke:#333;stroke-width:1")
	canvas.Text(
		(left+right)/2, geom.MarginTop-4,
		fmt.Sprintf("%s specificity profile", kinase),
		"text-anchor:middle;font-family:sans-serif;font-size:13px;fill:#333",
	)

	xs := Scale{
		DomainMin: 1, DomainMax: float64(seqLen),
		RangeMin: float64(left), RangeMax: float64(right),
	}
	ys := Scale{
		DomainMin: 0, DomainMax: 100,
		RangeMin: float64(base), RangeMax: float64(geom.MarginTop),
	}

	for _, entry := range profile {
		x := px(xs.Apply(float64(entry.Position)))
		y := px(ys.Apply(entry.Score))

		color, ok := residueColors[entry.Residue]
		if !ok {
			color = fallbackColor
		}
		style := "fill:" + color
		if !entry.Phosphocompetent {
			style += ";fill-opacity:0.4"
		}

		canvas.Line(x, base, x, y, "stroke:#bbb;stroke-width:1")
		canvas.Circle(x, y, 4, style)
	}

	canvas.End()
	return buf.Bytes(), nil
}
