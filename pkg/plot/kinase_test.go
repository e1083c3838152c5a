package plot_test

import (
	"strings"
	"testing"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/plot"
	"github.com/kinoplex/kinoplex/pkg/utils/try"
)

func TestExportKinaseProfileSVG(t *testing.T) {
	profile := []kdb.KinaseSite{
		{Position: 326, SiteID: "P31749_326", Residue: kdb.Tyrosine, Score: 97.0},
		{Position: 308, SiteID: "P31749_308", Residue: kdb.Threonine, Score: 85.5, Phosphocompetent: true},
	}

	t.Run("it titles the plot with the kinase name", func(t *testing.T) {
		data := try.To(plot.ExportKinaseProfileSVG("CDK2", profile, 480, plot.DefaultGeometry())).OrFatal(t)

		rendered := string(data)
		if !strings.Contains(rendered, "CDK2 specificity profile") {
			t.Error("title missing")
		}
		if !strings.Contains(rendered, "circle") {
			t.Error("no profile points drawn")
		}
	})

	t.Run("non-phosphocompetent points are dimmed", func(t *testing.T) {
		data := try.To(plot.ExportKinaseProfileSVG("CDK2", profile, 480, plot.DefaultGeometry())).OrFatal(t)
		if !strings.Contains(string(data), "fill-opacity:0.4") {
			t.Error("dimming style missing")
		}
	})

	t.Run("a zero sequence length falls back to the profiled span", func(t *testing.T) {
		data := try.To(plot.ExportKinaseProfileSVG("CDK2", profile, 0, plot.DefaultGeometry())).OrFatal(t)
		if !strings.Contains(string(data), "<svg") {
			t.Error("not an SVG document")
		}
	})

	t.Run("an empty profile still renders the frame", func(t *testing.T) {
		data := try.To(plot.ExportKinaseProfileSVG("CDK2", nil, 0, plot.DefaultGeometry())).OrFatal(t)
		if !strings.Contains(string(data), "<svg") {
			t.Error("not an SVG document")
		}
	})
}
