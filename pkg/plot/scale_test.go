package plot_test

import (
	"math"
	"testing"

	"github.com/kinoplex/kinoplex/pkg/plot"
)

func TestScale(t *testing.T) {
	testee := plot.Scale{DomainMin: 1, DomainMax: 481, RangeMin: 50, RangeMax: 940}

	t.Run("it maps domain endpoints to range endpoints", func(t *testing.T) {
		if got := testee.Apply(1); got != 50 {
			t.Errorf("unexpected pixel for domain min: %v", got)
		}
		if got := testee.Apply(481); got != 940 {
			t.Errorf("unexpected pixel for domain max: %v", got)
		}
	})

	t.Run("Invert undoes Apply", func(t *testing.T) {
		for _, v := range []float64{1, 129, 308, 473, 481} {
			if got := testee.Invert(testee.Apply(v)); math.Abs(got-v) > 1e-9 {
				t.Errorf("round trip drifted: %v -> %v", v, got)
			}
		}
	})

	t.Run("a zero-span domain degenerates without dividing by zero", func(t *testing.T) {
		flat := plot.Scale{DomainMin: 5, DomainMax: 5, RangeMin: 50, RangeMax: 940}
		if got := flat.Apply(5); got != 50 {
			t.Errorf("unexpected pixel: %v", got)
		}
		zero := plot.Scale{DomainMin: 1, DomainMax: 10, RangeMin: 100, RangeMax: 100}
		if got := zero.Invert(100); got != 1 {
			t.Errorf("unexpected domain value: %v", got)
		}
	})
}

func TestBrushViewport(t *testing.T) {
	t.Run("a pixel brush becomes the position window it covers", func(t *testing.T) {
		s := readyState(fixtureSites(), "")
		geom := plot.DefaultGeometry()

		xs := plot.XScale(s, geom)
		ev := plot.BrushViewport(s, geom, xs.Apply(100), xs.Apply(200))

		if math.Abs(ev.Start-100) > 1e-6 || math.Abs(ev.End-200) > 1e-6 {
			t.Errorf("unexpected window: [%v, %v]", ev.Start, ev.End)
		}
	})

	t.Run("brush, zoom, reset restores the full view", func(t *testing.T) {
		s := readyState(fixtureSites(), "")
		geom := plot.DefaultGeometry()

		xs := plot.XScale(s, geom)
		s = plot.Apply(s, plot.EnterSelection{})
		s = plot.Apply(s, plot.BrushViewport(s, geom, xs.Apply(100), xs.Apply(200)))

		if len(plot.Visible(s)) != 1 {
			t.Fatalf("unexpected zoomed view: %+v", plot.Visible(s))
		}

		s = plot.Apply(s, plot.ResetZoom{})
		if len(plot.Visible(s)) != len(fixtureSites()) {
			t.Errorf("reset did not restore the full view: %+v", plot.Visible(s))
		}
	})

	t.Run("a right-to-left brush still zooms", func(t *testing.T) {
		s := readyState(fixtureSites(), "")
		geom := plot.DefaultGeometry()
		xs := plot.XScale(s, geom)

		s = plot.Apply(s, plot.EnterSelection{})
		s = plot.Apply(s, plot.BrushViewport(s, geom, xs.Apply(330), xs.Apply(300)))

		if s.Viewport == nil {
			t.Fatal("no viewport committed")
		}
		if s.Viewport.End < s.Viewport.Start {
			t.Errorf("unordered viewport: %+v", s.Viewport)
		}
	})
}
