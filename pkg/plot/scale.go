package plot

// Scale is a linear mapping from a data domain to a pixel range.
type Scale struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// Apply maps a domain value to a pixel.
func (s Scale) Apply(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return s.RangeMin
	}
	return s.RangeMin + (v-s.DomainMin)/span*(s.RangeMax-s.RangeMin)
}

// Invert maps a pixel back to a domain value.
func (s Scale) Invert(px float64) float64 {
	span := s.RangeMax - s.RangeMin
	if span == 0 {
		return s.DomainMin
	}
	return s.DomainMin + (px-s.RangeMin)/span*(s.DomainMax-s.DomainMin)
}

// XScale is the position axis of the current view.
func XScale(s State, geom Geometry) Scale {
	min, max := Domain(s)
	return Scale{
		DomainMin: min,
		DomainMax: max,
		RangeMin:  float64(geom.MarginLeft),
		RangeMax:  float64(geom.Width - geom.MarginRight),
	}
}

// BrushViewport turns a pixel-range brush into the SetViewport event it
// commits, inverse-mapping both edges through the current position scale.
func BrushViewport(s State, geom Geometry, pxFrom, pxTo float64) SetViewport {
	xs := XScale(s, geom)
	return SetViewport{
		Start: xs.Invert(pxFrom),
		End:   xs.Invert(pxTo),
	}
}
