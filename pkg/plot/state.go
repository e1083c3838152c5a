// Package plot holds the state of one lollipop-plot view and renders it.
//
// The state is an immutable value: every user interaction is an Event, and
// Apply is a total function (State, Event) -> State. Filtering never
// destroys data; the full site list is retained and Visible recomputes the
// visible subset from scratch on demand.
package plot

import (
	"math"
	"strings"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/utils/pointer"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

type Phase int

const (
	// waiting for the site list and the sequence.
	Loading Phase = iota

	// sites arrived; the view is interactive.
	Ready

	// the site list could not be loaded, or was empty. Terminal.
	Failed
)

// Threshold is an FDR cutoff. Exactly one is always active; "all" is not
// a valid threshold.
type Threshold float64

const (
	FDR05 Threshold = 0.05
	FDR02 Threshold = 0.02
	FDR01 Threshold = 0.01
)

// passes reports whether site clears this threshold.
func (t Threshold) passes(site kdb.Site) bool {
	switch t {
	case FDR01:
		return site.FDR01
	case FDR02:
		return site.FDR02
	default:
		return site.FDR05
	}
}

type ResidueFilter string

const (
	AllResidues   ResidueFilter = "all"
	SerineOnly    ResidueFilter = "S"
	ThreonineOnly ResidueFilter = "T"
	TyrosineOnly  ResidueFilter = "Y"
)

// Viewport is the zoomed position window. Start < End, both finite.
type Viewport struct {
	Start float64
	End   float64
}

// State is everything one plot view knows. Lifetime = one page view;
// never persisted.
type State struct {
	Phase Phase

	// user-visible reason when Phase == Failed.
	Reason string

	// full site list as loaded. Never mutated by filtering.
	Sites []kdb.Site

	// protein sequence; a run of 'X' placeholders when the sequence
	// fetch degraded.
	Sequence string

	FDR       Threshold
	Residue   ResidueFilter
	KnownOnly bool

	// nil = no zoom (full sequence range).
	Viewport *Viewport

	// position of the highlighted site; nil = none. At most one.
	Highlight *int

	// region-selection mode. Mutually exclusive with a committed zoom:
	// committing a viewport clears it.
	Selecting bool
}

// NewState returns the initial (loading) state.
func NewState() State {
	return State{
		Phase:   Loading,
		FDR:     FDR05,
		Residue: AllResidues,
	}
}

type Event interface {
	isPlotEvent()
}

// SitesLoaded carries the fetched site list and sequence.
//
// An empty Sequence is allowed: the sequence fetch degrades to a
// placeholder, it does not block readiness. An empty site list does not:
// it fails the view.
type SitesLoaded struct {
	Sites    []kdb.Site
	Sequence string
}

type LoadFailed struct {
	Reason string
}

type SetFDR struct {
	Threshold Threshold
}

type SetResidue struct {
	Residue ResidueFilter
}

type SetKnownOnly struct {
	KnownOnly bool
}

// EnterSelection arms region selection; the next SetViewport commits.
type EnterSelection struct{}

// SetViewport commits a zoom window, in domain (position) units. Use
// BrushViewport to build one from a pixel range.
type SetViewport struct {
	Start float64
	End   float64
}

type ResetZoom struct{}

type SelectSite struct {
	Position int
}

type ClearSelection struct{}

func (SitesLoaded) isPlotEvent()    {}
func (LoadFailed) isPlotEvent()     {}
func (SetFDR) isPlotEvent()         {}
func (SetResidue) isPlotEvent()     {}
func (SetKnownOnly) isPlotEvent()   {}
func (EnterSelection) isPlotEvent() {}
func (SetViewport) isPlotEvent()    {}
func (ResetZoom) isPlotEvent()      {}
func (SelectSite) isPlotEvent()     {}
func (ClearSelection) isPlotEvent() {}

// Apply computes the next state. It is total: an event which is not valid
// in the current phase leaves the state unchanged.
func Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case SitesLoaded:
		if s.Phase != Loading {
			return s
		}
		if len(e.Sites) == 0 {
			s.Phase = Failed
			s.Reason = "no phosphorylation sites found"
			return s
		}
		s.Phase = Ready
		s.Sites = e.Sites
		s.Sequence = e.Sequence
		if s.Sequence == "" {
			s.Sequence = strings.Repeat("X", maxPosition(e.Sites))
		}
		return s

	case LoadFailed:
		if s.Phase != Loading {
			return s
		}
		s.Phase = Failed
		s.Reason = e.Reason
		return s
	}

	if s.Phase != Ready {
		return s
	}

	switch e := ev.(type) {
	case SetFDR:
		switch e.Threshold {
		case FDR05, FDR02, FDR01:
			s.FDR = e.Threshold
		}
	case SetResidue:
		switch e.Residue {
		case AllResidues, SerineOnly, ThreonineOnly, TyrosineOnly:
			s.Residue = e.Residue
		}
	case SetKnownOnly:
		s.KnownOnly = e.KnownOnly
	case EnterSelection:
		s.Selecting = true
	case SetViewport:
		// selection mode is the precondition, and committing clears it.
		if !s.Selecting {
			return s
		}
		start, end := e.Start, e.End
		if end < start {
			start, end = end, start
		}
		if !isFiniteWindow(start, end) {
			return s
		}
		s.Viewport = pointer.Ref(Viewport{Start: start, End: end})
		s.Selecting = false
	case ResetZoom:
		s.Viewport = nil
		s.Selecting = false
	case SelectSite:
		if _, found := slices.First(s.Sites, func(site kdb.Site) bool {
			return site.Position == e.Position
		}); found {
			s.Highlight = pointer.Ref(e.Position)
		}
	case ClearSelection:
		s.Highlight = nil
	}
	return s
}

func isFiniteWindow(start, end float64) bool {
	if math.IsNaN(start) || math.IsInf(start, 0) ||
		math.IsNaN(end) || math.IsInf(end, 0) {
		return false
	}
	return start < end
}

// Visible recomputes the filtered site list from the full one.
//
// Filters apply in order: FDR threshold, residue type, known-only,
// viewport. Each later filter is the identity when inactive. Pure and
// idempotent by construction.
func Visible(s State) []kdb.Site {
	if s.Phase != Ready {
		return []kdb.Site{}
	}

	visible := []kdb.Site{}
	for _, site := range s.Sites {
		if !s.FDR.passes(site) {
			continue
		}
		if s.Residue != AllResidues && site.Residue != kdb.Residue(s.Residue) {
			continue
		}
		if s.KnownOnly && !site.KnownPositive {
			continue
		}
		if v := s.Viewport; v != nil {
			p := float64(site.Position)
			if p < v.Start || v.End < p {
				continue
			}
		}
		visible = append(visible, site)
	}
	return visible
}

// Domain returns the plotted position range: the viewport when zoomed,
// else [1, len(sequence)].
func Domain(s State) (float64, float64) {
	if s.Viewport != nil {
		return s.Viewport.Start, s.Viewport.End
	}
	end := len(s.Sequence)
	if end < 1 {
		end = 1
	}
	return 1, float64(end)
}

func maxPosition(sites []kdb.Site) int {
	max := 0
	for _, s := range sites {
		if max < s.Position {
			max = s.Position
		}
	}
	return max
}
