package plot

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

// Exports are pure transformations of the currently visible data; none of
// them mutates the view state.

// ExportedSite is the JSON form of one site in an export document.
type ExportedSite struct {
	SiteID                string             `json:"site_id"`
	Position              int                `json:"position"`
	Residue               string             `json:"residue"`
	ProbabilityRaw        float64            `json:"probability_raw"`
	ProbabilityCalibrated float64            `json:"probability_calibrated"`
	KnownPositive         bool               `json:"known_positive"`
	FDR05                 bool               `json:"fdr_05"`
	FDR02                 bool               `json:"fdr_02"`
	FDR01                 bool               `json:"fdr_01"`
	KinaseScores          map[string]float64 `json:"kinase_scores"`
}

// ExportDocument is the envelope of a JSON export. GeneratedAt is the only
// field excluded from round-trip comparisons.
type ExportDocument struct {
	Uniprot     string         `json:"uniprot"`
	GeneratedAt string         `json:"generated_at"`
	Sites       []ExportedSite `json:"sites"`
}

func exportedSite(s kdb.Site) ExportedSite {
	return ExportedSite{
		SiteID:                s.SiteID,
		Position:              s.Position,
		Residue:               string(s.Residue),
		ProbabilityRaw:        s.ProbabilityRaw,
		ProbabilityCalibrated: s.ProbabilityCalibrated,
		KnownPositive:         s.KnownPositive,
		FDR05:                 s.FDR05,
		FDR02:                 s.FDR02,
		FDR01:                 s.FDR01,
		KinaseScores:          s.KinaseScores,
	}
}

// ExportJSON serializes the visible sites.
func ExportJSON(s State, now time.Time) ([]byte, error) {
	visible := Visible(s)

	uniprot := ""
	if 0 < len(visible) {
		uniprot = visible[0].Uniprot
	}

	doc := ExportDocument{
		Uniprot:     uniprot,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Sites:       slices.Map(visible, exportedSite),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ParseJSONExport reads a document written by ExportJSON back.
func ParseJSONExport(data []byte) (ExportDocument, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ExportDocument{}, err
	}
	return doc, nil
}

// ExportCSV serializes the visible sites, one row per site. Kinase scores
// are omitted; a row of several hundred score columns is not a useful
// spreadsheet.
func ExportCSV(s State) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"site_id", "position", "residue",
		"probability_raw", "probability_calibrated",
		"known_positive", "fdr_05", "fdr_02", "fdr_01",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, site := range Visible(s) {
		record := []string{
			site.SiteID,
			strconv.Itoa(site.Position),
			string(site.Residue),
			strconv.FormatFloat(site.ProbabilityRaw, 'f', -1, 64),
			strconv.FormatFloat(site.ProbabilityCalibrated, 'f', -1, 64),
			strconv.FormatBool(site.KnownPositive),
			strconv.FormatBool(site.FDR05),
			strconv.FormatBool(site.FDR02),
			strconv.FormatBool(site.FDR01),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportSVG renders the plot as standalone SVG bytes.
func ExportSVG(s State, geom Geometry) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := RenderSVG(buf, s, geom); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ErrRenderBlocked means no rasterizer could produce PNG bytes. This is an
// expected outcome, not an exception: callers fall back to SVG.
var ErrRenderBlocked = errors.New("raster rendering blocked")

// Rasterizer produces raster image bytes for a plot state.
type Rasterizer interface {
	Render(s State, geom Geometry) ([]byte, error)
}

// ExportPNG rasterizes the plot. A nil or failing rasterizer yields an
// error wrapping ErrRenderBlocked.
func ExportPNG(s State, geom Geometry, r Rasterizer) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("no rasterizer available: %w", ErrRenderBlocked)
	}
	data, err := r.Render(s, geom)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrRenderBlocked)
	}
	return data, nil
}

// ExportImage is the two-step export pipeline: PNG when rasterization
// works, deterministic SVG fallback when it is blocked. The content type
// of the returned bytes tells which happened.
func ExportImage(s State, geom Geometry, r Rasterizer) (data []byte, contentType string, err error) {
	if data, err := ExportPNG(s, geom, r); err == nil {
		return data, "image/png", nil
	} else if !errors.Is(err, ErrRenderBlocked) {
		return nil, "", err
	}

	data, err = ExportSVG(s, geom)
	if err != nil {
		return nil, "", err
	}
	return data, "image/svg+xml", nil
}
