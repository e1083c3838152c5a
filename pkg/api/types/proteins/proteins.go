package proteins

import (
	"math"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
)

// Summary is one autocomplete match.
type Summary struct {
	Uniprot    string `json:"uniprot"`
	GeneSymbol string `json:"gene_symbol"`

	// human-readable label, like "TP53 (P04637)".
	Display string `json:"display"`

	// value to navigate with when the entry is picked.
	Value string `json:"value"`
}

func ComposeSummary(p kdb.Protein) Summary {
	display := p.Uniprot
	if p.GeneSymbol != "" {
		display = p.GeneSymbol + " (" + p.Uniprot + ")"
	}
	return Summary{
		Uniprot:    p.Uniprot,
		GeneSymbol: p.GeneSymbol,
		Display:    display,
		Value:      p.Uniprot,
	}
}

// Protein is the header block of a protein detail response.
type Protein struct {
	Uniprot     string `json:"uniprot"`
	GeneSymbol  string `json:"gene_symbol"`
	Organism    string `json:"organism"`
	ProteinName string `json:"protein_name,omitempty"`
}

// Site is one phosphorylation site of a detail response.
type Site struct {
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

// ComposeSite converts a stored site to its wire form.
//
// Probabilities are rounded to 4 decimals: the extra digits are model
// noise and only bloat the payload.
func ComposeSite(s kdb.Site) Site {
	return Site{
		SiteID:                s.SiteID,
		Position:              s.Position,
		Residue:               string(s.Residue),
		ProbabilityRaw:        round4(s.ProbabilityRaw),
		ProbabilityCalibrated: round4(s.ProbabilityCalibrated),
		KnownPositive:         s.KnownPositive,
		FDR05:                 s.FDR05,
		FDR02:                 s.FDR02,
		FDR01:                 s.FDR01,
		KinaseScores:          s.KinaseScores,
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// Statistics summarizes the sites of one protein.
type Statistics struct {
	TotalSites            int `json:"total_sites"`
	HighConfidenceSites   int `json:"high_confidence_sites"`
	MediumConfidenceSites int `json:"medium_confidence_sites"`
	KnownPositiveSites    int `json:"known_positive_sites"`
	MaxPosition           int `json:"max_position"`
}

func ComposeStatistics(sites []kdb.Site) Statistics {
	stats := Statistics{TotalSites: len(sites)}
	for _, s := range sites {
		if s.FDR01 {
			stats.HighConfidenceSites += 1
		}
		if s.FDR02 {
			stats.MediumConfidenceSites += 1
		}
		if s.KnownPositive {
			stats.KnownPositiveSites += 1
		}
		if stats.MaxPosition < s.Position {
			stats.MaxPosition = s.Position
		}
	}
	return stats
}

// Detail is the full payload backing the visualization of one protein.
type Detail struct {
	Protein    Protein    `json:"protein"`
	Sites      []Site     `json:"sites"`
	Statistics Statistics `json:"statistics"`
}

// Sequence is the payload of the sequence endpoint.
type Sequence struct {
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`
}

// Motif is the sequence window around one site.
type Motif struct {
	Motif    string `json:"motif"`
	Position int    `json:"position"`
	Residue  string `json:"residue,omitempty"`

	MotifLength int `json:"motif_length"`

	// index of the site within Motif. 7 for a full window; less when the
	// window was truncated at the N-terminus.
	CenterIndex int `json:"center_index"`
}

// KinaseSite is one entry of a kinase profile response.
type KinaseSite struct {
	Position         int     `json:"position"`
	Site             string  `json:"site"`
	Residue          string  `json:"residue"`
	Score            float64 `json:"score"`
	Phosphocompetent bool    `json:"phosphocompetent"`
}

func ComposeKinaseSite(s kdb.KinaseSite) KinaseSite {
	return KinaseSite{
		Position:         s.Position,
		Site:             s.SiteID,
		Residue:          string(s.Residue),
		Score:            s.Score,
		Phosphocompetent: s.Phosphocompetent,
	}
}

// Stats is the payload of the store-wide statistics endpoint.
type Stats struct {
	TotalProteins int      `json:"total_proteins"`
	TotalSites    int      `json:"total_sites"`
	KnownSites    int      `json:"known_sites"`
	STKinases     []string `json:"st_kinases"`
	YKinases      []string `json:"y_kinases"`
}

func ComposeStats(s kdb.Stats) Stats {
	return Stats{
		TotalProteins: s.TotalProteins,
		TotalSites:    s.TotalSites,
		KnownSites:    s.KnownSites,
		STKinases:     s.STKinases,
		YKinases:      s.YKinases,
	}
}
