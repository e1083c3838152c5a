package db

import "errors"

// ErrMissing means "record not found for the given identifier".
var ErrMissing = errors.New("no such record")

// Residue is a single-letter phosphorylatable amino acid code.
type Residue string

const (
	Serine    Residue = "S"
	Threonine Residue = "T"
	Tyrosine  Residue = "Y"
)

// IsPhosphorylatable reports whether r is one of S, T or Y.
func (r Residue) IsPhosphorylatable() bool {
	switch r {
	case Serine, Threonine, Tyrosine:
		return true
	}
	return false
}

// Protein identifies a protein held in the store.
type Protein struct {
	// UniProt accession, like "P04637".
	Uniprot string

	// gene symbol, like "TP53". May be empty.
	GeneSymbol string
}

// Site is a predicted or known phosphorylation site of a protein.
//
// A site is identified by (Uniprot, Position).
type Site struct {
	Uniprot    string
	GeneSymbol string

	// site label as stored, like "P04637_15".
	SiteID string

	// 1-based position in the protein sequence.
	Position int

	// residue class of the site. Derived from which specificity table
	// holds the position: S/T table sites default to Serine, Y table
	// sites are Tyrosine. Callers holding the live sequence may correct
	// Serine to Threonine.
	Residue Residue

	// model output before calibration, in [0, 1].
	ProbabilityRaw float64

	// calibrated probability, in [0, 1]. The FDR flags below are derived
	// from this value.
	ProbabilityCalibrated float64

	// experimentally validated phosphosite.
	KnownPositive bool

	// FDR threshold flags. Monotonic: FDR01 implies FDR02 implies FDR05.
	FDR05 bool
	FDR02 bool
	FDR01 bool

	// kinase name -> specificity percentile in [0, 100].
	// Populated from exactly one residue class (S/T or Y), never both.
	// Empty when the stored blob was absent or unreadable.
	KinaseScores map[string]float64
}

// KinaseSite is one entry of a single kinase's profile across a protein.
type KinaseSite struct {
	Position int
	SiteID   string
	Residue  Residue

	// specificity percentile of the kinase at this site, in (0, 100].
	Score float64

	// the site passes the FDR-5% competency threshold.
	Phosphocompetent bool
}

// Stats are store-wide aggregates.
type Stats struct {
	TotalProteins int
	TotalSites    int
	KnownSites    int

	// kinase names known per residue class, sorted.
	STKinases []string
	YKinases  []string
}
