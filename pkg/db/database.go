package db

import "context"

// KinoDatabase is the interface to the phosphorylation-site store.
type KinoDatabase interface {
	Proteins() ProteinInterface

	// release all resources took by this database.
	Close() error
}

// ProteinInterface is the read-only query surface over the site store.
//
// All lookups take an identifier, which may be either a UniProt accession
// or a gene symbol. Identifiers which match nothing cause ErrMissing,
// except Search, which returns an empty slice.
type ProteinInterface interface {
	// Get returns the protein matching identifier.
	//
	// If no protein matches, it returns ErrMissing.
	Get(ctx context.Context, identifier string) (Protein, error)

	// Sites returns all phosphorylation sites of the protein matching
	// identifier, ordered by position, each carrying its kinase score set.
	//
	// If no protein matches, it returns ErrMissing.
	Sites(ctx context.Context, identifier string) ([]Site, error)

	// Search finds proteins whose accession or gene symbol starts with
	// query (case-insensitive), at most limit of them, ordered by
	// gene symbol.
	//
	// No match is not an error; it returns an empty slice.
	Search(ctx context.Context, query string, limit int) ([]Protein, error)

	// KinaseProfile returns, for the protein matching identifier, every
	// site where the named kinase has a positive score, ordered by score
	// descending.
	//
	// If no protein matches, it returns ErrMissing.
	KinaseProfile(ctx context.Context, identifier string, kinase string) ([]KinaseSite, error)

	// Stats returns store-wide aggregates.
	Stats(ctx context.Context) (Stats, error)
}
