package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apierr "github.com/kinoplex/kinoplex/pkg/api/types/errors"
	apiproteins "github.com/kinoplex/kinoplex/pkg/api/types/proteins"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/uniprot"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

// motif window: kinase recognition extends about 7 residues each way.
const motifWindow = 7

// GetProteinHandler returns everything the visualization needs for one
// protein: header, site list with kinase score sets, and statistics.
//
// UniProt is consulted for the organism, protein name and sequence; when
// that fails the response degrades (stored residue classes, organism
// "Unknown") rather than failing the page.
func GetProteinHandler(dbProtein kdb.ProteinInterface, uni uniprot.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		identifier := c.Param("identifier")

		sites, err := dbProtein.Sites(ctx, identifier)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("protein not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		protein := apiproteins.Protein{
			Uniprot:    sites[0].Uniprot,
			GeneSymbol: sites[0].GeneSymbol,
			Organism:   "Unknown",
		}

		if info, err := uni.Get(ctx, protein.Uniprot); err == nil {
			protein.Organism = info.Organism
			protein.ProteinName = info.ProteinName
			correctResidues(sites, info.Sequence)
		} else {
			c.Logger().Warnf("uniprot data unavailable for %s: %s", protein.Uniprot, err)
		}

		return c.JSON(http.StatusOK, apiproteins.Detail{
			Protein:    protein,
			Sites:      slices.Map(sites, apiproteins.ComposeSite),
			Statistics: apiproteins.ComposeStatistics(sites),
		})
	}
}

// correctResidues replaces the stored residue class with the actual letter
// from the live sequence. The store cannot tell S from T (both live in the
// S/T specificity table); the sequence can.
func correctResidues(sites []kdb.Site, sequence string) {
	if sequence == "" {
		return
	}
	for nth := range sites {
		position := sites[nth].Position
		if position < 1 || len(sequence) < position {
			continue
		}
		if actual := kdb.Residue(sequence[position-1 : position]); actual.IsPhosphorylatable() {
			sites[nth].Residue = actual
		}
	}
}

// GetSequenceHandler returns the full amino-acid sequence of a protein.
func GetSequenceHandler(dbProtein kdb.ProteinInterface, uni uniprot.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		identifier := c.Param("identifier")

		protein, err := dbProtein.Get(ctx, identifier)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("protein not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		info, err := uni.Get(ctx, protein.Uniprot)
		if err != nil || info.Sequence == "" {
			return apierr.NotFound("could not retrieve sequence")
		}

		return c.JSON(http.StatusOK, apiproteins.Sequence{
			Sequence: info.Sequence,
			Length:   len(info.Sequence),
		})
	}
}

// GetSiteMotifHandler returns the sequence window around one site, for
// display of the kinase-recognition context.
//
// Sites near the termini get a truncated window with CenterIndex telling
// where in it the site sits.
func GetSiteMotifHandler(dbProtein kdb.ProteinInterface, uni uniprot.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		identifier := c.Param("identifier")

		position, err := strconv.Atoi(c.Param("position"))
		if err != nil {
			return apierr.BadRequest("position must be an integer", err)
		}
		if position < 1 {
			return apierr.BadRequest("position must be 1 or greater", nil)
		}

		protein, err := dbProtein.Get(ctx, identifier)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("protein not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		motif, err := uni.Motif(ctx, protein.Uniprot, position, motifWindow)
		if errors.Is(err, uniprot.ErrNotAvailable) {
			return apierr.NotFound("could not retrieve sequence motif")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		// residue is advisory; its absence must not fail the motif.
		residue, _ := uni.ResidueAt(ctx, protein.Uniprot, position)

		return c.JSON(http.StatusOK, apiproteins.Motif{
			Motif:       motif.Motif,
			Position:    position,
			Residue:     residue,
			MotifLength: len(motif.Motif),
			CenterIndex: motif.CenterIndex,
		})
	}
}
