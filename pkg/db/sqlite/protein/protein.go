package protein

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"strings"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

type proteinSqlite struct { // implements kdb.ProteinInterface
	db *sql.DB
}

func New(db *sql.DB) *proteinSqlite {
	return &proteinSqlite{db: db}
}

var _ kdb.ProteinInterface = &proteinSqlite{}

func (p *proteinSqlite) Get(ctx context.Context, identifier string) (kdb.Protein, error) {
	row := p.db.QueryRowContext(
		ctx,
		`
		select distinct "uniprot", "gene_symbol"
		from "phospho_competency"
		where "uniprot" = ? or "gene_symbol" = ?
		limit 1
		`,
		identifier, identifier,
	)

	var uniprot string
	var geneSymbol sql.NullString
	if err := row.Scan(&uniprot, &geneSymbol); err != nil {
		if err == sql.ErrNoRows {
			return kdb.Protein{}, kdb.ErrMissing
		}
		return kdb.Protein{}, err
	}

	return kdb.Protein{Uniprot: uniprot, GeneSymbol: geneSymbol.String}, nil
}

func (p *proteinSqlite) Sites(ctx context.Context, identifier string) ([]kdb.Site, error) {
	rows, err := p.db.QueryContext(
		ctx,
		`
		select
			"uniprot", "gene_symbol", "site", "position",
			"known_positive",
			"predicted_prob_raw", "predicted_prob_calibrated",
			"predicted_calibrated_fdr_05",
			"predicted_calibrated_fdr_02",
			"predicted_calibrated_fdr_01"
		from "phospho_competency"
		where "uniprot" = ? or "gene_symbol" = ?
		order by "position"
		`,
		identifier, identifier,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sites := []kdb.Site{}
	for rows.Next() {
		var (
			uniprot    string
			geneSymbol sql.NullString
			siteId     string
			position   int
			known      sql.NullInt64
			probRaw    sql.NullFloat64
			probCal    sql.NullFloat64
			fdr05      sql.NullInt64
			fdr02      sql.NullInt64
			fdr01      sql.NullInt64
		)
		if err := rows.Scan(
			&uniprot, &geneSymbol, &siteId, &position,
			&known, &probRaw, &probCal, &fdr05, &fdr02, &fdr01,
		); err != nil {
			return nil, err
		}
		sites = append(sites, kdb.Site{
			Uniprot:               uniprot,
			GeneSymbol:            geneSymbol.String,
			SiteID:                siteId,
			Position:              position,
			ProbabilityRaw:        probRaw.Float64,
			ProbabilityCalibrated: probCal.Float64,
			KnownPositive:         known.Int64 != 0,
			FDR05:                 fdr05.Int64 != 0,
			FDR02:                 fdr02.Int64 != 0,
			FDR01:                 fdr01.Int64 != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(sites) == 0 {
		return nil, kdb.ErrMissing
	}
	uniprot := sites[0].Uniprot

	stScores, err := p.kinaseScoresByPosition(ctx, "st_kinase_specificity", uniprot)
	if err != nil {
		return nil, err
	}
	yScores, err := p.kinaseScoresByPosition(ctx, "y_kinase_specificity", uniprot)
	if err != nil {
		return nil, err
	}

	// Sites live in exactly one specificity table; which one tells the
	// residue class. Positions found in neither default to serine with an
	// empty score set (predictions below the scoring threshold).
	for nth := range sites {
		position := sites[nth].Position
		if scores, ok := stScores[position]; ok {
			sites[nth].Residue = kdb.Serine
			sites[nth].KinaseScores = scores
		} else if scores, ok := yScores[position]; ok {
			sites[nth].Residue = kdb.Tyrosine
			sites[nth].KinaseScores = scores
		} else {
			sites[nth].Residue = kdb.Serine
			sites[nth].KinaseScores = map[string]float64{}
		}
	}

	return sites, nil
}

// kinaseScoresByPosition reads a specificity table for one protein and
// decodes the stored JSON blobs.
//
// A blob which does not decode is degraded to an empty score set for that
// position, not an error: one broken record must not take down the protein.
func (p *proteinSqlite) kinaseScoresByPosition(
	ctx context.Context, table string, uniprot string,
) (map[int]map[string]float64, error) {
	rows, err := p.db.QueryContext(
		ctx,
		`select "position", "kinase_data" from "`+table+`" where "uniprot" = ?`,
		uniprot,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := map[int]map[string]float64{}
	for rows.Next() {
		var position int
		var blob string
		if err := rows.Scan(&position, &blob); err != nil {
			return nil, err
		}

		decoded := map[string]float64{}
		if err := json.Unmarshal([]byte(blob), &decoded); err != nil {
			decoded = map[string]float64{}
		}
		scores[position] = decoded
	}
	return scores, rows.Err()
}

func (p *proteinSqlite) Search(ctx context.Context, query string, limit int) ([]kdb.Protein, error) {
	pattern := likeEscape(query) + "%"

	rows, err := p.db.QueryContext(
		ctx,
		`
		select distinct "uniprot", "gene_symbol"
		from "phospho_competency"
		where "uniprot" like ? escape '\' or "gene_symbol" like ? escape '\'
		order by "gene_symbol"
		limit ?
		`,
		pattern, pattern, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []kdb.Protein{}
	for rows.Next() {
		var uniprot string
		var geneSymbol sql.NullString
		if err := rows.Scan(&uniprot, &geneSymbol); err != nil {
			return nil, err
		}
		found = append(found, kdb.Protein{
			Uniprot: uniprot, GeneSymbol: geneSymbol.String,
		})
	}
	return found, rows.Err()
}

// likeEscape neutralizes LIKE wildcards in user input.
func likeEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (p *proteinSqlite) KinaseProfile(
	ctx context.Context, identifier string, kinase string,
) ([]kdb.KinaseSite, error) {
	sites, err := p.Sites(ctx, identifier)
	if err != nil {
		return nil, err
	}

	profile := []kdb.KinaseSite{}
	for _, site := range sites {
		score, ok := site.KinaseScores[kinase]
		if !ok || score <= 0 {
			continue
		}
		profile = append(profile, kdb.KinaseSite{
			Position:         site.Position,
			SiteID:           site.SiteID,
			Residue:          site.Residue,
			Score:            score,
			Phosphocompetent: site.FDR05,
		})
	}

	sort.SliceStable(profile, func(i, j int) bool {
		return profile[i].Score > profile[j].Score
	})
	return profile, nil
}

func (p *proteinSqlite) Stats(ctx context.Context) (kdb.Stats, error) {
	stats := kdb.Stats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`select count(distinct "uniprot") from "phospho_competency"`, &stats.TotalProteins},
		{`select count(*) from "phospho_competency"`, &stats.TotalSites},
		{`select count(*) from "phospho_competency" where "known_positive" = 1`, &stats.KnownSites},
	}
	for _, c := range counts {
		if err := p.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return kdb.Stats{}, err
		}
	}

	var err error
	if stats.STKinases, err = p.kinaseNames(ctx, "st_kinase_specificity"); err != nil {
		return kdb.Stats{}, err
	}
	if stats.YKinases, err = p.kinaseNames(ctx, "y_kinase_specificity"); err != nil {
		return kdb.Stats{}, err
	}

	return stats, nil
}

// kinaseNames lists the kinases of a residue class.
//
// Every row of a specificity table carries the full kinase set of its
// class, so decoding one representative row is enough.
func (p *proteinSqlite) kinaseNames(ctx context.Context, table string) ([]string, error) {
	row := p.db.QueryRowContext(ctx, `select "kinase_data" from "`+table+`" limit 1`)

	var blob string
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return []string{}, nil
		}
		return nil, err
	}

	decoded := map[string]float64{}
	if err := json.Unmarshal([]byte(blob), &decoded); err != nil {
		return []string{}, nil
	}

	names := slices.KeysOf(decoded)
	sort.Strings(names)
	return names, nil
}
