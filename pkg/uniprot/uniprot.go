package uniprot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/kinoplex/kinoplex/pkg/utils/retry"
)

// DefaultBaseURL is the UniProtKB REST API root.
const DefaultBaseURL = "https://rest.uniprot.org/uniprotkb"

// ErrNotAvailable means UniProt could not provide the entry: unknown
// accession, a non-retriable response, or a transient failure which
// survived the retry. Callers degrade, they do not fail the page.
var ErrNotAvailable = errors.New("protein information not available")

// Info is the subset of an UniProtKB entry this system uses.
type Info struct {
	Accession   string
	GeneName    string
	ProteinName string
	Organism    string
	Function    string
	Sequence    string
	Length      int
}

// Motif is a sequence window centered on a phosphorylation site.
type Motif struct {
	Motif string

	// index of the site within Motif. window for a full-size window,
	// less near the N-terminus.
	CenterIndex int
}

// Service is what request handlers need from the UniProt client.
type Service interface {
	// Get returns entry data for accession, from cache when possible.
	Get(ctx context.Context, accession string) (Info, error)

	// Motif extracts the window of 2*window+1 residues around position
	// (1-based), truncated at the sequence boundaries.
	Motif(ctx context.Context, accession string, position int, window int) (Motif, error)

	// ResidueAt returns the single-letter code at position (1-based).
	ResidueAt(ctx context.Context, accession string, position int) (string, error)
}

type Client struct { // implements Service
	baseURL string
	client  *http.Client

	// backoff factory; each fetch gets a fresh retry budget.
	backoff func() retry.Backoff

	mu    sync.Mutex
	cache map[string]Info
}

type Option func(*Client) *Client

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) *Client {
		c.client = hc
		return c
	}
}

func WithBackoff(b func() retry.Backoff) Option {
	return func(c *Client) *Client {
		c.backoff = b
		return c
	}
}

func New(baseURL string, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		backoff: func() retry.Backoff {
			// one retry on transient failure, then give up.
			return retry.Limit(1, retry.Static(500*time.Millisecond))
		},
		cache: map[string]Info{},
	}
	for _, opt := range options {
		c = opt(c)
	}
	return c
}

var _ Service = &Client{}

// Get returns the entry for accession.
//
// Successful responses are cached for the process lifetime, keyed by
// accession. The key space is the proteome, so the cache is unbounded and
// never invalidated; a redundant concurrent fetch writes an equal value.
func (c *Client) Get(ctx context.Context, accession string) (Info, error) {
	c.mu.Lock()
	if info, ok := c.cache[accession]; ok {
		c.mu.Unlock()
		return info, nil
	}
	c.mu.Unlock()

	var info Info
	err := retry.Blocking(ctx, c.backoff(), func() error {
		i, err := c.fetch(ctx, accession)
		if err != nil {
			return err
		}
		info = i
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotAvailable) || errors.Is(err, retry.ErrRetry) {
			return Info{}, ErrNotAvailable
		}
		return Info{}, err
	}

	c.mu.Lock()
	c.cache[accession] = info
	c.mu.Unlock()

	return info, nil
}

func (c *Client) fetch(ctx context.Context, accession string) (Info, error) {
	url := c.baseURL + "/" + accession + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Info{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("get %s: %s: %w", url, err, retry.ErrRetry)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// pass
	case 500 <= resp.StatusCode:
		return Info{}, fmt.Errorf("get %s: status %d: %w", url, resp.StatusCode, retry.ErrRetry)
	default:
		// 404 and other client errors are final.
		return Info{}, fmt.Errorf("get %s: status %d: %w", url, resp.StatusCode, ErrNotAvailable)
	}

	var e entry
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return Info{}, fmt.Errorf("decode %s: %s: %w", url, err, ErrNotAvailable)
	}

	return e.info(), nil
}

// entry mirrors the parts of the UniProtKB JSON format this client reads.
type entry struct {
	PrimaryAccession string `json:"primaryAccession"`
	Genes            []struct {
		GeneName struct {
			Value string `json:"value"`
		} `json:"geneName"`
	} `json:"genes"`
	ProteinDescription struct {
		RecommendedName struct {
			FullName struct {
				Value string `json:"value"`
			} `json:"fullName"`
		} `json:"recommendedName"`
	} `json:"proteinDescription"`
	Organism struct {
		ScientificName string `json:"scientificName"`
		CommonName     string `json:"commonName"`
	} `json:"organism"`
	Comments []struct {
		CommentType string `json:"commentType"`
		Texts       []struct {
			Value string `json:"value"`
		} `json:"texts"`
	} `json:"comments"`
	Sequence struct {
		Value  string `json:"value"`
		Length int    `json:"length"`
	} `json:"sequence"`
}

func (e entry) info() Info {
	info := Info{
		Accession:   e.PrimaryAccession,
		GeneName:    "N/A",
		ProteinName: "Unknown protein",
		Organism:    "Unknown",
		Function:    "No functional annotation available.",
		Sequence:    e.Sequence.Value,
		Length:      e.Sequence.Length,
	}
	if info.Length == 0 {
		info.Length = len(info.Sequence)
	}

	if 0 < len(e.Genes) && e.Genes[0].GeneName.Value != "" {
		info.GeneName = e.Genes[0].GeneName.Value
	}
	if v := e.ProteinDescription.RecommendedName.FullName.Value; v != "" {
		info.ProteinName = v
	}
	if v := e.Organism.ScientificName; v != "" {
		info.Organism = v
		if e.Organism.CommonName != "" {
			info.Organism = fmt.Sprintf("%s (%s)", v, e.Organism.CommonName)
		}
	}
	for _, comment := range e.Comments {
		if comment.CommentType != "FUNCTION" || len(comment.Texts) == 0 {
			continue
		}
		info.Function = comment.Texts[0].Value
		break
	}

	return info
}

func (c *Client) Motif(ctx context.Context, accession string, position int, window int) (Motif, error) {
	info, err := c.Get(ctx, accession)
	if err != nil {
		return Motif{}, err
	}
	return ExtractMotif(info.Sequence, position, window)
}

// ExtractMotif cuts the window of 2*window+1 residues around position
// (1-based) out of sequence, truncating at the boundaries.
func ExtractMotif(sequence string, position int, window int) (Motif, error) {
	if position < 1 || len(sequence) < position {
		return Motif{}, fmt.Errorf("position %d out of sequence: %w", position, ErrNotAvailable)
	}

	center := position - 1
	start := center - window
	if start < 0 {
		start = 0
	}
	end := center + window + 1
	if len(sequence) < end {
		end = len(sequence)
	}

	return Motif{
		Motif:       sequence[start:end],
		CenterIndex: center - start,
	}, nil
}

func (c *Client) ResidueAt(ctx context.Context, accession string, position int) (string, error) {
	info, err := c.Get(ctx, accession)
	if err != nil {
		return "", err
	}
	if position < 1 || len(info.Sequence) < position {
		return "", fmt.Errorf("position %d out of sequence: %w", position, ErrNotAvailable)
	}
	return string(info.Sequence[position-1]), nil
}
