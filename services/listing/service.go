package listing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// CatalogStore is the relational catalog store.
type CatalogStore interface {
	// List returns one page of items and the total matching the same predicate.
	List(ctx context.Context, req models.ListingRequest) ([]models.CatalogItem, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CatalogItem, error)
	Create(ctx context.Context, item *models.CatalogItem) error
	Update(ctx context.Context, id uuid.UUID, patch models.UpdateItemRequest) (*models.CatalogItem, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.CatalogItem, error)
}

// SearchQuery is one call against the search index. PageSize 0 asks for
// counts and facets only.
type SearchQuery struct {
	Query     string
	Filters   models.Filters
	SortBy    models.SortField
	SortOrder models.SortOrder
	Page      int
	PageSize  int
	Facets    []string
}

type SearchResult struct {
	Items     []models.CatalogItem
	TotalHits int64
	Facets    models.FacetDistribution
}

// SearchIndex is the external search/indexing service.
type SearchIndex interface {
	Search(ctx context.Context, q SearchQuery) (*SearchResult, error)
	// FilterableAttributes reads the facetable attributes from the index
	// settings, so new attributes need no code change.
	FilterableAttributes(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, items ...models.CatalogItem) error
	Delete(ctx context.Context, id string) error
}

// FacetCache keeps the global facet distribution for a short TTL.
type FacetCache interface {
	Get(ctx context.Context) (models.FacetDistribution, bool)
	Set(ctx context.Context, dist models.FacetDistribution)
	Invalidate(ctx context.Context)
}

// MediaStore removes uploaded item images.
type MediaStore interface {
	DeleteFolder(ctx context.Context, folderPath string) error
}

// FacetMode selects how per-facet counts relate to the active filters.
type FacetMode string

const (
	// FacetModeIncludeSelf counts every facet with all active filters applied.
	FacetModeIncludeSelf FacetMode = "include-self"
	// FacetModeExcludeSelf counts each facet as if its own filter were not
	// applied, keeping the other filters.
	FacetModeExcludeSelf FacetMode = "exclude-self"
	// FacetModeUnfiltered counts facets ignoring every active filter.
	FacetModeUnfiltered FacetMode = "unfiltered"
)

// ParseFacetMode resolves a configured mode, defaulting to exclude-self.
func ParseFacetMode(raw string) (FacetMode, error) {
	switch FacetMode(raw) {
	case "":
		return FacetModeExcludeSelf, nil
	case FacetModeIncludeSelf, FacetModeExcludeSelf, FacetModeUnfiltered:
		return FacetMode(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown facet mode %q", ErrConfiguration, raw)
	}
}

type Options struct {
	FacetMode FacetMode
	// CallTimeout bounds every store, index and cache call.
	CallTimeout time.Duration
	// MediaFolder builds the media folder of an item; empty disables cleanup.
	MediaFolder func(id uuid.UUID) string
}

// Page is one page of a listing.
type Page struct {
	Items      []models.CatalogItem     `json:"data"`
	Pagination models.Pagination        `json:"pagination"`
	Facets     models.FacetDistribution `json:"facets,omitempty"`
}

// Service answers listing requests and applies admin mutations. It holds no
// mutable state of its own and is safe for concurrent use.
type Service struct {
	store  CatalogStore
	index  SearchIndex
	facets FacetCache
	media  MediaStore
	opts   Options
}

// NewService wires the listing service. index, facets and media may be nil.
func NewService(store CatalogStore, index SearchIndex, facets FacetCache, media MediaStore, opts Options) *Service {
	if opts.FacetMode == "" {
		opts.FacetMode = FacetModeExcludeSelf
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 10 * time.Second
	}
	return &Service{
		store:  store,
		index:  index,
		facets: facets,
		media:  media,
		opts:   opts,
	}
}

func (s *Service) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opts.CallTimeout)
}

// List serves the storefront: free-text or filtered requests go to the
// search index, plain browsing to the relational store.
func (s *Service) List(ctx context.Context, req models.ListingRequest) (*Page, error) {
	if req.NeedsSearchIndex() {
		return s.Search(ctx, req)
	}
	return s.Browse(ctx, req)
}

// Browse is the relational listing path.
func (s *Service) Browse(ctx context.Context, req models.ListingRequest) (*Page, error) {
	if _, ok := req.SortBy.Column(); !ok {
		return nil, fmt.Errorf("%w: sort field %q has no column", ErrConfiguration, req.SortBy)
	}
	for _, f := range req.Filters {
		if _, ok := models.FilterColumn(f.Attribute); !ok {
			return nil, newValidationError("unknown filter attribute %q", f.Attribute)
		}
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	items, total, err := s.store.List(callCtx, req)
	if err != nil {
		return nil, upstream("list catalog items", err)
	}
	if items == nil {
		items = []models.CatalogItem{}
	}

	return &Page{
		Items:      items,
		Pagination: models.NewPagination(req.Page, req.PageSize, total),
	}, nil
}

// Search is the search-index listing path. It fails fast when the index is
// unavailable instead of falling back to the relational store, since the two
// paths rank and filter differently.
func (s *Service) Search(ctx context.Context, req models.ListingRequest) (*Page, error) {
	if s.index == nil {
		return nil, fmt.Errorf("%w: no search index configured", ErrConfiguration)
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	facetAttrs, err := s.index.FilterableAttributes(callCtx)
	if err != nil {
		return nil, upstream("read filterable attributes", err)
	}
	known := make(map[string]struct{}, len(facetAttrs))
	for _, a := range facetAttrs {
		known[a] = struct{}{}
	}
	for _, f := range req.Filters {
		if _, ok := known[f.Attribute]; !ok {
			return nil, newValidationError("attribute %q is not filterable", f.Attribute)
		}
	}

	primary := SearchQuery{
		Query:     req.Query,
		Filters:   req.Filters,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
	if s.opts.FacetMode == FacetModeIncludeSelf {
		primary.Facets = facetAttrs
	}

	var result *SearchResult
	var facetQueries []SearchQuery
	if s.opts.FacetMode != FacetModeIncludeSelf {
		facetQueries = s.facetQueries(req, facetAttrs)
	}
	facetResults := make([]*SearchResult, len(facetQueries))

	g, gctx := errgroup.WithContext(callCtx)
	g.Go(func() error {
		r, err := s.index.Search(gctx, primary)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	for i, q := range facetQueries {
		g.Go(func() error {
			r, err := s.index.Search(gctx, q)
			if err != nil {
				return err
			}
			facetResults[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, upstream("search catalog index", err)
	}

	dist := models.FacetDistribution{}
	if s.opts.FacetMode == FacetModeIncludeSelf {
		mergeFacets(dist, result.Facets, facetAttrs)
	} else {
		for i, r := range facetResults {
			mergeFacets(dist, r.Facets, facetQueries[i].Facets)
		}
	}

	items := result.Items
	if items == nil {
		items = []models.CatalogItem{}
	}
	return &Page{
		Items:      items,
		Pagination: models.NewPagination(req.Page, req.PageSize, result.TotalHits),
		Facets:     dist,
	}, nil
}

// facetQueries builds the count-only queries that produce facet counts for
// the exclude-self and unfiltered modes.
func (s *Service) facetQueries(req models.ListingRequest, facetAttrs []string) []SearchQuery {
	if len(facetAttrs) == 0 {
		return nil
	}
	if s.opts.FacetMode == FacetModeUnfiltered {
		return []SearchQuery{{Query: req.Query, Facets: facetAttrs}}
	}

	var shared []string
	var queries []SearchQuery
	for _, attr := range facetAttrs {
		if req.Filters.Has(attr) {
			queries = append(queries, SearchQuery{
				Query:   req.Query,
				Filters: req.Filters.Without(attr),
				Facets:  []string{attr},
			})
			continue
		}
		shared = append(shared, attr)
	}
	if len(shared) > 0 {
		queries = append(queries, SearchQuery{
			Query:   req.Query,
			Filters: req.Filters,
			Facets:  shared,
		})
	}
	return queries
}

func mergeFacets(dst, src models.FacetDistribution, attrs []string) {
	for _, attr := range attrs {
		counts := src[attr]
		if counts == nil {
			counts = map[string]int64{}
		}
		dst[attr] = counts
	}
}

// FacetDistribution returns the unfiltered facet counts for every filterable
// attribute, served from the short-TTL cache when possible.
func (s *Service) FacetDistribution(ctx context.Context) (models.FacetDistribution, error) {
	if s.index == nil {
		return nil, fmt.Errorf("%w: no search index configured", ErrConfiguration)
	}

	if s.facets != nil {
		if dist, ok := s.facets.Get(ctx); ok {
			return dist, nil
		}
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	attrs, err := s.index.FilterableAttributes(callCtx)
	if err != nil {
		return nil, upstream("read filterable attributes", err)
	}

	dist := models.FacetDistribution{}
	if len(attrs) > 0 {
		r, err := s.index.Search(callCtx, SearchQuery{Facets: attrs})
		if err != nil {
			return nil, upstream("read facet distribution", err)
		}
		mergeFacets(dist, r.Facets, attrs)
	}

	if s.facets != nil {
		s.facets.Set(ctx, dist)
	}
	return dist, nil
}

// parseID validates an identifier before any store access.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}

func storeError(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return upstream(op, err)
}

func logIndexFailure(op string, id uuid.UUID, err error) {
	log.Printf("[listing] search index %s failed for item %s: %v", op, id, err)
}
