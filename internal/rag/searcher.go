package rag

import (
	"context"
	"log/slog"

	"github.com/capsul1912/chunker-search-opt/internal/types"
)

// FusionMode selects where reciprocal rank fusion runs.
type FusionMode string

const (
	// FusionClient fetches both arms and fuses locally. The default.
	FusionClient FusionMode = "client"
	// FusionServer delegates fusion to the index's native fused query.
	FusionServer FusionMode = "server"
)

// SearcherOptions tunes retrieval fusion.
type SearcherOptions struct {
	RRFK         int
	FusionMode   FusionMode
	DefaultLimit int
}

func (o SearcherOptions) withDefaults() SearcherOptions {
	if o.RRFK <= 0 {
		o.RRFK = DefaultRRFK
	}
	if o.FusionMode == "" {
		o.FusionMode = FusionClient
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = 5
	}
	return o
}

// Searcher answers queries against the index, using hybrid dense+sparse
// retrieval when the collection supports it and degrading to dense-only
// ranking otherwise.
type Searcher struct {
	index    VectorIndex
	embedder Embedder
	opts     SearcherOptions
}

// NewSearcher creates a retrieval searcher over the given collaborators.
func NewSearcher(index VectorIndex, embedder Embedder, opts SearcherOptions) *Searcher {
	return &Searcher{index: index, embedder: embedder, opts: opts.withDefaults()}
}

// Search returns up to limit chunks ranked by relevance to query, together
// with the retrieval method that actually served the request.
//
// A failed query embedding is fatal for the query (method "failed"); an
// index failure yields empty results with method "error". A failed sparse
// arm degrades to dense-only ranking rather than returning a partial
// hybrid result.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]types.ScoredChunk, types.SearchMethod) {
	if limit <= 0 {
		limit = s.opts.DefaultLimit
	}

	dense, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil || len(dense) == 0 {
		slog.Error("query embedding failed", "error", err)
		return []types.ScoredChunk{}, types.SearchFailed
	}

	if s.index.SupportsSparse(ctx) {
		if results, ok := s.hybridSearch(ctx, query, dense, limit); ok {
			return results, types.SearchHybrid
		}
		slog.Warn("hybrid search failed, falling back to dense-only")
	}

	results, err := s.index.QueryDense(ctx, dense, uint64(limit))
	if err != nil {
		slog.Error("dense search failed", "error", err)
		return []types.ScoredChunk{}, types.SearchError
	}
	return results, types.SearchDenseOnly
}

func (s *Searcher) hybridSearch(ctx context.Context, query string, dense []float32, limit int) ([]types.ScoredChunk, bool) {
	sparse := EncodeSparse(query)
	if len(sparse.Indices) == 0 {
		return nil, false
	}

	prefetch := limit * 3
	if limit+10 > prefetch {
		prefetch = limit + 10
	}

	if s.opts.FusionMode == FusionServer {
		results, err := s.index.QueryFused(ctx, dense, sparse, uint64(prefetch), uint64(limit))
		if err != nil {
			slog.Warn("fused query failed", "error", err)
			return nil, false
		}
		return results, true
	}

	denseList, err := s.index.QueryDense(ctx, dense, uint64(prefetch))
	if err != nil {
		slog.Warn("dense arm failed", "error", err)
		return nil, false
	}
	sparseList, err := s.index.QuerySparse(ctx, sparse, uint64(prefetch))
	if err != nil {
		slog.Warn("sparse arm failed", "error", err)
		return nil, false
	}

	fused := FuseRRF([][]types.ScoredChunk{denseList, sparseList}, s.opts.RRFK)
	if len(fused) > limit {
		fused = fused[:limit]
	}
	return fused, true
}
