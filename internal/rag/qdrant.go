package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"github.com/capsul1912/chunker-search-opt/internal/types"
)

const (
	denseVectorName  = "dense"
	sparseVectorName = "sparse"

	// text-embedding-3-large produces 3072-dimensional vectors.
	vectorSize = 3072

	hnswM           = 64
	hnswEfConstruct = 512
	defaultSegments = 8
	searchHnswEf    = 128
)

// QdrantIndex implements VectorIndex over a Qdrant collection with named
// dense and sparse vectors. The sparse side carries the IDF modifier so
// term-frequency values stored by the pipeline score BM25-style.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantIndex creates a Qdrant-backed index.
func NewQdrantIndex(host string, port int, apiKey, collection string) (*QdrantIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}
	return &QdrantIndex{client: client, collection: collection}, nil
}

// EnsureCollection makes sure the collection exists with hybrid support.
// An existing collection with the wrong shape is recreated; if the tuned
// hybrid collection cannot be created, a basic dense-only one is a
// last-resort fallback so ingestion still works.
func (x *QdrantIndex) EnsureCollection(ctx context.Context) error {
	info, err := x.client.GetCollectionInfo(ctx, x.collection)
	if err == nil {
		if collectionShapeOK(info) {
			return nil
		}
		slog.Warn("collection has wrong configuration, recreating", "collection", x.collection)
		if err := x.client.DeleteCollection(ctx, x.collection); err != nil {
			return fmt.Errorf("failed to delete misconfigured collection: %w", err)
		}
	}

	if err := x.createHybridCollection(ctx); err != nil {
		slog.Error("failed to create hybrid collection, falling back to dense-only", "error", err)
		return x.createBasicCollection(ctx)
	}
	return nil
}

func (x *QdrantIndex) createHybridCollection(ctx context.Context) error {
	return x.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: x.collection,
		VectorsConfig: qdrant.NewVectorsConfigMap(map[string]*qdrant.VectorParams{
			denseVectorName: {
				Size:     vectorSize,
				Distance: qdrant.Distance_Cosine,
			},
		}),
		SparseVectorsConfig: qdrant.NewSparseVectorsConfig(map[string]*qdrant.SparseVectorParams{
			sparseVectorName: {
				Modifier: qdrant.Modifier_Idf.Enum(),
			},
		}),
		HnswConfig: &qdrant.HnswConfigDiff{
			M:           qdrant.PtrOf(uint64(hnswM)),
			EfConstruct: qdrant.PtrOf(uint64(hnswEfConstruct)),
			OnDisk:      qdrant.PtrOf(false),
		},
		OptimizersConfig: &qdrant.OptimizersConfigDiff{
			DefaultSegmentNumber: qdrant.PtrOf(uint64(defaultSegments)),
		},
	})
}

func (x *QdrantIndex) createBasicCollection(ctx context.Context) error {
	err := x.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: x.collection,
		VectorsConfig: qdrant.NewVectorsConfigMap(map[string]*qdrant.VectorParams{
			denseVectorName: {
				Size:     vectorSize,
				Distance: qdrant.Distance_Cosine,
			},
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

func collectionShapeOK(info *qdrant.CollectionInfo) bool {
	params := info.GetConfig().GetParams()

	denseOK := false
	if m := params.GetVectorsConfig().GetParamsMap(); m != nil {
		if dp, ok := m.GetMap()[denseVectorName]; ok {
			denseOK = dp.GetSize() == vectorSize
		}
	} else if vp := params.GetVectorsConfig().GetParams(); vp != nil {
		denseOK = vp.GetSize() == vectorSize
	}

	sparse := params.GetSparseVectorsConfig()
	return denseOK && sparse != nil && len(sparse.GetMap()) > 0
}

// Upsert stores chunk records with their dense and, when present, sparse
// vectors.
func (x *QdrantIndex) Upsert(ctx context.Context, records []ChunkRecord) error {
	points := make([]*qdrant.PointStruct, 0, len(records))
	for _, r := range records {
		vectors := map[string]*qdrant.Vector{
			denseVectorName: qdrant.NewVectorDense(r.Dense),
		}
		if r.Sparse != nil {
			vectors[sparseVectorName] = qdrant.NewVectorSparse(r.Sparse.Indices, r.Sparse.Values)
		}

		keywords := make([]any, len(r.Chunk.Keywords))
		for i, kw := range r.Chunk.Keywords {
			keywords[i] = kw
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(r.ID),
			Vectors: qdrant.NewVectorsMap(vectors),
			Payload: qdrant.NewValueMap(map[string]any{
				"document_id": r.DocumentID,
				"chunk_index": int64(r.ChunkIndex),
				"heading":     r.Chunk.Heading,
				"content":     r.Chunk.Content,
				"keywords":    keywords,
				"summary":     r.Chunk.Summary,
				"word_count":  int64(r.WordCount),
			}),
		})
	}

	_, err := x.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: x.collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// QueryDense ranks chunks by dense cosine similarity.
func (x *QdrantIndex) QueryDense(ctx context.Context, vector []float32, limit uint64) ([]types.ScoredChunk, error) {
	points, err := x.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: x.collection,
		Query:          qdrant.NewQueryDense(vector),
		Using:          qdrant.PtrOf(denseVectorName),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Params:         searchParams(),
	})
	if err != nil {
		return nil, fmt.Errorf("dense query failed: %w", err)
	}
	return scoredChunks(points), nil
}

// QuerySparse ranks chunks by lexical similarity.
func (x *QdrantIndex) QuerySparse(ctx context.Context, sparse types.SparseVector, limit uint64) ([]types.ScoredChunk, error) {
	points, err := x.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: x.collection,
		Query:          qdrant.NewQuerySparse(sparse.Indices, sparse.Values),
		Using:          qdrant.PtrOf(sparseVectorName),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Params:         searchParams(),
	})
	if err != nil {
		return nil, fmt.Errorf("sparse query failed: %w", err)
	}
	return scoredChunks(points), nil
}

// QueryFused runs the index's native rank fusion over both arms.
func (x *QdrantIndex) QueryFused(ctx context.Context, vector []float32, sparse types.SparseVector, prefetchLimit, limit uint64) ([]types.ScoredChunk, error) {
	points, err := x.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: x.collection,
		Prefetch: []*qdrant.PrefetchQuery{
			{
				Query:  qdrant.NewQuerySparse(sparse.Indices, sparse.Values),
				Using:  qdrant.PtrOf(sparseVectorName),
				Limit:  qdrant.PtrOf(prefetchLimit),
				Params: searchParams(),
			},
			{
				Query:  qdrant.NewQueryDense(vector),
				Using:  qdrant.PtrOf(denseVectorName),
				Limit:  qdrant.PtrOf(prefetchLimit),
				Params: searchParams(),
			},
		},
		Query:       qdrant.NewQueryFusion(qdrant.Fusion_RRF),
		Limit:       &limit,
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("fused query failed: %w", err)
	}
	return scoredChunks(points), nil
}

// SupportsSparse reports whether the collection has a sparse vector space.
func (x *QdrantIndex) SupportsSparse(ctx context.Context) bool {
	info, err := x.client.GetCollectionInfo(ctx, x.collection)
	if err != nil {
		return false
	}
	sparse := info.GetConfig().GetParams().GetSparseVectorsConfig()
	return sparse != nil && len(sparse.GetMap()) > 0
}

// Healthy reports whether the Qdrant instance is reachable.
func (x *QdrantIndex) Healthy(ctx context.Context) error {
	if _, err := x.client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("qdrant unreachable: %w", err)
	}
	return nil
}

func searchParams() *qdrant.SearchParams {
	return &qdrant.SearchParams{
		HnswEf: qdrant.PtrOf(uint64(searchHnswEf)),
		Exact:  qdrant.PtrOf(false),
	}
}

func scoredChunks(points []*qdrant.ScoredPoint) []types.ScoredChunk {
	out := make([]types.ScoredChunk, 0, len(points))
	for _, p := range points {
		sc := types.ScoredChunk{Score: p.GetScore()}
		if id := p.GetId(); id != nil {
			if sc.ID = id.GetUuid(); sc.ID == "" {
				sc.ID = strconv.FormatUint(id.GetNum(), 10)
			}
		}

		payload := p.GetPayload()
		sc.DocumentID = payload["document_id"].GetStringValue()
		sc.ChunkIndex = int(payload["chunk_index"].GetIntegerValue())
		sc.WordCount = int(payload["word_count"].GetIntegerValue())
		sc.Chunk = types.SemanticChunk{
			Heading: payload["heading"].GetStringValue(),
			Content: payload["content"].GetStringValue(),
			Summary: payload["summary"].GetStringValue(),
		}
		if list := payload["keywords"].GetListValue(); list != nil {
			for _, v := range list.GetValues() {
				if s := v.GetStringValue(); s != "" {
					sc.Chunk.Keywords = append(sc.Chunk.Keywords, s)
				}
			}
		}
		out = append(out, sc)
	}
	return out
}
