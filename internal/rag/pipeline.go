package rag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/capsul1912/chunker-search-opt/internal/textsplit"
	"github.com/capsul1912/chunker-search-opt/internal/types"
)

//go:generate mockgen -source=pipeline.go -destination=mock_collaborators.go -package=rag VectorIndex,Embedder,DocumentChunker

// VectorIndex is the vector store boundary: upsert by id and the retrieval
// primitives the searcher needs.
type VectorIndex interface {
	EnsureCollection(ctx context.Context) error
	Upsert(ctx context.Context, records []ChunkRecord) error
	QueryDense(ctx context.Context, vector []float32, limit uint64) ([]types.ScoredChunk, error)
	QuerySparse(ctx context.Context, sparse types.SparseVector, limit uint64) ([]types.ScoredChunk, error)
	QueryFused(ctx context.Context, vector []float32, sparse types.SparseVector, prefetchLimit, limit uint64) ([]types.ScoredChunk, error)
	SupportsSparse(ctx context.Context) bool
}

// Embedder produces dense embeddings. Documents and queries use separate
// encodings and must not be conflated.
type Embedder interface {
	EmbedDocument(ctx context.Context, text string) ([]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// DocumentChunker turns a document into ordered semantic chunks.
type DocumentChunker interface {
	ChunkDocument(ctx context.Context, text string) ([]types.SemanticChunk, error)
}

// ChunkRecord is one chunk prepared for storage: its id, vectors, and the
// payload persisted alongside them.
type ChunkRecord struct {
	ID         string
	DocumentID string
	ChunkIndex int
	Dense      []float32
	Sparse     *types.SparseVector
	Chunk      types.SemanticChunk
	WordCount  int
}

// Pipeline orchestrates ingestion: chunk, embed, store.
type Pipeline struct {
	chunker  DocumentChunker
	embedder Embedder
	index    VectorIndex
}

// NewPipeline creates the ingestion pipeline and ensures the target
// collection exists.
func NewPipeline(ctx context.Context, chunker DocumentChunker, embedder Embedder, index VectorIndex) (*Pipeline, error) {
	if err := index.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}
	return &Pipeline{chunker: chunker, embedder: embedder, index: index}, nil
}

// IngestDocument chunks, embeds, and stores a document. It returns the
// document id (generated when docID is empty) and the chunks produced.
func (p *Pipeline) IngestDocument(ctx context.Context, text, docID string) (string, []types.SemanticChunk, error) {
	cleaned := textsplit.Clean(text)
	if cleaned == "" {
		return "", nil, errors.New("document is empty")
	}

	chunks, err := p.chunker.ChunkDocument(ctx, cleaned)
	if err != nil {
		return "", chunks, fmt.Errorf("failed to chunk document: %w", err)
	}

	docID, err = p.StoreChunks(ctx, chunks, docID)
	if err != nil {
		return "", chunks, err
	}
	return docID, chunks, nil
}

// StoreChunks embeds and upserts already-segmented chunks. A chunk whose
// embedding fails is skipped with a warning; the rest of the document is
// still stored. Storing nothing is an error.
func (p *Pipeline) StoreChunks(ctx context.Context, chunks []types.SemanticChunk, docID string) (string, error) {
	if docID == "" {
		docID = uuid.NewString()
	}
	if len(chunks) == 0 {
		return "", errors.New("no chunks to store")
	}

	sparseOK := p.index.SupportsSparse(ctx)

	records := make([]ChunkRecord, 0, len(chunks))
	for i, ch := range chunks {
		dense, err := p.embedder.EmbedDocument(ctx, ch.Content)
		if err != nil || len(dense) == 0 {
			slog.Warn("skipping chunk without embedding", "doc_id", docID, "chunk_index", i, "error", err)
			continue
		}
		rec := ChunkRecord{
			ID:         uuid.NewString(),
			DocumentID: docID,
			ChunkIndex: i,
			Dense:      dense,
			Chunk:      ch,
			WordCount:  textsplit.CountWords(ch.Content),
		}
		if sparseOK {
			if sv := EncodeSparse(ch.Content); len(sv.Indices) > 0 {
				rec.Sparse = &sv
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return "", errors.New("no chunks could be embedded")
	}
	if err := p.index.Upsert(ctx, records); err != nil {
		return "", fmt.Errorf("failed to upsert chunks: %w", err)
	}

	slog.Info("stored document", "doc_id", docID, "chunks", len(records), "skipped", len(chunks)-len(records))
	return docID, nil
}
