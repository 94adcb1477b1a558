package types

// SemanticChunk is a thematically coherent piece of a document produced by
// the segmentation oracle. Content is the exact original text, never a
// summary: search returns it verbatim to the caller.
type SemanticChunk struct {
	Heading  string   `json:"heading"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
	Summary  string   `json:"summary"`
}

// SparseVector is a lexical representation of text: token indices with
// their weights. Index semantics are defined by the encoder that produced it.
type SparseVector struct {
	Indices []uint32
	Values  []float32
}

// ScoredChunk is a chunk returned from the index with its relevance score
// and stored metadata.
type ScoredChunk struct {
	ID         string        `json:"id"`
	Score      float32       `json:"score"`
	Chunk      SemanticChunk `json:"chunk"`
	DocumentID string        `json:"document_id"`
	ChunkIndex int           `json:"chunk_index"`
	WordCount  int           `json:"word_count"`
}

// SearchMethod reports which retrieval strategy actually served a query.
type SearchMethod string

const (
	SearchHybrid    SearchMethod = "hybrid"
	SearchDenseOnly SearchMethod = "dense-only"
	SearchFailed    SearchMethod = "failed"
	SearchError     SearchMethod = "error"
)

// ChunkResponse is the response body for document ingestion.
type ChunkResponse struct {
	DocumentID string          `json:"document_id"`
	Chunks     []SemanticChunk `json:"chunks"`
}

// StoreResponse is the response body for storing pre-segmented chunks.
type StoreResponse struct {
	Success      bool   `json:"success"`
	DocumentID   string `json:"document_id"`
	ChunksStored int    `json:"chunks_stored"`
}

// SearchResponse is the response body for search queries.
type SearchResponse struct {
	Results      []ScoredChunk `json:"results"`
	SearchMethod SearchMethod  `json:"search_method"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
