package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/capsul1912/chunker-search-opt/internal/textsplit"
	"github.com/capsul1912/chunker-search-opt/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=httpapi Ingestor,ChunkSearcher,HealthChecker

// Ingestor defines the ingestion operations the handlers depend on.
type Ingestor interface {
	IngestDocument(ctx context.Context, text, docID string) (string, []types.SemanticChunk, error)
	StoreChunks(ctx context.Context, chunks []types.SemanticChunk, docID string) (string, error)
}

// ChunkSearcher defines the retrieval operation the handlers depend on.
type ChunkSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]types.ScoredChunk, types.SearchMethod)
}

// HealthChecker reports backend reachability for the health endpoint.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

type ChunkReq struct {
	Text string `json:"text"`
	ID   string `json:"id,omitempty"`
}

type StoreReq struct {
	Chunks []types.SemanticChunk `json:"chunks"`
	ID     string                `json:"id,omitempty"`
}

type SearchReq struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type Handler struct {
	ingestor Ingestor
	searcher ChunkSearcher
	health   HealthChecker
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(ingestor Ingestor, searcher ChunkSearcher, health HealthChecker) *Handler {
	return &Handler{
		ingestor: ingestor,
		searcher: searcher,
		health:   health,
	}
}

// ChunkHandler ingests a document: semantic chunking, embedding, storage.
func (h *Handler) ChunkHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req ChunkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Text == "" {
		errorResponse(w, http.StatusBadRequest, "Text is required", nil)
		return
	}

	docID, chunks, err := h.ingestor.IngestDocument(r.Context(), req.Text, req.ID)
	if err != nil {
		slog.Error("Error ingesting document", "error", err, "doc_id", req.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to ingest document", err)
		return
	}

	writeJSON(w, http.StatusOK, types.ChunkResponse{
		DocumentID: docID,
		Chunks:     chunks,
	})
}

// StoreHandler stores pre-segmented chunks with embeddings.
func (h *Handler) StoreHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req StoreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Chunks) == 0 {
		errorResponse(w, http.StatusBadRequest, "Chunks are required", nil)
		return
	}

	docID, err := h.ingestor.StoreChunks(r.Context(), req.Chunks, req.ID)
	if err != nil {
		slog.Error("Error storing chunks", "error", err, "doc_id", req.ID)
		errorResponse(w, http.StatusInternalServerError, "Failed to store chunks", err)
		return
	}

	writeJSON(w, http.StatusOK, types.StoreResponse{
		Success:      true,
		DocumentID:   docID,
		ChunksStored: len(req.Chunks),
	})
}

// SearchHandler answers a query with ranked chunks and the retrieval
// method that served it. Degraded searches still return 200 with the
// method field reporting what happened.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req SearchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Query == "" {
		errorResponse(w, http.StatusBadRequest, "Query is required", nil)
		return
	}

	results, method := h.searcher.Search(r.Context(), textsplit.Clean(req.Query), req.Limit)
	writeJSON(w, http.StatusOK, types.SearchResponse{
		Results:      results,
		SearchMethod: method,
	})
}

// HealthHandler reports service and backend status.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Healthy(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}
	writeJSON(w, status, types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	})
}
