package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/capsul1912/chunker-search-opt/internal/types"
)

func marshalBody(t *testing.T, body interface{}) []byte {
	t.Helper()
	if str, ok := body.(string); ok {
		return []byte(str)
	}
	out, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return out
}

func TestHandler_ChunkHandler(t *testing.T) {
	tests := []struct {
		name         string
		requestBody  interface{}
		setupMocks   func(*MockIngestor)
		wantStatus   int
		wantContains string
	}{
		{
			name: "successful ingestion",
			requestBody: ChunkReq{
				Text: "This is a test document",
				ID:   "doc1",
			},
			setupMocks: func(ingestor *MockIngestor) {
				ingestor.EXPECT().
					IngestDocument(gomock.Any(), "This is a test document", "doc1").
					Return("doc1", []types.SemanticChunk{
						{Heading: "Test", Content: "This is a test document", Keywords: []string{"test"}, Summary: "a test"},
					}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"document_id":"doc1"`,
		},
		{
			name: "generated document id",
			requestBody: ChunkReq{
				Text: "Another document",
			},
			setupMocks: func(ingestor *MockIngestor) {
				ingestor.EXPECT().
					IngestDocument(gomock.Any(), "Another document", "").
					Return("generated-id", []types.SemanticChunk{{Heading: "H", Content: "Another document"}}, nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: "generated-id",
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockIngestor) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name: "empty text",
			requestBody: ChunkReq{
				Text: "",
			},
			setupMocks: func(*MockIngestor) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ingestion fails",
			requestBody: ChunkReq{
				Text: "test document",
			},
			setupMocks: func(ingestor *MockIngestor) {
				ingestor.EXPECT().
					IngestDocument(gomock.Any(), "test document", "").
					Return("", nil, errors.New("ingest error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIngestor := NewMockIngestor(ctrl)
			tt.setupMocks(mockIngestor)

			handler := NewHandlers(mockIngestor, NewMockChunkSearcher(ctrl), NewMockHealthChecker(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/chunk", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ChunkHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ChunkHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("ChunkHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestHandler_StoreHandler(t *testing.T) {
	chunks := []types.SemanticChunk{
		{Heading: "A", Content: "first chunk", Keywords: []string{}, Summary: "s"},
		{Heading: "B", Content: "second chunk", Keywords: []string{}, Summary: "s"},
	}

	tests := []struct {
		name         string
		requestBody  interface{}
		setupMocks   func(*MockIngestor)
		wantStatus   int
		wantContains string
	}{
		{
			name: "successful store",
			requestBody: StoreReq{
				Chunks: chunks,
				ID:     "doc1",
			},
			setupMocks: func(ingestor *MockIngestor) {
				ingestor.EXPECT().
					StoreChunks(gomock.Any(), chunks, "doc1").
					Return("doc1", nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"chunks_stored":2`,
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockIngestor) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name: "empty chunks",
			requestBody: StoreReq{
				Chunks: nil,
				ID:     "doc1",
			},
			setupMocks: func(*MockIngestor) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store fails",
			requestBody: StoreReq{
				Chunks: chunks,
			},
			setupMocks: func(ingestor *MockIngestor) {
				ingestor.EXPECT().
					StoreChunks(gomock.Any(), chunks, "").
					Return("", errors.New("upsert error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIngestor := NewMockIngestor(ctrl)
			tt.setupMocks(mockIngestor)

			handler := NewHandlers(mockIngestor, NewMockChunkSearcher(ctrl), NewMockHealthChecker(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/embed-and-store", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.StoreHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("StoreHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("StoreHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestHandler_SearchHandler(t *testing.T) {
	tests := []struct {
		name         string
		requestBody  interface{}
		setupMocks   func(*MockChunkSearcher)
		wantStatus   int
		wantContains string
	}{
		{
			name: "successful hybrid search",
			requestBody: SearchReq{
				Query: "what is kubernetes",
				Limit: 3,
			},
			setupMocks: func(searcher *MockChunkSearcher) {
				searcher.EXPECT().
					Search(gomock.Any(), "what is kubernetes", 3).
					Return([]types.ScoredChunk{
						{ID: "c1", Score: 0.03, Chunk: types.SemanticChunk{Heading: "K8s", Content: "Kubernetes is"}},
					}, types.SearchHybrid)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"search_method":"hybrid"`,
		},
		{
			name: "query whitespace is normalized",
			requestBody: SearchReq{
				Query: "  messy    query  ",
			},
			setupMocks: func(searcher *MockChunkSearcher) {
				searcher.EXPECT().
					Search(gomock.Any(), "messy query", 0).
					Return([]types.ScoredChunk{}, types.SearchDenseOnly)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"search_method":"dense-only"`,
		},
		{
			name: "degraded search still returns 200",
			requestBody: SearchReq{
				Query: "anything",
			},
			setupMocks: func(searcher *MockChunkSearcher) {
				searcher.EXPECT().
					Search(gomock.Any(), "anything", 0).
					Return([]types.ScoredChunk{}, types.SearchFailed)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"search_method":"failed"`,
		},
		{
			name:        "invalid JSON",
			requestBody: "invalid json",
			setupMocks:  func(*MockChunkSearcher) {},
			wantStatus:  http.StatusBadRequest,
		},
		{
			name: "empty query",
			requestBody: SearchReq{
				Query: "",
			},
			setupMocks: func(*MockChunkSearcher) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSearcher := NewMockChunkSearcher(ctrl)
			tt.setupMocks(mockSearcher)

			handler := NewHandlers(NewMockIngestor(ctrl), mockSearcher, NewMockHealthChecker(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.SearchHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("SearchHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("SearchHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}

func TestHandler_HealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*MockHealthChecker)
		wantStatus   int
		wantContains string
	}{
		{
			name: "healthy",
			setupMocks: func(health *MockHealthChecker) {
				health.EXPECT().Healthy(gomock.Any()).Return(nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"status":"healthy"`,
		},
		{
			name: "backend unreachable",
			setupMocks: func(health *MockHealthChecker) {
				health.EXPECT().Healthy(gomock.Any()).Return(errors.New("connection refused"))
			},
			wantStatus:   http.StatusServiceUnavailable,
			wantContains: `"status":"unhealthy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHealth := NewMockHealthChecker(ctrl)
			tt.setupMocks(mockHealth)

			handler := NewHandlers(NewMockIngestor(ctrl), NewMockChunkSearcher(ctrl), mockHealth)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler.HealthHandler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("HealthHandler() status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantContains != "" && !bytes.Contains(w.Body.Bytes(), []byte(tt.wantContains)) {
				t.Errorf("HealthHandler() body = %s, want containing %q", w.Body.String(), tt.wantContains)
			}
		})
	}
}
