package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/capsul1912/chunker-search-opt/internal/types"
)

var testVec = []float32{0.1, 0.2, 0.3}

func TestSearcher_Hybrid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "quick brown fox").Return(testVec, nil)

	// limit 3 prefetches max(3*3, 3+10) = 13 candidates per arm.
	index := NewMockVectorIndex(ctrl)
	index.EXPECT().SupportsSparse(gomock.Any()).Return(true)
	index.EXPECT().QueryDense(gomock.Any(), testVec, uint64(13)).
		Return([]types.ScoredChunk{scored("a"), scored("b"), scored("c"), scored("d")}, nil)
	index.EXPECT().QuerySparse(gomock.Any(), gomock.Any(), uint64(13)).
		Return([]types.ScoredChunk{scored("b"), scored("e")}, nil)

	s := NewSearcher(index, embedder, SearcherOptions{})
	results, method := s.Search(context.Background(), "quick brown fox", 3)

	if method != types.SearchHybrid {
		t.Fatalf("method = %q, want %q", method, types.SearchHybrid)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want limit 3", len(results))
	}
	// b is in both arms at good ranks, so it must come out on top.
	if results[0].ID != "b" {
		t.Errorf("top result = %q, want %q", results[0].ID, "b")
	}
}

func TestSearcher_EmbeddingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "query").Return(nil, errors.New("rate limited"))

	// No index expectations: a failed embedding must not hit the index.
	index := NewMockVectorIndex(ctrl)

	s := NewSearcher(index, embedder, SearcherOptions{})
	results, method := s.Search(context.Background(), "query", 5)

	if method != types.SearchFailed {
		t.Errorf("method = %q, want %q", method, types.SearchFailed)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want none", len(results))
	}
}

func TestSearcher_DenseOnlyWhenSparseUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "query").Return(testVec, nil)

	// QuerySparse and QueryFused have no expectations: the sparse path must
	// never run against a dense-only collection.
	index := NewMockVectorIndex(ctrl)
	index.EXPECT().SupportsSparse(gomock.Any()).Return(false)
	index.EXPECT().QueryDense(gomock.Any(), testVec, uint64(2)).
		Return([]types.ScoredChunk{scored("a"), scored("b")}, nil)

	s := NewSearcher(index, embedder, SearcherOptions{})
	results, method := s.Search(context.Background(), "query", 2)

	if method != types.SearchDenseOnly {
		t.Errorf("method = %q, want %q", method, types.SearchDenseOnly)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestSearcher_SparseArmFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "query").Return(testVec, nil)

	index := NewMockVectorIndex(ctrl)
	index.EXPECT().SupportsSparse(gomock.Any()).Return(true)
	index.EXPECT().QueryDense(gomock.Any(), testVec, uint64(13)).
		Return([]types.ScoredChunk{scored("a")}, nil)
	index.EXPECT().QuerySparse(gomock.Any(), gomock.Any(), uint64(13)).
		Return(nil, errors.New("sparse index corrupt"))
	// Retry as dense-only at the requested limit.
	index.EXPECT().QueryDense(gomock.Any(), testVec, uint64(3)).
		Return([]types.ScoredChunk{scored("a")}, nil)

	s := NewSearcher(index, embedder, SearcherOptions{})
	results, method := s.Search(context.Background(), "query", 3)

	if method != types.SearchDenseOnly {
		t.Errorf("method = %q, want %q", method, types.SearchDenseOnly)
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Errorf("got %v, want the dense-only result", ids(results))
	}
}

func TestSearcher_IndexFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "query").Return(testVec, nil)

	index := NewMockVectorIndex(ctrl)
	index.EXPECT().SupportsSparse(gomock.Any()).Return(false)
	index.EXPECT().QueryDense(gomock.Any(), testVec, uint64(5)).
		Return(nil, errors.New("connection refused"))

	s := NewSearcher(index, embedder, SearcherOptions{})
	results, method := s.Search(context.Background(), "query", 0) // default limit

	if method != types.SearchError {
		t.Errorf("method = %q, want %q", method, types.SearchError)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want none", len(results))
	}
}

func TestSearcher_ServerFusion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "query").Return(testVec, nil)

	index := NewMockVectorIndex(ctrl)
	index.EXPECT().SupportsSparse(gomock.Any()).Return(true)
	index.EXPECT().QueryFused(gomock.Any(), testVec, gomock.Any(), uint64(13), uint64(3)).
		Return([]types.ScoredChunk{scored("a"), scored("b")}, nil)

	s := NewSearcher(index, embedder, SearcherOptions{FusionMode: FusionServer})
	results, method := s.Search(context.Background(), "query", 3)

	if method != types.SearchHybrid {
		t.Errorf("method = %q, want %q", method, types.SearchHybrid)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestSearcher_SymbolOnlyQueryFallsBackToDense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedQuery(gomock.Any(), "!!! ???").Return(testVec, nil)

	// No sparse tokens can be extracted, so the hybrid path bows out before
	// touching the sparse arm.
	index := NewMockVectorIndex(ctrl)
	index.EXPECT().SupportsSparse(gomock.Any()).Return(true)
	index.EXPECT().QueryDense(gomock.Any(), testVec, uint64(2)).
		Return([]types.ScoredChunk{scored("a")}, nil)

	s := NewSearcher(index, embedder, SearcherOptions{})
	results, method := s.Search(context.Background(), "!!! ???", 2)

	if method != types.SearchDenseOnly {
		t.Errorf("method = %q, want %q", method, types.SearchDenseOnly)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}
