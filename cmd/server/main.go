package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/capsul1912/chunker-search-opt/internal/config"
	"github.com/capsul1912/chunker-search-opt/internal/httpapi"
	"github.com/capsul1912/chunker-search-opt/internal/llm"
	"github.com/capsul1912/chunker-search-opt/internal/rag"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize LLM client (segmenter + embeddings)
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAISegmentModel, cfg.OpenAIEmbedModel, cfg.SegmentTimeout)
	slog.Info("Initialized OpenAI client", "segment_model", cfg.OpenAISegmentModel, "embed_model", cfg.OpenAIEmbedModel)

	// Initialize Qdrant index
	index, err := rag.NewQdrantIndex(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantAPIKey, cfg.QdrantCollection)
	if err != nil {
		slog.Error("Failed to create Qdrant index", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized Qdrant index", "collection", cfg.QdrantCollection)

	// Initialize chunking controller
	chunker := rag.NewChunker(llmClient, rag.ChunkerOptions{
		TargetWindowWords: cfg.TargetWindowWords,
		RefillFloorWords:  cfg.RefillFloorWords,
		TinyChunkWords:    cfg.TinyChunkWords,
		MaxSegmentWords:   cfg.MaxSegmentWords,
		SegmentRetries:    cfg.SegmentRetries,
		SingleChunk:       cfg.SingleChunk,
	})
	slog.Info("Initialized chunker", "window_words", cfg.TargetWindowWords, "refill_words", cfg.RefillFloorWords)

	// Initialize ingestion pipeline
	pipeline, err := rag.NewPipeline(context.Background(), chunker, llmClient, index)
	if err != nil {
		slog.Error("Failed to create pipeline", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized pipeline")

	// Initialize searcher
	searcher := rag.NewSearcher(index, llmClient, rag.SearcherOptions{
		RRFK:         cfg.RRFK,
		FusionMode:   rag.FusionMode(cfg.FusionMode),
		DefaultLimit: cfg.SearchLimit,
	})

	// Initialize HTTP handlers
	handler := httpapi.NewHandlers(pipeline, searcher, index)

	// Create router
	r := httpapi.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
