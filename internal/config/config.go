package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey       string
	OpenAISegmentModel string
	OpenAIEmbedModel   string

	// Qdrant configuration
	QdrantHost       string
	QdrantPort       int
	QdrantAPIKey     string
	QdrantCollection string

	// Chunking configuration (all sizes in words)
	TargetWindowWords int
	RefillFloorWords  int
	TinyChunkWords    int
	MaxSegmentWords   int
	SegmentRetries    int
	SegmentTimeout    time.Duration
	SingleChunk       bool

	// Search configuration
	SearchLimit int
	RRFK        int
	FusionMode  string
}

// LoadConfig loads configuration from a .env file (when present),
// environment variables, and command-line flags. Flags take precedence
// over environment variables.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{}

	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	segmentModel := flag.String("segment-model", getEnv("OPENAI_SEGMENT_MODEL", "gpt-4.1-mini"), "OpenAI model for semantic segmentation")
	embedModel := flag.String("embed-model", getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-large"), "OpenAI model for embeddings")
	qdrantHost := flag.String("qdrant-host", getEnv("QDRANT_HOST", "localhost"), "Qdrant host")
	qdrantPort := flag.Int("qdrant-port", getEnvAsInt("QDRANT_PORT", 6334), "Qdrant gRPC port (default: 6334)")
	qdrantAPIKey := flag.String("qdrant-api-key", getEnv("QDRANT_API_KEY", ""), "Qdrant API key")
	qdrantCollection := flag.String("qdrant-collection", getEnv("QDRANT_COLLECTION", "semantic_chunks"), "Qdrant collection name")
	windowWords := flag.Int("window-words", getEnvAsInt("TARGET_WINDOW_WORDS", 10000), "Working window size in words")
	refillWords := flag.Int("refill-words", getEnvAsInt("REFILL_FLOOR_WORDS", 5000), "Refill floor in words")
	tinyWords := flag.Int("tiny-words", getEnvAsInt("TINY_CHUNK_WORDS", 10), "Tiny chunk threshold in words")
	maxSegWords := flag.Int("max-segment-words", getEnvAsInt("MAX_SEGMENT_WORDS", 12000), "Hard per-call segmenter ceiling in words")
	segRetries := flag.Int("segment-retries", getEnvAsInt("SEGMENT_RETRIES", 2), "Retry attempts after a segmenter timeout")
	segTimeout := flag.Duration("segment-timeout", getEnvAsDuration("SEGMENT_TIMEOUT", 60*time.Second), "Per-attempt segmenter timeout")
	singleChunk := flag.Bool("single-chunk", getEnvAsBool("SINGLE_CHUNK", false), "Consume only the first chunk per segmenter call")
	searchLimit := flag.Int("search-limit", getEnvAsInt("SEARCH_LIMIT", 5), "Number of search results to return")
	rrfK := flag.Int("rrf-k", getEnvAsInt("RRF_K", 60), "Reciprocal rank fusion smoothing constant")
	fusionMode := flag.String("fusion-mode", getEnv("FUSION_MODE", "client"), "Rank fusion locality: client or server")

	flag.Parse()

	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAISegmentModel = *segmentModel
	cfg.OpenAIEmbedModel = *embedModel
	cfg.QdrantHost = *qdrantHost
	cfg.QdrantPort = *qdrantPort
	cfg.QdrantAPIKey = *qdrantAPIKey
	cfg.QdrantCollection = *qdrantCollection
	cfg.TargetWindowWords = *windowWords
	cfg.RefillFloorWords = *refillWords
	cfg.TinyChunkWords = *tinyWords
	cfg.MaxSegmentWords = *maxSegWords
	cfg.SegmentRetries = *segRetries
	cfg.SegmentTimeout = *segTimeout
	cfg.SingleChunk = *singleChunk
	cfg.SearchLimit = *searchLimit
	cfg.RRFK = *rrfK
	cfg.FusionMode = *fusionMode

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required (set via environment variable or -openai-key flag)")
	}
	if cfg.RefillFloorWords >= cfg.TargetWindowWords {
		return nil, fmt.Errorf("refill floor (%d) must be below the target window size (%d)", cfg.RefillFloorWords, cfg.TargetWindowWords)
	}
	if cfg.FusionMode != "client" && cfg.FusionMode != "server" {
		return nil, fmt.Errorf("fusion mode must be client or server, got %q", cfg.FusionMode)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
