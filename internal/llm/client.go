package llm

import (
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client wraps the OpenAI client and provides the segmentation oracle and
// the embedding provider used by the pipeline.
type Client struct {
	client       *openai.Client
	segmentModel string
	embedModel   string
	timeout      time.Duration
}

// NewClient creates a new LLM client. timeout bounds each segmentation
// attempt; timeouts surface as retryable segmenter errors.
func NewClient(apiKey, segmentModel, embedModel string, timeout time.Duration) *Client {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		client:       &client,
		segmentModel: segmentModel,
		embedModel:   embedModel,
		timeout:      timeout,
	}
}
