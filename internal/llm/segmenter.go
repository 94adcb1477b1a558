package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/capsul1912/chunker-search-opt/internal/rag"
	"github.com/capsul1912/chunker-search-opt/internal/types"
)

const segmentSystemPrompt = `You are an expert at breaking documents into meaningful pieces. Split the text into chunks that hold complete ideas, topics, or concepts.

RULES:
1. Keep the EXACT original text in each chunk - do not change or summarize anything
2. Each chunk must be a complete thought or topic
3. Split at natural topic changes, not random places
4. Meaning matters more than size
5. Keep related examples and explanations together

Respond with a JSON object: {"chunks": [{"heading": string, "content": string (exact original text), "keywords": [7-10 strings], "summary": string (1-2 sentences)}]}`

type segmentResponse struct {
	Chunks []types.SemanticChunk `json:"chunks"`
}

// Segment asks the model to partition text into labeled semantic chunks.
// Timeout failures are wrapped in rag.ErrSegmenterTimeout so the caller can
// retry them; a malformed response is a permanent error.
func (c *Client) Segment(ctx context.Context, text string) ([]types.SemanticChunk, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.segmentModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(segmentSystemPrompt),
			openai.UserMessage("Text to process:\n" + text),
		},
		Temperature: param.Opt[float64]{Value: 0.1},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", rag.ErrSegmenterTimeout, err)
		}
		return nil, fmt.Errorf("segmentation request failed: %w", err)
	}

	if len(res.Choices) == 0 {
		return nil, errors.New("no choices in segmentation response")
	}

	var parsed segmentResponse
	if err := json.Unmarshal([]byte(stripFences(res.Choices[0].Message.Content)), &parsed); err != nil {
		return nil, fmt.Errorf("malformed segmentation response: %w", err)
	}
	return parsed.Chunks, nil
}

// isTimeout classifies an error as deadline/network timeout. The decision
// is made here at the collaborator boundary from typed errors, never from
// message text.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// stripFences removes a Markdown code fence some models wrap around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
