package rag

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/capsul1912/chunker-search-opt/internal/textsplit"
	"github.com/capsul1912/chunker-search-opt/internal/types"
)

//go:generate mockgen -source=controller.go -destination=mock_segmenter.go -package=rag Segmenter

// Segmenter is the external semantic-segmentation oracle: given text, it
// returns labeled chunks whose content is meant to be the original text
// verbatim, though implementations are not guaranteed to echo it
// byte-for-byte.
type Segmenter interface {
	Segment(ctx context.Context, text string) ([]types.SemanticChunk, error)
}

// ChunkerOptions controls the windowing behavior. All sizes are in words.
type ChunkerOptions struct {
	// TargetWindowWords is the size of the working window sent to the
	// segmenter in the best case.
	TargetWindowWords int
	// RefillFloorWords is the hysteresis floor: a window below it is topped
	// up from the remainder before the next segmenter call.
	RefillFloorWords int
	// TinyChunkWords is the floor below which residual text is emitted
	// directly instead of spending a segmenter call on it.
	TinyChunkWords int
	// MaxSegmentWords is the hard per-call ceiling imposed by the segmenter;
	// windows above it are pre-split and the tail is requeued.
	MaxSegmentWords int
	// SegmentRetries caps retry attempts after a timeout.
	SegmentRetries int
	// RetryInterval is the initial backoff delay between retries.
	RetryInterval time.Duration
	// SingleChunk consumes only the first chunk of each segmenter response,
	// re-invoking the segmenter on the rest of the window. More calls,
	// possibly better boundaries.
	SingleChunk bool
}

func (o ChunkerOptions) withDefaults() ChunkerOptions {
	if o.TargetWindowWords <= 0 {
		o.TargetWindowWords = 10000
	}
	if o.RefillFloorWords <= 0 {
		o.RefillFloorWords = 5000
	}
	if o.TinyChunkWords <= 0 {
		o.TinyChunkWords = 10
	}
	if o.MaxSegmentWords <= 0 {
		o.MaxSegmentWords = 12000
	}
	if o.SegmentRetries < 0 {
		o.SegmentRetries = 0
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = time.Second
	}
	return o
}

// Chunker turns an arbitrarily long document into an ordered sequence of
// semantic chunks by feeding bounded working windows to a Segmenter and
// refilling them from the unprocessed remainder.
//
// Its core guarantee is no data loss: every piece of the input ends up in
// exactly one emitted chunk, as a fallback chunk when the segmenter fails,
// times out, or returns nothing.
type Chunker struct {
	segmenter Segmenter
	opts      ChunkerOptions
}

// NewChunker creates a chunking controller around the given segmenter.
func NewChunker(segmenter Segmenter, opts ChunkerOptions) *Chunker {
	return &Chunker{segmenter: segmenter, opts: opts.withDefaults()}
}

// ChunkDocument processes text into semantic chunks in document order.
//
// A cancelled context aborts processing between iterations; the window in
// flight is emitted as a fallback chunk and the context error is returned
// alongside the chunks produced so far.
func (c *Chunker) ChunkDocument(ctx context.Context, text string) ([]types.SemanticChunk, error) {
	chunks := []types.SemanticChunk{}
	remainder := text

	slog.Info("starting chunking",
		"total_words", textsplit.CountWords(text),
		"window_words", c.opts.TargetWindowWords,
		"refill_floor_words", c.opts.RefillFloorWords)

	iteration := 0
	for strings.TrimSpace(remainder) != "" {
		var window string
		window, remainder = textsplit.SplitByTarget(remainder, c.opts.TargetWindowWords)
		if strings.TrimSpace(window) == "" {
			break
		}
		iteration++
		slog.Debug("new working window",
			"iteration", iteration,
			"window_words", textsplit.CountWords(window),
			"remaining_words", textsplit.CountWords(remainder))

		for strings.TrimSpace(window) != "" {
			if err := ctx.Err(); err != nil {
				chunks = append(chunks, fallbackChunk(window, "Processing Error", "Processing cancelled before completion"))
				return chunks, err
			}

			words := textsplit.CountWords(window)

			if words < c.opts.RefillFloorWords && strings.TrimSpace(remainder) != "" {
				var refill string
				refill, remainder = textsplit.SplitByTarget(remainder, c.opts.RefillFloorWords)
				if strings.TrimSpace(refill) != "" {
					window = strings.TrimSpace(window) + "\n\n" + refill
					slog.Debug("refilled window",
						"window_words", textsplit.CountWords(window),
						"remaining_words", textsplit.CountWords(remainder))
					continue
				}
			}

			if words < c.opts.TinyChunkWords {
				chunks = append(chunks, fallbackChunk(window, "Content", "Very small content section"))
				window = ""
				break
			}

			// Respect the segmenter's own size ceiling: segment only the
			// head of an oversized window and requeue the tail.
			head, tail := window, ""
			if words > c.opts.MaxSegmentWords {
				head, tail = textsplit.SplitByTarget(window, c.opts.MaxSegmentWords)
			}

			produced, err := c.segment(ctx, head)
			if err != nil {
				slog.Error("segmentation failed, emitting fallback chunk", "error", err, "window_words", words)
				chunks = append(chunks, fallbackChunk(window, "Processing Error", "Error during processing: "+err.Error()))
				window = ""
				break
			}
			produced = dropBlankChunks(produced)
			if len(produced) == 0 {
				slog.Warn("segmenter returned no chunks, emitting fallback chunk", "window_words", words)
				chunks = append(chunks, fallbackChunk(window, "Unprocessed Content", "Content that could not be broken into chunks"))
				window = ""
				break
			}

			if c.opts.SingleChunk {
				produced = produced[:1]
			}
			chunks = append(chunks, produced...)

			leftover := head
			for _, ch := range produced {
				leftover = removeProcessedContent(leftover, ch.Content)
			}
			if textsplit.CountWords(leftover) >= textsplit.CountWords(head) {
				// The produced chunks removed nothing, so another round
				// would loop forever on the same window.
				slog.Warn("segmenter output did not consume the window, emitting fallback chunk")
				chunks = append(chunks, fallbackChunk(joinWindow(leftover, tail), "Unprocessed Content", "Content that could not be broken into chunks"))
				window = ""
				break
			}
			window = joinWindow(leftover, tail)

			if w := textsplit.CountWords(window); w > 0 && w < c.opts.TinyChunkWords {
				chunks = append(chunks, fallbackChunk(window, "Additional Content", "Remaining content from processing"))
				window = ""
			}
		}
	}

	slog.Info("chunking complete", "chunks", len(chunks), "iterations", iteration)
	return chunks, nil
}

// segment calls the segmenter, retrying timeouts with exponential backoff.
// Any other failure is permanent and returns immediately.
func (c *Chunker) segment(ctx context.Context, text string) ([]types.SemanticChunk, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.RetryInterval
	bo := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.opts.SegmentRetries)), ctx)

	var produced []types.SemanticChunk
	err := backoff.Retry(func() error {
		res, err := c.segmenter.Segment(ctx, text)
		if err != nil {
			if errors.Is(err, ErrSegmenterTimeout) {
				slog.Warn("segmenter timed out, will retry", "error", err)
				return err
			}
			return backoff.Permanent(err)
		}
		produced = res
		return nil
	}, bo)
	return produced, err
}

// removeProcessedContent removes a produced chunk's content from the window.
// When the segmenter echoed the text verbatim this is an exact substring
// deletion; otherwise an equivalent number of leading words is dropped.
func removeProcessedContent(window, content string) string {
	if content == "" {
		return window
	}
	if i := strings.Index(window, content); i >= 0 {
		return strings.TrimSpace(window[:i] + window[i+len(content):])
	}
	return dropLeadingWords(window, textsplit.CountWords(content))
}

func dropLeadingWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return ""
	}
	return strings.Join(words[n:], " ")
}

// dropBlankChunks discards segmenter output with no content; accepting it
// would stall the removal step.
func dropBlankChunks(chunks []types.SemanticChunk) []types.SemanticChunk {
	kept := chunks[:0]
	for _, ch := range chunks {
		if strings.TrimSpace(ch.Content) != "" {
			kept = append(kept, ch)
		}
	}
	return kept
}

func joinWindow(leftover, tail string) string {
	leftover = strings.TrimSpace(leftover)
	if tail == "" {
		return leftover
	}
	if leftover == "" {
		return tail
	}
	return leftover + "\n\n" + tail
}

// fallbackChunk wraps window text verbatim in a chunk so that segmenter
// failures never lose document content.
func fallbackChunk(content, heading, summary string) types.SemanticChunk {
	return types.SemanticChunk{
		Heading:  heading,
		Content:  strings.TrimSpace(content),
		Keywords: []string{},
		Summary:  summary,
	}
}
