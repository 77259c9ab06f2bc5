package embeddings

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cloudwego/eino/components/embedding"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"
)

var _ embedding.Embedder = (*Client)(nil)

// EmbedStrings computes one embedding vector per input text.
//
// The result always has the same length and order as the input. Inputs
// larger than the configured chunk size are split into multiple requests;
// chunks are dispatched with at most MaxParallel requests in flight. A
// failed chunk cancels the remaining ones and fails the whole call.
//
// The model can be overridden per call with embedding.WithModel.
func (c *Client) EmbedStrings(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	start := time.Now()

	options := embedding.GetCommonOptions(&embedding.Options{
		Model: &c.cfg.Model,
	}, opts...)
	model := *options.Model

	if len(texts) == 0 {
		c.observeOperation("embed_strings", model, time.Since(start), nil, 0, nil)
		return [][]float64{}, nil
	}

	chunks := chunkStrings(texts, c.cfg.ChunkSize)
	out := make([][]float64, len(texts))

	var promptTokens, totalTokens atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxParallel)

	for ci, chunk := range chunks {
		offset := ci * c.cfg.ChunkSize
		g.Go(func() error {
			req := openai.EmbeddingRequest{
				Input: chunk,
				Model: openai.EmbeddingModel(model),
			}
			if c.cfg.Dimensions > 0 {
				req.Dimensions = c.cfg.Dimensions
			}

			resp, err := c.conn.API().CreateEmbeddings(gctx, req)
			if err != nil {
				return fmt.Errorf("embeddings: create embeddings: %w", err)
			}
			if len(resp.Data) != len(chunk) {
				return fmt.Errorf("%w: got %d vectors for %d texts", ErrVectorCountMismatch, len(resp.Data), len(chunk))
			}

			for i, item := range resp.Data {
				out[offset+i] = toFloat64(item.Embedding)
			}

			promptTokens.Add(int64(resp.Usage.PromptTokens))
			totalTokens.Add(int64(resp.Usage.TotalTokens))
			return nil
		})
	}

	err := g.Wait()
	c.observeOperation("embed_strings", model, time.Since(start), err, int64(len(texts)), map[string]interface{}{
		"chunks":        len(chunks),
		"prompt_tokens": int(promptTokens.Load()),
		"total_tokens":  int(totalTokens.Load()),
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// EmbedDocuments embeds a batch of documents in a single order-preserving
// operation. It is a convenience alias for EmbedStrings.
func (c *Client) EmbedDocuments(ctx context.Context, texts []string, opts ...embedding.Option) ([][]float64, error) {
	return c.EmbedStrings(ctx, texts, opts...)
}

// EmbedQuery embeds a single query text and returns its vector.
func (c *Client) EmbedQuery(ctx context.Context, text string, opts ...embedding.Option) ([]float64, error) {
	vectors, err := c.EmbedStrings(ctx, []string{text}, opts...)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}
