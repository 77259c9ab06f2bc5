package rerank

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
)

// Result is a single rerank outcome: the position of a document in the
// request and its relevance to the query.
type Result struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

// rerankRequest is the wire shape of a rerank request.
type rerankRequest struct {
	Model     string   `json:"model"`
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	TopN      int      `json:"top_n"`
}

// rerankUsage mirrors the token accounting of a rerank response.
type rerankUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// rerankResponse is the wire shape of a rerank response.
type rerankResponse struct {
	Model   string      `json:"model"`
	Results []Result    `json:"results"`
	Usage   rerankUsage `json:"usage"`
}

// Rerank scores the given documents against the query. Each result
// references a document by its position in the request.
//
// topN bounds how many results the server is asked for; a non-positive
// value falls back to the configured TopN. An empty document list returns an
// empty result without issuing a network request.
func (c *Client) Rerank(ctx context.Context, query string, documents []string, topN int) ([]Result, error) {
	start := time.Now()

	if topN <= 0 {
		topN = c.cfg.TopN
	}

	if len(documents) == 0 {
		c.observeOperation("rerank", c.cfg.Model, time.Since(start), nil, 0, nil)
		return []Result{}, nil
	}

	reqBody := rerankRequest{
		Model:     c.cfg.Model,
		Query:     query,
		Documents: documents,
		TopN:      topN,
	}

	var parsed rerankResponse
	raw, err := c.postJSON(ctx, c.conn.BaseURL()+"/rerank", reqBody, &parsed)
	if err != nil {
		err = fmt.Errorf("rerank: %w", err)
		c.observeOperation("rerank", c.cfg.Model, time.Since(start), err, int64(len(documents)), nil)
		return nil, err
	}

	// A success response without a results field means the server did not
	// actually rerank; surface its body instead of returning nothing.
	if parsed.Results == nil {
		err = fmt.Errorf("%w: no results field: %s", ErrMalformedResponse, strings.TrimSpace(string(raw)))
		c.observeOperation("rerank", c.cfg.Model, time.Since(start), err, int64(len(documents)), nil)
		return nil, err
	}

	for _, result := range parsed.Results {
		if result.Index < 0 || result.Index >= len(documents) {
			err = fmt.Errorf("%w: result index %d out of range for %d documents", ErrMalformedResponse, result.Index, len(documents))
			c.observeOperation("rerank", c.cfg.Model, time.Since(start), err, int64(len(documents)), nil)
			return nil, err
		}
	}

	c.observeOperation("rerank", c.cfg.Model, time.Since(start), nil, int64(len(documents)), map[string]interface{}{
		"top_n":         topN,
		"results":       len(parsed.Results),
		"prompt_tokens": parsed.Usage.PromptTokens,
		"total_tokens":  parsed.Usage.TotalTokens,
	})

	return parsed.Results, nil
}

// CompressDocuments reranks the given documents against the query and
// returns copies of the TopN most relevant ones in descending relevance
// order. The input documents are never mutated; each returned copy carries
// its relevance score in the document score slot and under the
// RelevanceScoreKey metadata key.
func (c *Client) CompressDocuments(ctx context.Context, documents []*schema.Document, query string) ([]*schema.Document, error) {
	return c.compressDocuments(ctx, documents, query, c.cfg.TopN)
}

func (c *Client) compressDocuments(ctx context.Context, documents []*schema.Document, query string, topN int) ([]*schema.Document, error) {
	if topN <= 0 {
		topN = c.cfg.TopN
	}

	if len(documents) == 0 {
		return []*schema.Document{}, nil
	}

	contents := make([]string, len(documents))
	for i, doc := range documents {
		contents[i] = doc.Content
	}

	results, err := c.Rerank(ctx, query, contents, topN)
	if err != nil {
		return nil, err
	}

	ranked := make([]*schema.Document, 0, len(results))
	for _, result := range results {
		doc := cloneDocument(documents[result.Index])
		doc.MetaData[RelevanceScoreKey] = result.RelevanceScore
		doc.WithScore(result.RelevanceScore)
		ranked = append(ranked, doc)
	}

	// Servers usually return results already ranked, but the contract is
	// enforced here regardless.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked, nil
}
