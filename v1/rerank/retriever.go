package rerank

import (
	"context"

	"github.com/cloudwego/eino/components/retriever"
	"github.com/cloudwego/eino/schema"
)

// Retriever decorates an eino retriever with reranking. Candidates fetched
// from the wrapped retriever are scored against the query and only the most
// relevant ones are returned.
type Retriever struct {
	base   retriever.Retriever
	client *Client
}

var _ retriever.Retriever = (*Retriever)(nil)

// NewRetriever wraps base so that every Retrieve call reranks its results
// through the given client.
func NewRetriever(base retriever.Retriever, client *Client) *Retriever {
	return &Retriever{base: base, client: client}
}

// Retrieve fetches candidates from the wrapped retriever and returns them
// reranked in descending relevance order.
//
// Options are forwarded to the wrapped retriever unchanged. In addition,
// retriever.WithTopK overrides how many documents survive the rerank cut,
// and retriever.WithScoreThreshold drops documents scoring below the
// threshold.
func (r *Retriever) Retrieve(ctx context.Context, query string, opts ...retriever.Option) ([]*schema.Document, error) {
	options := retriever.GetCommonOptions(&retriever.Options{}, opts...)

	candidates, err := r.base.Retrieve(ctx, query, opts...)
	if err != nil {
		return nil, err
	}

	topN := r.client.TopN()
	if options.TopK != nil && *options.TopK > 0 {
		topN = *options.TopK
	}

	ranked, err := r.client.compressDocuments(ctx, candidates, query, topN)
	if err != nil {
		return nil, err
	}

	if options.ScoreThreshold != nil {
		kept := ranked[:0]
		for _, doc := range ranked {
			if doc.Score() >= *options.ScoreThreshold {
				kept = append(kept, doc)
			}
		}
		ranked = kept
	}

	return ranked, nil
}

// GetType returns the component type name exposed to eino graph tooling.
func (r *Retriever) GetType() string {
	return typ
}
