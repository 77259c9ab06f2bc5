package rerank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
)

// postJSON sends an HTTP POST request to the rerank endpoint.
// It marshals the given body as JSON, attaches required headers,
// handles HTTP error codes, and decodes the response JSON into `out`.
// The raw response body is returned for diagnostics.
func (c *Client) postJSON(ctx context.Context, url string, body any, out any) ([]byte, error) {

	// Convert request payload into JSON bytes.
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	// Construct the HTTP POST request with context (supports cancellation & timeout).
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	// Add JSON header and bearer authentication, matching the SDK's headers.
	req.Header.Set("Content-Type", "application/json")
	if key := c.conn.APIKey(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	// Execute the HTTP request. Client timeout is configured on the connection.
	resp, err := c.conn.HTTP().Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// Treat any non-2xx status code as an error, surfacing the server's detail.
	if resp.StatusCode >= 300 {
		return raw, fmt.Errorf("http %d for %s: %s", resp.StatusCode, url, strings.TrimSpace(string(raw)))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return raw, fmt.Errorf("decode response: %w", err)
		}
	}

	return raw, nil
}

// cloneDocument copies a document so that reranking never mutates the
// caller's input. Metadata is copied one level deep, which covers the flat
// maps produced by loaders and retrievers.
func cloneDocument(doc *schema.Document) *schema.Document {
	clone := &schema.Document{
		ID:      doc.ID,
		Content: doc.Content,
	}

	clone.MetaData = make(map[string]any, len(doc.MetaData)+2)
	for k, v := range doc.MetaData {
		clone.MetaData[k] = v
	}

	return clone
}
