package embeddings

// chunkStrings splits texts into consecutive chunks of at most size elements.
// The final chunk may be shorter. Size must be positive.
func chunkStrings(texts []string, size int) [][]string {
	chunks := make([][]string, 0, (len(texts)+size-1)/size)
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, texts[start:end])
	}
	return chunks
}

// toFloat64 converts a wire-level float32 vector into the float64 vector
// shape used by the embedding component interface.
func toFloat64(embedding []float32) []float64 {
	vector := make([]float64, len(embedding))
	for i, v := range embedding {
		vector[i] = float64(v)
	}
	return vector
}
