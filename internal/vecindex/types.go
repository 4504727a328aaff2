// Package vecindex stores precomputed candidate embeddings on disk so a
// match only ever embeds the query, not the whole catalog.
//
// An index directory holds three artifacts: index_manifest.json,
// candidates.jsonl, and a flat little-endian float32 vector file.
package vecindex

// Manifest describes an index and how to interpret its vector file.
type Manifest struct {
	IndexVersion  int    `json:"index_version"`
	CreatedAt     string `json:"created_at"`
	ModelID       string `json:"model_id"`
	Dim           int    `json:"dim"`
	Normalize     bool   `json:"normalize"`
	VectorFile    string `json:"vector_file"`
	CandidateFile string `json:"candidate_file"`
}

// Entry is one candidate row in candidates.jsonl. TextHash keys incremental
// rebuilds: an unchanged hash reuses the stored vector.
type Entry struct {
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	TextHash  string `json:"text_hash"`
	UpdatedAt string `json:"updated_at"`
}

// Index is a loaded candidate embedding index.
type Index struct {
	Manifest Manifest
	Entries  []Entry
	Vectors  []float32
}

// Vector returns the i-th candidate's vector as a slice into the flat array.
func (ix *Index) Vector(i int) []float32 {
	start := i * ix.Manifest.Dim
	return ix.Vectors[start : start+ix.Manifest.Dim]
}
