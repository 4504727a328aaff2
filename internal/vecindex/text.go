package vecindex

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/skillscout/skillscout/internal/catalog"
)

// CanonicalText returns the text a candidate's vector is computed from:
// description plus tags. Changing either invalidates the stored vector via
// the text hash.
func CanonicalText(c catalog.Candidate) string {
	parts := []string{
		"description: " + strings.TrimSpace(c.Description),
	}
	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tags[i] = string(t)
		}
		parts = append(parts, "tags: "+strings.Join(tags, ", "))
	}
	return strings.Join(parts, "\n")
}

// TextHash returns a sha256 hash (hex) of the canonical text.
func TextHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}
