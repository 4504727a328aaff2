package match

import "errors"

// ErrDuplicateCandidate indicates the catalog violated the unique-name
// contract. Silently picking one entry would hide a caller bug, so the whole
// match fails before any scoring output is produced.
var ErrDuplicateCandidate = errors.New("duplicate candidate name in catalog")
