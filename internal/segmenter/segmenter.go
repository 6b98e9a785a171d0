// Package segmenter wraps the gse word segmenter behind the small surface
// the search service needs. The segmenter loads its dictionary once at
// construction and is safe for concurrent reads afterwards; construct it at
// startup and inject it, never lazily per request.
package segmenter

import (
	"github.com/go-ego/gse"
)

// Segmenter splits a Chinese string into plausible word-sized substrings.
type Segmenter struct {
	seg gse.Segmenter
}

// New loads the segmentation dictionaries. With no paths given the
// embedded simplified-Chinese dictionary is used. Loading is the expensive
// part; call this once per process.
func New(dictPaths ...string) (*Segmenter, error) {
	var s Segmenter
	var err error
	if len(dictPaths) > 0 {
		err = s.seg.LoadDict(dictPaths...)
	} else {
		err = s.seg.LoadDict()
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Cut returns the ordered token sequence for phrase. Tokens are substrings
// of the input; gse may emit empty or whitespace-only tokens at boundaries
// and callers are expected to deal with those.
func (s *Segmenter) Cut(phrase string) []string {
	return s.seg.Cut(phrase, true)
}
