// Package search implements dictionary lookups: exact word search, exact
// character search and phrase decomposition via word segmentation.
package search

import (
	"sort"
	"strings"

	"github.com/cnlearn/cnlearn/internal/apperr"
	"github.com/cnlearn/cnlearn/internal/entities"
)

// VocabularyStore defines the batched lookups the search service needs.
type VocabularyStore interface {
	GetWordsBySimplified(forms []string) ([]entities.Word, error)
	GetCharacters(chars []string, includeWords bool) ([]entities.Character, error)
}

// Tokenizer segments a phrase into an ordered sequence of substrings.
type Tokenizer interface {
	Cut(phrase string) []string
}

// Service answers the three dictionary query shapes. It holds no state of
// its own; every call re-reads from the store.
type Service struct {
	store     VocabularyStore
	tokenizer Tokenizer
}

func NewService(store VocabularyStore, tokenizer Tokenizer) *Service {
	return &Service{store: store, tokenizer: tokenizer}
}

// SearchWords looks up every given simplified form and returns the matching
// words with their linked characters. Forms with no match are simply absent
// from the result.
func (s *Service) SearchWords(simplifiedForms []string) ([]WordOut, error) {
	words, err := s.store.GetWordsBySimplified(simplifiedForms)
	if err != nil {
		return nil, err
	}
	results := make([]WordOut, 0, len(words))
	for _, word := range words {
		out, ok := mapWordOut(word)
		if !ok {
			return nil, apperr.Internal("There is something wrong with the words.")
		}
		results = append(results, out)
	}
	return results, nil
}

// SearchCharacters looks up the given glyphs. When includeWords is false
// the word list of every result is forced to empty so the output shape
// stays stable regardless of the loading strategy.
func (s *Service) SearchCharacters(characters []string, includeWords bool) ([]CharacterOut, error) {
	characterRows, err := s.store.GetCharacters(characters, includeWords)
	if err != nil {
		return nil, err
	}
	results := make([]CharacterOut, 0, len(characterRows))
	for _, row := range characterRows {
		schema, ok := mapCharacterSchema(row)
		if !ok {
			return nil, apperr.Internal("There is something wrong with the characters.")
		}
		out := CharacterOut{
			CharacterSchema: schema,
			ID:              row.ID,
			Words:           []WordSchema{},
		}
		if includeWords {
			for _, word := range row.Words {
				wordSchema, ok := mapWordSchema(word)
				if !ok {
					return nil, apperr.Internal("There is something wrong with the characters.")
				}
				out.Words = append(out.Words, wordSchema)
			}
		}
		results = append(results, out)
	}
	return results, nil
}

// SearchPhrase segments phrase, looks every distinct token up in one
// batched query and reconciles the result: tokens whose simplified form
// matched nothing are reported as not found. The segmenter's own notion of
// word validity is irrelevant here; only actual lookup results decide what
// counts as a miss. Empty and whitespace-only tokens are segmentation
// boundary artifacts and are dropped from the not-found list.
func (s *Service) SearchPhrase(phrase string) (*PhraseResult, error) {
	tokens := s.tokenizer.Cut(phrase)

	distinct := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		distinct[token] = struct{}{}
	}
	forms := make([]string, 0, len(distinct))
	for token := range distinct {
		forms = append(forms, token)
	}

	words, err := s.store.GetWordsBySimplified(forms)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(words))
	results := make([]WordSchema, 0, len(words))
	for _, word := range words {
		schema, ok := mapWordSchema(word)
		if !ok {
			return nil, apperr.Internal("There is something wrong with the words.")
		}
		found[word.Simplified] = struct{}{}
		results = append(results, schema)
	}

	notFound := make([]string, 0)
	for token := range distinct {
		if _, ok := found[token]; ok {
			continue
		}
		if strings.TrimSpace(token) == "" {
			continue
		}
		notFound = append(notFound, token)
	}
	// Token order is lost at deduplication; sort for a stable response.
	sort.Strings(notFound)

	return &PhraseResult{Words: results, NotFound: notFound}, nil
}
