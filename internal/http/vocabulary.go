package http

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/cnlearn/cnlearn/internal/search"
)

const maxSimplifiedWordsPerQuery = 10

// SearchService defines the dictionary queries the controller exposes.
type SearchService interface {
	SearchWords(simplifiedForms []string) ([]search.WordOut, error)
	SearchCharacters(characters []string, includeWords bool) ([]search.CharacterOut, error)
	SearchPhrase(phrase string) (*search.PhraseResult, error)
}

// VocabularyController serves the dictionary search endpoints.
type VocabularyController struct {
	service SearchService
}

func NewVocabularyController(service SearchService) *VocabularyController {
	return &VocabularyController{service: service}
}

// GetWords looks up 1 to 10 simplified forms.
// GET /vocabulary/get-words?simplified_words=鸦雀无声&simplified_words=中国
func (vc *VocabularyController) GetWords(c *gin.Context) {
	forms := c.QueryArray("simplified_words")
	if len(forms) == 0 {
		respondBadRequest(c, "At least one simplified_words value is required")
		return
	}
	if len(forms) > maxSimplifiedWordsPerQuery {
		respondBadRequest(c, "At most 10 simplified_words values are allowed")
		return
	}

	words, err := vc.service.SearchWords(forms)
	if err != nil {
		respondAppError(c, err, "get words")
		return
	}
	c.JSON(http.StatusOK, words)
}

// GetCharacters looks up single glyphs, optionally with their word links.
// GET /vocabulary/get-characters?characters=鸦&include_words=true
func (vc *VocabularyController) GetCharacters(c *gin.Context) {
	characters := c.QueryArray("characters")
	if len(characters) == 0 {
		respondBadRequest(c, "At least one characters value is required")
		return
	}
	for _, character := range characters {
		if utf8.RuneCountInString(character) != 1 {
			respondBadRequest(c, "Each characters value must be a single character")
			return
		}
	}

	includeWords := false
	if raw := c.Query("include_words"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondBadRequest(c, "include_words must be a boolean")
			return
		}
		includeWords = parsed
	}

	results, err := vc.service.SearchCharacters(characters, includeWords)
	if err != nil {
		respondAppError(c, err, "get characters")
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchPhrase decomposes a phrase into dictionary words.
// GET /vocabulary/search-phrase?phrase=...
func (vc *VocabularyController) SearchPhrase(c *gin.Context) {
	phrase := c.Query("phrase")
	if phrase == "" {
		respondBadRequest(c, "phrase is required")
		return
	}

	result, err := vc.service.SearchPhrase(phrase)
	if err != nil {
		respondAppError(c, err, "search phrase")
		return
	}
	c.JSON(http.StatusOK, result)
}
