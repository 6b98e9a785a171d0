package search

import (
	"unicode/utf8"

	"github.com/cnlearn/cnlearn/internal/entities"
)

// WordSchema is the public shape of a dictionary word without its id or
// linked characters. Phrase results and the word lists attached to
// characters use this shape.
type WordSchema struct {
	Simplified     string `json:"simplified"`
	Traditional    string `json:"traditional"`
	PinyinNum      string `json:"pinyin_num"`
	PinyinAccent   string `json:"pinyin_accent"`
	PinyinClean    string `json:"pinyin_clean"`
	PinyinNoSpaces string `json:"pinyin_no_spaces"`
	AlsoWritten    string `json:"also_written"`
	AlsoPronounced string `json:"also_pronounced"`
	Classifiers    string `json:"classifiers"`
	Definitions    string `json:"definitions"`
	Frequency      int    `json:"frequency"`
}

// CharacterSchema is the public shape of a character without its id or
// linked words.
type CharacterSchema struct {
	Character     string              `json:"character"`
	Definition    *string             `json:"definition"`
	Pinyin        string              `json:"pinyin"`
	Decomposition *string             `json:"decomposition"`
	Etymology     *entities.Etymology `json:"etymology"`
	Radical       string              `json:"radical"`
	Matches       string              `json:"matches"`
	Frequency     int                 `json:"frequency"`
}

// WordOut is a full word result: the word fields plus id and linked
// characters.
type WordOut struct {
	WordSchema

	ID         uint              `json:"id"`
	Characters []CharacterSchema `json:"characters"`
}

// CharacterOut is a full character result: the character fields plus id
// and linked words. Words is always present in the output, empty when the
// caller did not ask for links.
type CharacterOut struct {
	CharacterSchema

	ID    uint         `json:"id"`
	Words []WordSchema `json:"words"`
}

// PhraseResult pairs the dictionary words found in a phrase with the
// segmentation tokens that matched nothing.
type PhraseResult struct {
	Words    []WordSchema `json:"words"`
	NotFound []string     `json:"not_found"`
}

func mapWordSchema(word entities.Word) (WordSchema, bool) {
	if word.Simplified == "" || word.Frequency <= 0 {
		return WordSchema{}, false
	}
	return WordSchema{
		Simplified:     word.Simplified,
		Traditional:    word.Traditional,
		PinyinNum:      word.PinyinNum,
		PinyinAccent:   word.PinyinAccent,
		PinyinClean:    word.PinyinClean,
		PinyinNoSpaces: word.PinyinNoSpaces,
		AlsoWritten:    word.AlsoWritten,
		AlsoPronounced: word.AlsoPronounced,
		Classifiers:    word.Classifiers,
		Definitions:    word.Definitions,
		Frequency:      word.Frequency,
	}, true
}

func mapCharacterSchema(character entities.Character) (CharacterSchema, bool) {
	if utf8.RuneCountInString(character.Character) != 1 ||
		utf8.RuneCountInString(character.Radical) != 1 ||
		character.Frequency <= 0 {
		return CharacterSchema{}, false
	}
	schema := CharacterSchema{
		Character:     character.Character,
		Definition:    optional(character.Definition),
		Pinyin:        character.Pinyin,
		Decomposition: optional(character.Decomposition),
		Radical:       character.Radical,
		Matches:       character.Matches,
		Frequency:     character.Frequency,
	}
	if etymology := character.Etymology.Data(); etymology != (entities.Etymology{}) {
		schema.Etymology = &etymology
	}
	return schema, true
}

func mapWordOut(word entities.Word) (WordOut, bool) {
	schema, ok := mapWordSchema(word)
	if !ok {
		return WordOut{}, false
	}
	out := WordOut{
		WordSchema: schema,
		ID:         word.ID,
		Characters: []CharacterSchema{},
	}
	for _, character := range word.Characters {
		characterSchema, ok := mapCharacterSchema(character)
		if !ok {
			return WordOut{}, false
		}
		out.Characters = append(out.Characters, characterSchema)
	}
	return out, true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
