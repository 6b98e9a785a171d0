// Package importer loads dictionary data in bulk and (re)computes the
// word-character association table. It runs offline via the
// import-dictionary command, never at request time.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cnlearn/cnlearn/internal/entities"
)

// File is the on-disk import format: one JSON document holding both
// entity lists. Either list may be empty.
type File struct {
	Words      []WordEntry      `json:"words"`
	Characters []CharacterEntry `json:"characters"`
}

type WordEntry struct {
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

type CharacterEntry struct {
	Character     string              `json:"character"`
	Definition    string              `json:"definition"`
	Pinyin        string              `json:"pinyin"`
	Decomposition string              `json:"decomposition"`
	Etymology     *entities.Etymology `json:"etymology"`
	Radical       string              `json:"radical"`
	Matches       string              `json:"matches"`
	Frequency     int                 `json:"frequency"`
}

// Stats reports what an import run created.
type Stats struct {
	Words      int
	Characters int
	Links      int
}

// Importer writes dictionary rows and association links.
type Importer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// ImportFile reads a JSON dictionary file and imports its contents.
func (i *Importer) ImportFile(path string) (*Stats, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file: %w", err)
	}
	return i.Import(file)
}

// Import creates characters first, then words, then links each word to the
// character rows its simplified form decomposes into. Glyphs with no
// character row are silently skipped.
func (i *Importer) Import(file File) (*Stats, error) {
	stats := &Stats{}

	for _, entry := range file.Characters {
		character := entities.Character{
			Character:     entry.Character,
			Definition:    entry.Definition,
			Pinyin:        entry.Pinyin,
			Decomposition: entry.Decomposition,
			Radical:       entry.Radical,
			Matches:       entry.Matches,
			Frequency:     entry.Frequency,
		}
		if entry.Etymology != nil {
			character.Etymology = datatypes.NewJSONType(*entry.Etymology)
		}
		if err := i.db.Create(&character).Error; err != nil {
			return nil, fmt.Errorf("failed to create character %q: %w", entry.Character, err)
		}
		stats.Characters++
	}

	for _, entry := range file.Words {
		word := entities.Word{
			Simplified:     entry.Simplified,
			Traditional:    entry.Traditional,
			PinyinNum:      entry.PinyinNum,
			PinyinAccent:   entry.PinyinAccent,
			PinyinClean:    entry.PinyinClean,
			PinyinNoSpaces: entry.PinyinNoSpaces,
			AlsoWritten:    entry.AlsoWritten,
			AlsoPronounced: entry.AlsoPronounced,
			Classifiers:    entry.Classifiers,
			Definitions:    entry.Definitions,
			Frequency:      entry.Frequency,
		}
		if err := i.db.Create(&word).Error; err != nil {
			return nil, fmt.Errorf("failed to create word %q: %w", entry.Simplified, err)
		}
		stats.Words++

		links, err := i.linkCharacters(&word)
		if err != nil {
			return nil, err
		}
		stats.Links += links
	}

	logrus.WithFields(logrus.Fields{
		"words":      stats.Words,
		"characters": stats.Characters,
		"links":      stats.Links,
	}).Info("dictionary import finished")
	return stats, nil
}

// linkCharacters decomposes the word's simplified form into glyphs and
// appends an association for every glyph that has a character row.
func (i *Importer) linkCharacters(word *entities.Word) (int, error) {
	seen := make(map[rune]struct{})
	glyphs := make([]string, 0, len(word.Simplified))
	for _, r := range word.Simplified {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		glyphs = append(glyphs, string(r))
	}
	if len(glyphs) == 0 {
		return 0, nil
	}

	var characters []entities.Character
	err := i.db.Where(map[string]any{"character": glyphs}).Find(&characters).Error
	if err != nil {
		return 0, fmt.Errorf("failed to look up characters for %q: %w", word.Simplified, err)
	}
	if len(characters) == 0 {
		return 0, nil
	}

	if err := i.db.Model(word).Association("Characters").Append(&characters); err != nil {
		return 0, fmt.Errorf("failed to link characters for %q: %w", word.Simplified, err)
	}
	return len(characters), nil
}
