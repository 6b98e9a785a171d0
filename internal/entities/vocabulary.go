package entities

import (
	"gorm.io/datatypes"
)

// Etymology describes how a character was formed. All fields are optional;
// many characters have no recorded etymology at all.
type Etymology struct {
	Semantic string `json:"semantic,omitempty"`
	Phonetic string `json:"phonetic,omitempty"`
	Hint     string `json:"hint,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Word is a dictionary entry keyed by its simplified form. The simplified
// form is indexed but intentionally not unique: CC-CEDICT style sources
// carry several entries for the same written form with different readings.
type Word struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Simplified     string `gorm:"index;size:50" json:"simplified"`
	Traditional    string `gorm:"size:50" json:"traditional"`
	PinyinNum      string `gorm:"size:150" json:"pinyin_num"`
	PinyinAccent   string `gorm:"size:100" json:"pinyin_accent"`
	PinyinClean    string `gorm:"size:100" json:"pinyin_clean"`
	PinyinNoSpaces string `gorm:"size:100" json:"pinyin_no_spaces"`
	AlsoWritten    string `gorm:"size:75" json:"also_written"`
	AlsoPronounced string `gorm:"size:75" json:"also_pronounced"`
	Classifiers    string `gorm:"size:25" json:"classifiers"`
	Definitions    string `gorm:"size:500" json:"definitions"`
	Frequency      int    `json:"frequency"`

	Characters []Character `gorm:"many2many:word_characters;" json:"characters,omitempty"`
}

// Character is a single-glyph dictionary entry.
type Character struct {
	ID            uint                           `gorm:"primaryKey" json:"id"`
	Character     string                         `gorm:"index;size:1" json:"character"`
	Definition    string                         `gorm:"size:150" json:"definition,omitempty"`
	Pinyin        string                         `gorm:"size:50" json:"pinyin"`
	Decomposition string                         `gorm:"size:15" json:"decomposition,omitempty"`
	Etymology     datatypes.JSONType[Etymology]  `json:"etymology,omitempty"`
	Radical       string                         `gorm:"size:1" json:"radical"`
	Matches       string                         `gorm:"size:300" json:"matches"`
	Frequency     int                            `json:"frequency"`

	Words []Word `gorm:"many2many:word_characters;" json:"words,omitempty"`
}

// WordCharacter is the join table between words and characters. Rows carry
// no identity beyond the pair itself; they are recomputed at import time by
// decomposing each word's simplified form into glyphs.
type WordCharacter struct {
	WordID      uint `gorm:"primaryKey" json:"word_id"`
	CharacterID uint `gorm:"primaryKey" json:"character_id"`
}

func (Word) TableName() string {
	return "words"
}

func (Character) TableName() string {
	return "characters"
}

func (WordCharacter) TableName() string {
	return "word_characters"
}
