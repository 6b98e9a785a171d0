package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnlearn/cnlearn/internal/database"
	"github.com/cnlearn/cnlearn/internal/database/vocabulary"
	"github.com/cnlearn/cnlearn/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()

	dbPath := "./test_importer_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewSilentDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func sampleFile() File {
	return File{
		Characters: []CharacterEntry{
			{Character: "鸦", Pinyin: "yā", Radical: "鸟", Frequency: 500,
				Etymology: &entities.Etymology{Type: "pictophonetic", Phonetic: "牙", Semantic: "鸟"}},
			{Character: "雀", Pinyin: "què", Radical: "隹", Frequency: 700},
		},
		Words: []WordEntry{
			{Simplified: "鸦雀无声", Traditional: "鴉雀無聲", PinyinAccent: "yā què wú shēng",
				Definitions: "silence reigns", Frequency: 120},
			{Simplified: "中国", Traditional: "中國", PinyinAccent: "Zhōng guó",
				Definitions: "China", Frequency: 50000},
		},
	}
}

func TestImport(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	stats, err := New(db.DB).Import(sampleFile())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Words)
	assert.Equal(t, 2, stats.Characters)
	// 鸦雀无声 links 鸦 and 雀; 无, 声, 中 and 国 have no character rows
	// and are silently skipped.
	assert.Equal(t, 2, stats.Links)
}

func TestImport_ComputesAssociations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := New(db.DB).Import(sampleFile())
	require.NoError(t, err)

	repo := vocabulary.NewRepository(db.DB)
	words, err := repo.GetWordsBySimplified([]string{"鸦雀无声"})
	require.NoError(t, err)
	require.Len(t, words, 1)

	glyphs := make([]string, 0, len(words[0].Characters))
	for _, character := range words[0].Characters {
		glyphs = append(glyphs, character.Character)
	}
	assert.ElementsMatch(t, []string{"鸦", "雀"}, glyphs)

	words, err = repo.GetWordsBySimplified([]string{"中国"})
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Empty(t, words[0].Characters)
}

func TestImport_PreservesEtymology(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := New(db.DB).Import(sampleFile())
	require.NoError(t, err)

	repo := vocabulary.NewRepository(db.DB)
	characters, err := repo.GetCharacters([]string{"鸦"}, false)
	require.NoError(t, err)
	require.Len(t, characters, 1)

	etymology := characters[0].Etymology.Data()
	assert.Equal(t, "pictophonetic", etymology.Type)
	assert.Equal(t, "牙", etymology.Phonetic)
}

func TestImport_RepeatedGlyphLinksOnce(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	file := File{
		Characters: []CharacterEntry{
			{Character: "天", Pinyin: "tiān", Radical: "大", Frequency: 900},
		},
		Words: []WordEntry{
			{Simplified: "天天", Traditional: "天天", PinyinAccent: "tiān tiān", Frequency: 300},
		},
	}

	stats, err := New(db.DB).Import(file)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Links)
}

func TestImportFile(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	raw, err := json.Marshal(sampleFile())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dictionary.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	stats, err := New(db.DB).ImportFile(path)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Words)
}

func TestImportFile_MissingFile(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := New(db.DB).ImportFile("./does-not-exist.json")

	assert.Error(t, err)
}
