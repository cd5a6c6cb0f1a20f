package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mizuchii42/monster-toram/internal/boss"
	"github.com/Mizuchii42/monster-toram/internal/storage"
	bosserr "github.com/Mizuchii42/monster-toram/pkg/errors"
)

func TestLoadFile_NotFound(t *testing.T) {
	_, err := storage.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, bosserr.CodeInputNotFound, bosserr.CodeOf(err))
}

func TestLoadFile_Directory(t *testing.T) {
	_, err := storage.LoadFile(t.TempDir())
	assert.Equal(t, bosserr.CodeInputUnreadable, bosserr.CodeOf(err))
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bos.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0644))

	_, err := storage.LoadFile(path)
	assert.Equal(t, bosserr.CodeMalformedInput, bosserr.CodeOf(err))
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bos.json")
	out := filepath.Join(dir, "boss.json")
	require.NoError(t, os.WriteFile(in, []byte(`[{"name": "Goblin King(Easy)", "hp": 100}]`), 0644))

	records, err := storage.LoadFile(in)
	require.NoError(t, err)
	groups := boss.Transform(records)
	require.NoError(t, storage.SaveFile(out, groups, storage.FormatJSON))

	back, err := storage.LoadGroupedFile(out)
	require.NoError(t, err)
	assert.Equal(t, groups, back)
}

func TestSaveFile_JSONL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "boss.jsonl")
	require.NoError(t, storage.SaveFile(out, sampleGroups(t), storage.FormatJSONL))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}

func TestSaveFile_BadDestination(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "boss.json")
	err := storage.SaveFile(out, nil, storage.FormatJSON)
	assert.Equal(t, bosserr.CodeOutputWrite, bosserr.CodeOf(err))
}

func TestParseFormat(t *testing.T) {
	f, err := storage.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, storage.FormatJSON, f)

	f, err = storage.ParseFormat("jsonl")
	require.NoError(t, err)
	assert.Equal(t, storage.FormatJSONL, f)

	_, err = storage.ParseFormat("yaml")
	assert.Error(t, err)
}
