package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CityFile(t *testing.T) {
	assert.Equal(t, 0, run(filepath.Join("..", "..", "testdata", "cities.txt"), ""))
}

func TestRun_WrongExpectationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(path, []byte("!London\n"), 0o600))

	assert.Equal(t, 1, run(path, ""))
}

func TestLoadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\n\nParis\n!7up\n"), 0o600))

	entries, err := loadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, []entry{
		{lineNum: 3, raw: "Paris"},
		{lineNum: 4, raw: "7up", expectReject: true},
	}, entries)
}

func TestCheckGolden_DetectsDrift(t *testing.T) {
	rec := goldenRecord{}
	rec.Bundle.City = "LONDON"
	rec.Bundle.TemperatureF = 99

	p := checkGolden([]goldenRecord{rec})
	assert.False(t, p.passed())
}
