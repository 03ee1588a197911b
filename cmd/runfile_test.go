package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRunFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRunFile_AllFields(t *testing.T) {
	path := writeRunFile(t, `
spot: 120
strike: 110
maturity: 0.5
rate: 0.02
volatility: 0.35
paths: 5000
workers: 3
seed: 99
`)
	rf, err := LoadRunFile(path)
	require.NoError(t, err)

	assert.Equal(t, 120.0, *rf.Spot)
	assert.Equal(t, 110.0, *rf.Strike)
	assert.Equal(t, 0.5, *rf.Maturity)
	assert.Equal(t, 0.02, *rf.Rate)
	assert.Equal(t, 0.35, *rf.Volatility)
	assert.Equal(t, int64(5000), *rf.Paths)
	assert.Equal(t, 3, *rf.Workers)
	assert.Equal(t, int64(99), *rf.Seed)
}

func TestLoadRunFile_OmittedKeysStayNil(t *testing.T) {
	rf, err := LoadRunFile(writeRunFile(t, "volatility: 0.1\n"))
	require.NoError(t, err)
	assert.Nil(t, rf.Spot)
	assert.Nil(t, rf.Seed)
	require.NotNil(t, rf.Volatility)
	assert.Equal(t, 0.1, *rf.Volatility)
}

func TestLoadRunFile_UnknownFieldRejected(t *testing.T) {
	// typo: "volatilty"
	_, err := LoadRunFile(writeRunFile(t, "volatilty: 0.2\n"))
	assert.Error(t, err)
}

func TestLoadRunFile_MissingFile(t *testing.T) {
	_, err := LoadRunFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
