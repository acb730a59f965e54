package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

func TestIndexCmd_RequiresACorpusDir(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"index"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--addons-dir")
}

func TestIndexCmd_BuildsFromBothDirs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := &mockIndexService{count: 42}
	indexService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"index", "--addons-dir", "/tmp/addons", "--spectrum-dir", "/tmp/swc"})
	defer func() {
		rootCmd.SetArgs(nil)
		indexAddonsDir = ""
		indexSpectrumDir = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed 42 items from 2 corpora.")

	require.Len(t, mock.corpora, 2)
	assert.Equal(t, domain.DataSourceAddOns, mock.corpora[0].Source)
	assert.Equal(t, "src/pages", mock.corpora[0].BasePath)
	assert.Equal(t, domain.DataSourceSpectrum, mock.corpora[1].Source)
	assert.Equal(t, "packages", mock.corpora[1].BasePath)
}
