package utils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/graftsas/internal/utils"
)

func TestSumSlice(t *testing.T) {
	assert.Equal(t, 6, utils.SumSlice([]int{1, 2, 3}))
	assert.Equal(t, 0., utils.SumSlice([]float64(nil)))
	assert.Equal(t, 1.75, utils.SumSlice([]float64{1, 0.5, 0.25}))
}

func TestIntersect(t *testing.T) {
	got := utils.Intersect([]string{"A", "nm"}, []string{"g/mol", "nm"})
	require.NotNil(t, got)
	assert.Equal(t, "nm", *got)
	assert.Nil(t, utils.Intersect([]string{"A"}, []string{"nm"}))
	assert.Equal(t, 3, utils.IntAbs(-3))
	assert.Equal(t, 3, utils.IntAbs(3))
}

func TestLinearGrid(t *testing.T) {
	qs, err := utils.LinearGrid(0, 0.5, 6)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5}, qs, 1e-15)

	_, err = utils.LinearGrid(0, 1, 1)
	assert.Error(t, err)
	_, err = utils.LinearGrid(-1, 1, 5)
	assert.Error(t, err)
	_, err = utils.LinearGrid(1, 1, 5)
	assert.Error(t, err)
}

func TestLogGrid(t *testing.T) {
	qs, err := utils.LogGrid(1e-3, 1, 4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1e-3, 1e-2, 1e-1, 1}, qs, 1e-12)

	_, err = utils.LogGrid(0, 1, 4)
	assert.Error(t, err)
}

type row struct {
	Q float64 `csv:"q"`
	I float64 `csv:"I"`
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, utils.WriteCSV(&buf, []row{{0.01, 2.5}, {0.02, 1.25}}))
	assert.Equal(t, "q,I\n0.01,2.5\n0.02,1.25\n", buf.String())
}

func TestCreateFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "curves")
	f, err := utils.CreateFile(true, dir, "a.csv")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = os.Stat(filepath.Join(dir, "a.csv"))
	assert.NoError(t, err)
}
