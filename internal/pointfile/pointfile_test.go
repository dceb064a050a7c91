package pointfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/cluster.report/internal/cluster"
)

func TestLoad(t *testing.T) {
	input := "40 86 663\n43 747 938\n47 285 973\n"

	col, err := Load(strings.NewReader(input), cluster.DefaultGrowthChunk)
	require.NoError(t, err)

	require.Equal(t, 3, col.Len())
	assert.Equal(t, 3, col.TotalPoints())

	// One singleton per line, in input order.
	wantIDs := []int{40, 43, 47}
	for i, id := range wantIDs {
		c := col.At(i)
		require.Equal(t, 1, c.Len(), "cluster %d", i)
		assert.Equal(t, id, c.At(0).ID)
	}
	assert.Equal(t, 86.0, col.At(0).At(0).X())
	assert.Equal(t, 663.0, col.At(0).At(0).Y())
}

func TestLoad_BlankLinesAndFloats(t *testing.T) {
	input := "1 0.5 -2.25\n\n   \n2 -0.125 3\n"

	col, err := Load(strings.NewReader(input), cluster.DefaultGrowthChunk)
	require.NoError(t, err)

	require.Equal(t, 2, col.Len())
	assert.Equal(t, 0.5, col.At(0).At(0).X())
	assert.Equal(t, -2.25, col.At(0).At(0).Y())
	assert.Equal(t, 2, col.At(1).At(0).ID)
}

func TestLoad_Empty(t *testing.T) {
	col, err := Load(strings.NewReader(""), cluster.DefaultGrowthChunk)
	require.NoError(t, err)
	assert.Equal(t, 0, col.Len())
}

func TestLoad_MalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"missing field", "1 2\n", "line 1"},
		{"extra field", "1 2 3 4\n", "line 1"},
		{"bad id", "x 2 3\n", "invalid id"},
		{"bad x", "1 x 3\n", "invalid x"},
		{"bad y", "1 2 x\n", "invalid y"},
		{"second line bad", "1 2 3\nbroken\n", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), cluster.DefaultGrowthChunk)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 0 0\n2 10 0\n"), 0o600))

	col, err := LoadFile(path, cluster.DefaultGrowthChunk)
	require.NoError(t, err)
	assert.Equal(t, 2, col.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"), cluster.DefaultGrowthChunk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening point file")
}
