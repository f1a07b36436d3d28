package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteTable(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteTable(buf, []string{"a", "b"}, []float64{1, 2}, []float64{3, 4.5})
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "# a b", lines[0])
	assert.Equal(t, []string{"1", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "4.5"}, strings.Fields(lines[2]))
}

func TestWriteCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteCSV(buf, []string{"x", "y"}, []float64{0.25, 1e-40}, []float64{-1, 8})
	assert.Nil(t, err)
	assert.Equal(t, "x,y\n0.25,-1\n1e-40,8\n", buf.String())
}

func TestColumnMismatch(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NotNil(t, WriteTable(buf, []string{"a"}, []float64{1}, []float64{2}))
	assert.NotNil(t, WriteCSV(buf, []string{"a", "b"}, []float64{1}, []float64{}))
	assert.NotNil(t, WriteTable(buf, nil))
}

func TestTableRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "table.txt")
	xs := []float64{1.001, 1.5, 10}
	ys := []float64{22.37, 1.3416407865, 1.0050378153}
	zs := []float64{4.1e-43, 7.2e-44, 5.4e-44}

	err := WriteTableFile(fname, []string{"x", "y", "z"}, xs, ys, zs)
	assert.Nil(t, err)

	cols, err := ReadTable(fname, 3)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(cols))
	for j, want := range [][]float64{xs, ys, zs} {
		assert.Equal(t, len(want), len(cols[j]))
		for i := range want {
			assert.InEpsilon(t, want[i], cols[j][i], 1e-9, "col %d row %d", j, i)
		}
	}
}
