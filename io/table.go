package io

import (
	"bufio"
	"encoding/csv"
	"fmt"
	goio "io"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"
)

// WriteTable writes equal-length columns as a whitespace-separated text
// table. The header is written as a single '#' comment line, so the file can
// be read back with ReadTable.
func WriteTable(w goio.Writer, header []string, cols ...[]float64) error {
	n, err := checkColumns(header, cols)
	if err != nil { return err }

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", strings.Join(header, " "))
	for i := 0; i < n; i++ {
		for j := range cols {
			if j > 0 { bw.WriteByte(' ') }
			fmt.Fprintf(bw, "%16.10g", cols[j][i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteCSV writes equal-length columns as a comma-separated table with a
// header row.
func WriteCSV(w goio.Writer, header []string, cols ...[]float64) error {
	n, err := checkColumns(header, cols)
	if err != nil { return err }

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil { return err }

	record := make([]string, len(cols))
	for i := 0; i < n; i++ {
		for j := range cols {
			record[j] = strconv.FormatFloat(cols[j][i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil { return err }
	}

	cw.Flush()
	return cw.Error()
}

func checkColumns(header []string, cols [][]float64) (int, error) {
	if len(header) != len(cols) {
		return 0, fmt.Errorf(
			"Given %d column names for %d columns.", len(header), len(cols),
		)
	} else if len(cols) == 0 {
		return 0, fmt.Errorf("No columns given.")
	}

	n := len(cols[0])
	for j := range cols {
		if len(cols[j]) != n {
			return 0, fmt.Errorf(
				"Column '%s' has length %d, but column '%s' has length %d.",
				header[j], len(cols[j]), header[0], n,
			)
		}
	}
	return n, nil
}

// WriteTableFile writes a text table to fname, see WriteTable.
func WriteTableFile(fname string, header []string, cols ...[]float64) error {
	return writeFile(fname, func(w goio.Writer) error {
		return WriteTable(w, header, cols...)
	})
}

// WriteCSVFile writes a CSV table to fname, see WriteCSV.
func WriteCSVFile(fname string, header []string, cols ...[]float64) error {
	return writeFile(fname, func(w goio.Writer) error {
		return WriteCSV(w, header, cols...)
	})
}

func writeFile(fname string, write func(goio.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil { return err }
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadTable reads the first n columns of a text table written by WriteTable.
func ReadTable(fname string, n int) ([][]float64, error) {
	colIdxs := make([]int, n)
	for i := range colIdxs { colIdxs[i] = i }
	return table.ReadTable(fname, colIdxs, nil)
}
