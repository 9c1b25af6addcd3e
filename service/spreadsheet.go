package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// spreadsheetToCSV serializes the first sheet of a workbook as CSV.
// Rows are padded to the widest row so every line has the same column count.
func spreadsheetToCSV(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	return writeCSV(rows)
}

// normalizeCSV re-encodes an uploaded CSV file so quoting matches the
// workbook path. Ragged rows are allowed.
func normalizeCSV(data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read csv: %w", err)
	}
	return writeCSV(rows)
}

func writeCSV(rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return buf.String(), nil
}
