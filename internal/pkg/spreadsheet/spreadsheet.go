// Package spreadsheet turns an uploaded .csv or .xlsx file into CSV text for
// the importers.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoSheets            = errors.New("workbook has no sheets")
)

// ToCSVText reads r according to the extension of filename. CSV is passed
// through; for XLSX the first sheet is converted.
func ToCSVText(filename string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read csv: %w", err)
		}
		// Spreadsheet tools often prepend a UTF-8 byte order mark.
		return strings.TrimPrefix(string(data), "\ufeff"), nil
	case ".xlsx":
		return xlsxToCSV(r)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, filepath.Ext(filename))
	}
}

func xlsxToCSV(r io.Reader) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.String(), nil
}
