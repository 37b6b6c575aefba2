// Package spreadsheet extracts the header row and data rows of the first
// worksheet of an .xlsx workbook as display text.
package spreadsheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"talentsync/internal/domain"
)

// Row is one data row with its 1-based sheet row number (the header is row 1).
type Row struct {
	Number int
	Data   domain.RawRow
}

// Sheet is the tabular content of a workbook's first worksheet.
type Sheet struct {
	Name    string
	Headers []string
	Rows    []Row
}

// Read loads a workbook from r. Every cell is taken as its formatted
// display text, so dates and numbers arrive exactly as a user sees them
// in Excel; interpretation is left to the caller. Rows with no text in
// any column are skipped without renumbering the rest.
func Read(r io.Reader) (*Sheet, error) {
	if r == nil {
		return nil, &domain.EmptyInputError{Reason: "no file"}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableSpreadsheet, err)
	}
	if len(data) == 0 {
		return nil, &domain.EmptyInputError{Reason: "file has no content"}
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableSpreadsheet, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.EmptyInputError{Reason: "workbook has no worksheets"}
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", domain.ErrUnreadableSpreadsheet, name, err)
	}
	if len(rows) == 0 {
		return nil, &domain.EmptyInputError{Reason: "worksheet has no header row"}
	}

	headers, cols := headerColumns(rows[0])
	if len(headers) == 0 {
		return nil, &domain.EmptyInputError{Reason: "worksheet has no header row"}
	}

	sheet := &Sheet{Name: name, Headers: headers}
	for i := 1; i < len(rows); i++ {
		cells := pick(rows[i], cols)
		if blank(cells) {
			continue
		}
		sheet.Rows = append(sheet.Rows, Row{
			Number: i + 1,
			Data:   domain.NewRawRow(headers, cells),
		})
	}
	return sheet, nil
}

// headerColumns returns the trimmed, non-blank headers and the column
// index each came from.
func headerColumns(row []string) (headers []string, cols []int) {
	for i, cell := range row {
		h := strings.TrimSpace(cell)
		if h == "" {
			continue
		}
		headers = append(headers, h)
		cols = append(cols, i)
	}
	return headers, cols
}

func pick(row []string, cols []int) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		if c < len(row) {
			out[i] = row[c]
		}
	}
	return out
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
