package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"talentsync/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

const (
	rowColumn    = "Row"
	errorsColumn = "Errors"
)

// Writer wraps csv.Writer for exporting rejected spreadsheet rows. Each
// record is the sheet row number, the original cells under the given
// columns, and the row's validation messages joined by "; ".
type Writer struct {
	csv     *csv.Writer
	columns []string
}

// NewWriter creates a Writer that writes CSV to w using columns as the
// cell headers between the row number and errors columns.
func NewWriter(w io.Writer, columns []string) *Writer {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Writer{csv: csv.NewWriter(w), columns: cols}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	header := make([]string, 0, len(w.columns)+2)
	header = append(header, rowColumn)
	header = append(header, w.columns...)
	header = append(header, errorsColumn)
	return w.csv.Write(header)
}

// WriteOutcomes converts a batch of row outcomes to CSV records and writes them.
func (w *Writer) WriteOutcomes(outcomes []domain.RowOutcome) error {
	for i := range outcomes {
		if err := w.csv.Write(w.outcomeToRecord(&outcomes[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// outcomeToRecord lays out one outcome. Cells the row does not have are
// left empty.
func (w *Writer) outcomeToRecord(o *domain.RowOutcome) []string {
	record := make([]string, len(w.columns)+2)
	record[0] = strconv.Itoa(o.RowNumber)
	for i, col := range w.columns {
		v, _ := o.RawData.Get(col)
		record[i+1] = v
	}
	record[len(record)-1] = strings.Join(o.Errors, "; ")
	return record
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// RejectsFilename returns the report name for a source spreadsheet.
// Format: {sanitized_source_name}_rejects_{YYYY-MM-DD}.csv
func RejectsFilename(source string, now time.Time) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = "import"
	}
	return fmt.Sprintf("%s_rejects_%s.csv", sanitized, now.Format("2006-01-02"))
}
