package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RawRow is one data row of a spreadsheet: cell display text keyed by
// column header, in the column order of the sheet.
type RawRow struct {
	headers []string
	values  map[string]string
}

// NewRawRow pairs headers with cells positionally. Missing trailing cells
// become empty strings; a repeated header keeps its first position and the
// last value.
func NewRawRow(headers, cells []string) RawRow {
	r := RawRow{values: make(map[string]string, len(headers))}
	for i, h := range headers {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		r.set(h, v)
	}
	return r
}

func (r *RawRow) set(header, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[header]; !exists {
		r.headers = append(r.headers, header)
	}
	r.values[header] = value
}

// Get returns the cell under header, matching exactly first and then
// case-insensitively.
func (r RawRow) Get(header string) (string, bool) {
	if v, ok := r.values[header]; ok {
		return v, true
	}
	for _, h := range r.headers {
		if strings.EqualFold(h, header) {
			return r.values[h], true
		}
	}
	return "", false
}

// Headers returns the row's headers in column order.
func (r RawRow) Headers() []string {
	out := make([]string, len(r.headers))
	copy(out, r.headers)
	return out
}

// MarshalJSON encodes the row as a JSON object keeping column order.
func (r RawRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, h := range r.headers {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[h])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping key order. Non-string
// scalars are kept as their literal text; null becomes an empty cell.
func (r *RawRow) UnmarshalJSON(data []byte) error {
	*r = RawRow{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("raw row: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("raw row: expected key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("raw row: value of %q: %w", key, err)
		}
		r.set(key, cellText(raw))
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func cellText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := string(bytes.TrimSpace(raw))
	if text == "null" {
		return ""
	}
	return text
}

// RowOutcome is the validation verdict for one spreadsheet row.
type RowOutcome struct {
	RowNumber int       `json:"row_number"`
	RawData   RawRow    `json:"raw_data"`
	Errors    []string  `json:"errors"`
	Action    RowAction `json:"action,omitempty"`
}

// Valid reports whether the row passed every field check.
func (o RowOutcome) Valid() bool { return len(o.Errors) == 0 }

// PreviewResult is the read-only classification of an uploaded sheet.
// Callers may hold it and later hand it back to Confirm unchanged.
type PreviewResult struct {
	TotalValid   int          `json:"total_valid"`
	TotalInvalid int          `json:"total_invalid"`
	TotalNew     int          `json:"total_new"`
	TotalUpdates int          `json:"total_updates"`
	ValidRows    []RowOutcome `json:"valid_rows"`
	InvalidRows  []RowOutcome `json:"invalid_rows"`
	ArchiveKey   string       `json:"archive_key,omitempty"`
}

// ConfirmResult aggregates the outcome of reconciling previewed rows.
type ConfirmResult struct {
	TotalRows int      `json:"total_rows"`
	Created   int      `json:"created"`
	Updated   int      `json:"updated"`
	Errors    []string `json:"errors"`
}

// RowError formats a per-row failure for ConfirmResult.Errors.
func RowError(rowNumber int, msg string) string {
	return fmt.Sprintf("row %d: %s", rowNumber, msg)
}
