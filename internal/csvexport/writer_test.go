package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentsync/internal/domain"
)

var testColumns = []string{"Documento", "Nombres", "Correo"}

func readAll(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, testColumns)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	records := readAll(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Row", "Documento", "Nombres", "Correo", "Errors"}, records[0])
}

func TestWriteOutcomes(t *testing.T) {
	outcomes := []domain.RowOutcome{
		{
			RowNumber: 4,
			RawData:   domain.NewRawRow(testColumns, []string{"1020", "", "no-es-correo"}),
			Errors:    []string{"Nombres is required", `Correo: invalid email "no-es-correo"`},
		},
		{
			RowNumber: 9,
			RawData:   domain.NewRawRow([]string{"documento"}, []string{"77"}),
			Errors:    []string{"row is missing columns: Nombres, Correo"},
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf, testColumns)
	require.NoError(t, w.WriteOutcomes(outcomes))
	w.Flush()
	require.NoError(t, w.Error())

	records := readAll(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"4", "1020", "", "no-es-correo",
		`Nombres is required; Correo: invalid email "no-es-correo"`,
	}, records[0])
	// Headers match case-insensitively; absent cells stay empty.
	assert.Equal(t, []string{"9", "77", "", "", "row is missing columns: Nombres, Correo"}, records[1])
}

func TestWriteOutcomes_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, testColumns)
	require.NoError(t, w.WriteOutcomes(nil))
	w.Flush()
	assert.Empty(t, buf.String())
}

func TestNewWriter_CopiesColumns(t *testing.T) {
	cols := []string{"A", "B"}
	var buf bytes.Buffer
	w := NewWriter(&buf, cols)
	cols[0] = "Z"

	require.NoError(t, w.WriteHeader())
	w.Flush()
	assert.Equal(t, []string{"Row", "A", "B", "Errors"}, readAll(t, &buf)[0])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Planta de personal", "Planta_de_personal"},
		{"special chars", "Nómina 2024 / Q3 (Oct–Dic)", "N_mina_2024_Q3_Oct_Dic"},
		{"hyphens and underscores preserved", "planta-2025_v2", "planta-2025_v2"},
		{"consecutive underscores collapsed", "planta___personal", "planta_personal"},
		{"leading/trailing cleaned", "  hola  ", "hola"},
		{
			"long name truncated",
			"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-extra",
			"abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrstuvwxyz-abcdefghijklmnopqrs",
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestRejectsFilename(t *testing.T) {
	day := time.Date(2024, 7, 9, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "Planta_personal_rejects_2024-07-09.csv", RejectsFilename("/tmp/uploads/Planta personal.xlsx", day))
	assert.Equal(t, "import_rejects_2024-07-09.csv", RejectsFilename("---.xlsx", day))
}
