package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"talentsync/internal/domain"
)

type report struct {
	Source  string                `json:"source"`
	Preview *domain.PreviewResult `json:"preview"`
	Confirm *domain.ConfirmResult `json:"confirm,omitempty"`
}

func (r report) writeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r report) writeText(w io.Writer) error {
	var b strings.Builder
	p := r.Preview

	fmt.Fprintf(&b, "%s\n", r.Source)
	fmt.Fprintf(&b, "  valid:   %d (new %d, updates %d)\n", p.TotalValid, p.TotalNew, p.TotalUpdates)
	fmt.Fprintf(&b, "  invalid: %d\n", p.TotalInvalid)
	if p.ArchiveKey != "" {
		fmt.Fprintf(&b, "  archived as %s\n", p.ArchiveKey)
	}
	for _, o := range p.InvalidRows {
		fmt.Fprintf(&b, "  %s\n", domain.RowError(o.RowNumber, strings.Join(o.Errors, "; ")))
	}

	if c := r.Confirm; c != nil {
		fmt.Fprintf(&b, "applied %d rows: created %d, updated %d, failed %d\n",
			c.TotalRows, c.Created, c.Updated, len(c.Errors))
		for _, e := range c.Errors {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	} else if p.TotalValid > 0 {
		b.WriteString("dry run; pass --confirm to apply the valid rows\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
