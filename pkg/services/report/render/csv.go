package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fin-tools/pocket-ledger/pkg/models/domain"
)

const contentTypeCSV = "text/csv"

type csvRenderer struct{}

func NewCSVRenderer() Renderer {
	return &csvRenderer{}
}

// Render flattens the report into comma-separated rows grouped by
// section. Titles, headers and values are textually identical to the
// other renderers' labels, so the three formats can be diffed directly.
func (r *csvRenderer) Render(data domain.ReportData) (*Document, error) {
	content, err := buildSections(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{content.Title},
		{content.Period},
		{},
		{"Summary"},
	}
	for _, c := range content.Cards {
		row := []string{c.Label, c.Value}
		if c.Subtext != "" {
			row = append(row, c.Subtext)
		}
		rows = append(rows, row)
	}

	for _, t := range content.Tables {
		rows = append(rows, []string{}, []string{t.Title})
		if len(t.Rows) == 0 {
			rows = append(rows, []string{t.EmptyNote})
			continue
		}
		rows = append(rows, t.Headers)
		rows = append(rows, t.Rows...)
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return &Document{
		Bytes:       buf.Bytes(),
		Filename:    baseFilename(data) + ".csv",
		ContentType: contentTypeCSV,
	}, nil
}
