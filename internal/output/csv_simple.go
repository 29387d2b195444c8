package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter flattens a document to one row per reported value:
// scenario, section, label, value.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(doc *Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Scenario", "Section", "Label", "Value"}); err != nil {
		return nil, err
	}

	for _, rep := range doc.Reports {
		if rep.Error != "" {
			if err := w.Write([]string{rep.Title, "error", "", rep.Error}); err != nil {
				return nil, err
			}
			continue
		}
		for _, row := range rep.Highlights {
			if err := w.Write([]string{rep.Title, "summary", row.Label, row.Value}); err != nil {
				return nil, err
			}
		}
		for _, section := range rep.Sections {
			for _, row := range section.Rows {
				if err := w.Write([]string{rep.Title, section.Title, row.Label, row.Value}); err != nil {
					return nil, err
				}
			}
			// table rows are keyed by their first column
			for _, tr := range section.Table {
				for i := 1; i < len(tr) && i < len(section.Columns); i++ {
					if err := w.Write([]string{rep.Title, section.Title, tr[0] + " " + section.Columns[i], tr[i]}); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
