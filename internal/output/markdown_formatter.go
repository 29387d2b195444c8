package output

import (
	"bytes"
	"fmt"
	"strings"
)

// MarkdownFormatter renders GitHub-flavoured markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", doc.Title)
	for _, rep := range doc.Reports {
		fmt.Fprintf(&buf, "## %s\n\n", rep.Title)
		if rep.Error != "" {
			fmt.Fprintf(&buf, "> **Error:** %s\n\n", rep.Error)
			continue
		}

		for _, row := range rep.Highlights {
			fmt.Fprintf(&buf, "- **%s:** %s\n", row.Label, row.Value)
		}
		fmt.Fprintln(&buf)

		for _, section := range rep.Sections {
			fmt.Fprintf(&buf, "### %s\n\n", section.Title)
			if len(section.Rows) > 0 {
				fmt.Fprintln(&buf, "| Item | Value |")
				fmt.Fprintln(&buf, "|---|---:|")
				for _, row := range section.Rows {
					fmt.Fprintf(&buf, "| %s | %s |\n", escapeCell(row.Label), escapeCell(row.Value))
				}
				fmt.Fprintln(&buf)
			}
			if len(section.Columns) > 0 {
				fmt.Fprintf(&buf, "| %s |\n", strings.Join(section.Columns, " | "))
				fmt.Fprintf(&buf, "|%s\n", strings.Repeat("---:|", len(section.Columns)))
				for _, tr := range section.Table {
					cells := make([]string, len(tr))
					for i, c := range tr {
						cells[i] = escapeCell(c)
					}
					fmt.Fprintf(&buf, "| %s |\n", strings.Join(cells, " | "))
				}
				fmt.Fprintln(&buf)
			}
		}

		for _, w := range rep.Warnings {
			fmt.Fprintf(&buf, "> ⚠ %s\n\n", w)
		}
	}

	if len(doc.Assumptions) > 0 {
		fmt.Fprintln(&buf, "## Key assumptions")
		fmt.Fprintln(&buf)
		for _, a := range doc.Assumptions {
			fmt.Fprintf(&buf, "- %s\n", a)
		}
	}

	return buf.Bytes(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
