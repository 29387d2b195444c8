package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders a plain-text report for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, strings.ToUpper(doc.Title))
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)

	for i, rep := range doc.Reports {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, rep.Title)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		if rep.Error != "" {
			fmt.Fprintf(&buf, "  ERROR: %s\n\n", rep.Error)
			continue
		}

		writeRows(&buf, rep.Highlights)
		fmt.Fprintln(&buf)

		for _, section := range rep.Sections {
			fmt.Fprintln(&buf, strings.ToUpper(section.Title)+":")
			writeRows(&buf, section.Rows)
			if len(section.Columns) > 0 {
				writeTable(&buf, section.Columns, section.Table)
			}
			fmt.Fprintln(&buf)
		}

		for _, w := range rep.Warnings {
			fmt.Fprintf(&buf, "  WARNING: %s\n", w)
		}
		if len(rep.Warnings) > 0 {
			fmt.Fprintln(&buf)
		}
	}

	if len(doc.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range doc.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}

	return buf.Bytes(), nil
}

func writeRows(buf *bytes.Buffer, rows []Row) {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(buf, "  %-*s  %s\n", width+1, r.Label+":", r.Value)
	}
}

func writeTable(buf *bytes.Buffer, columns []string, table [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range table {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		fmt.Fprintf(buf, "  %s\n", strings.Join(parts, "  "))
	}

	line(columns)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	fmt.Fprintf(buf, "  %s\n", strings.Repeat("-", total-2))
	for _, row := range table {
		line(row)
	}
}
