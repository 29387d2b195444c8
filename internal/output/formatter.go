package output

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// Formatter renders a document in one output format
type Formatter interface {
	Name() string
	Format(doc *Document) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(doc *Document) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(doc *Document) ([]byte, error) { return f.F(doc) }

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	MarkdownFormatter{},
}

// GetFormatterByName returns the named formatter, or nil
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatters, sorted
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders doc and writes it to a timestamped file in the
// working directory, returning the file name
func WriteFormatted(f Formatter, doc *Document, ext string) (string, error) {
	data, err := f.Format(doc)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("retirement_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
