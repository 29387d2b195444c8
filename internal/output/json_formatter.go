package output

import (
	"encoding/json"
)

// JSONFormatter renders the document, raw results included, as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
