// Package export serialises map documents to interchange formats.
package export

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"tableflip.dev/jmap/pkg/journey"
)

// ErrInvalidFile is returned when an imported blob is not a journey map.
var ErrInvalidFile = errors.New("export: not a valid journey map file")

var whitespace = regexp.MustCompile(`\s+`)

// JSON renders the document as an indented JSON blob mirroring the data
// model.
func JSON(doc journey.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ImportJSON parses a blob produced by JSON (or the original web app). A
// blob is accepted only when it decodes with a non-empty title and both
// column keys present; anything else is ErrInvalidFile and the caller's
// document should stay as it was.
func ImportJSON(data []byte) (journey.Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return journey.Document{}, ErrInvalidFile
	}
	if _, ok := probe["current"]; !ok {
		return journey.Document{}, ErrInvalidFile
	}
	if _, ok := probe["future"]; !ok {
		return journey.Document{}, ErrInvalidFile
	}
	var doc journey.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return journey.Document{}, ErrInvalidFile
	}
	if strings.TrimSpace(doc.Title) == "" {
		return journey.Document{}, ErrInvalidFile
	}
	doc.Current.ID = journey.Current
	doc.Future.ID = journey.Future
	return doc, nil
}

// JSONFilename derives the export filename from the map title.
func JSONFilename(title string) string {
	return baseName(title) + "_Journey_Map.json"
}

// PDFFilename derives the PDF export filename from the map title.
func PDFFilename(title string) string {
	return baseName(title) + "_Journey_Map.pdf"
}

func baseName(title string) string {
	return whitespace.ReplaceAllString(title, "_")
}
