package serialize

import (
	"encoding/json"
	"fmt"
	"io"

	"synthetic-data-generator/internal/core/types"
)

// Separator is written as a JSON string element between the anchor and the
// remaining records of a delimited file.
const Separator = ";"

// JSONSerializer writes one JSON array per file with one object per line.
type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Format() Format {
	return FormatJSON
}

func (s *JSONSerializer) Extension() string {
	return "json"
}

func (s *JSONSerializer) NewWriter(w io.Writer, kind types.Kind) (RecordWriter, error) {
	if _, err := io.WriteString(w, "["); err != nil {
		return nil, fmt.Errorf("error starting json array: %w", err)
	}
	return &jsonWriter{w: w, kind: kind}, nil
}

type jsonWriter struct {
	w        io.Writer
	kind     types.Kind
	elements int
}

func (w *jsonWriter) writeElement(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	prefix := ",\n"
	if w.elements == 0 {
		prefix = "\n"
	}
	if _, err := io.WriteString(w.w, prefix); err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	w.elements++
	return nil
}

func (w *jsonWriter) Append(e types.Entity) error {
	if e.Kind() != w.kind {
		return fmt.Errorf("cannot append %s record to %s array", e.Kind(), w.kind)
	}
	if err := w.writeElement(e); err != nil {
		return fmt.Errorf("error writing record %s: %w", e.UID(), err)
	}
	return nil
}

func (w *jsonWriter) AppendSeparator() error {
	if err := w.writeElement(Separator); err != nil {
		return fmt.Errorf("error writing separator: %w", err)
	}
	return nil
}

func (w *jsonWriter) Close() error {
	closing := "]\n"
	if w.elements > 0 {
		closing = "\n]\n"
	}
	if _, err := io.WriteString(w.w, closing); err != nil {
		return fmt.Errorf("error closing json array: %w", err)
	}
	return nil
}
