// Package serialize writes streams of entities into a container format.
package serialize

import (
	"fmt"
	"io"
	"strings"

	"synthetic-data-generator/internal/core/types"
)

type Format string

const (
	FormatAvro Format = "avro"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avro", "binary":
		return FormatAvro, nil
	case "json", "delimited":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("invalid output format '%s', must be one of avro, json", s)
}

// Serializer opens record writers on top of an output stream.
type Serializer interface {
	Format() Format
	// Extension is the file name extension, without the dot.
	Extension() string
	NewWriter(w io.Writer, kind types.Kind) (RecordWriter, error)
}

// RecordWriter appends records to a container. Close finalizes the container
// but leaves the underlying stream open.
type RecordWriter interface {
	Append(e types.Entity) error
	Close() error
}

// SeparatorWriter is implemented by writers of formats that carry a marker
// between the anchor record and the rest of a file.
type SeparatorWriter interface {
	AppendSeparator() error
}

type Options struct {
	AvroCodec string
}

func New(format Format, opts Options) (Serializer, error) {
	switch format {
	case FormatAvro:
		codec, err := ParseCodec(opts.AvroCodec)
		if err != nil {
			return nil, err
		}
		return NewAvroSerializer(codec), nil
	case FormatJSON:
		return NewJSONSerializer(), nil
	}
	return nil, fmt.Errorf("unsupported output format '%s'", format)
}
