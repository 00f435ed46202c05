package serialize

import (
	"fmt"
	"io"
	"strings"

	"synthetic-data-generator/internal/core/types"

	"github.com/hamba/avro/v2/ocf"
)

func ParseCodec(s string) (ocf.CodecName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "none":
		return ocf.Null, nil
	case "deflate":
		return ocf.Deflate, nil
	case "snappy":
		return ocf.Snappy, nil
	case "zstd", "zstandard":
		return ocf.ZStandard, nil
	}
	return "", fmt.Errorf("invalid avro codec '%s', must be one of null, deflate, snappy, zstandard", s)
}

// AvroSerializer writes Avro object container files.
type AvroSerializer struct {
	codec ocf.CodecName
}

func NewAvroSerializer(codec ocf.CodecName) *AvroSerializer {
	return &AvroSerializer{codec: codec}
}

func (s *AvroSerializer) Format() Format {
	return FormatAvro
}

func (s *AvroSerializer) Extension() string {
	return "avro"
}

func (s *AvroSerializer) NewWriter(w io.Writer, kind types.Kind) (RecordWriter, error) {
	schema, err := Schema(kind)
	if err != nil {
		return nil, err
	}

	enc, err := ocf.NewEncoderWithSchema(schema, w, ocf.WithCodec(s.codec))
	if err != nil {
		return nil, fmt.Errorf("error creating avro encoder: %w", err)
	}
	return &avroWriter{enc: enc, kind: kind}, nil
}

type avroWriter struct {
	enc  *ocf.Encoder
	kind types.Kind
}

func (w *avroWriter) Append(e types.Entity) error {
	if e.Kind() != w.kind {
		return fmt.Errorf("cannot append %s record to %s container", e.Kind(), w.kind)
	}
	if err := w.enc.Encode(e); err != nil {
		return fmt.Errorf("error encoding record %s: %w", e.UID(), err)
	}
	return nil
}

func (w *avroWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("error closing avro container: %w", err)
	}
	return nil
}
