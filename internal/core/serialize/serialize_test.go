package serialize_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"synthetic-data-generator/internal/core/datagen"
	"synthetic-data-generator/internal/core/random"
	"synthetic-data-generator/internal/core/serialize"
	"synthetic-data-generator/internal/core/types"

	"github.com/hamba/avro/v2/ocf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entities(t *testing.T, kind types.Kind, n int) []types.Entity {
	gen, err := datagen.ForKind(kind)
	require.NoError(t, err)

	src := random.New(3)
	out := make([]types.Entity, n)
	for i := range out {
		out[i] = gen.Generate(src)
	}
	return out
}

func TestSchemasParse(t *testing.T) {
	for _, kind := range types.Kinds {
		schema, err := serialize.Schema(kind)
		require.NoError(t, err)
		assert.Contains(t, schema.String(), "syntheticdata."+string(kind))
	}
}

func TestAvroRoundTrip(t *testing.T) {
	for _, codec := range []string{"null", "deflate", "snappy"} {
		for _, kind := range types.Kinds {
			t.Run(codec+"/"+string(kind), func(t *testing.T) {
				s, err := serialize.New(serialize.FormatAvro, serialize.Options{AvroCodec: codec})
				require.NoError(t, err)
				assert.Equal(t, "avro", s.Extension())

				records := entities(t, kind, 25)

				var buf bytes.Buffer
				w, err := s.NewWriter(&buf, kind)
				require.NoError(t, err)
				_, isSeparated := w.(serialize.SeparatorWriter)
				assert.False(t, isSeparated)

				for _, e := range records {
					require.NoError(t, w.Append(e))
				}
				require.NoError(t, w.Close())

				dec, err := ocf.NewDecoder(&buf)
				require.NoError(t, err)

				i := 0
				for dec.HasNext() {
					var got types.Entity = &types.Employee{}
					if kind == types.KindTeacher {
						got = &types.Teacher{}
					}
					require.NoError(t, dec.Decode(got))
					assert.Equal(t, records[i], got)
					i++
				}
				require.NoError(t, dec.Error())
				assert.Equal(t, len(records), i)
			})
		}
	}
}

func TestAvroRejectsOtherKind(t *testing.T) {
	s := serialize.NewAvroSerializer(ocf.Null)

	var buf bytes.Buffer
	w, err := s.NewWriter(&buf, types.KindEmployee)
	require.NoError(t, err)
	assert.Error(t, w.Append(entities(t, types.KindTeacher, 1)[0]))
}

func TestJSONWithSeparator(t *testing.T) {
	s, err := serialize.New(serialize.FormatJSON, serialize.Options{})
	require.NoError(t, err)
	assert.Equal(t, "json", s.Extension())

	records := entities(t, types.KindEmployee, 4)

	var buf bytes.Buffer
	w, err := s.NewWriter(&buf, types.KindEmployee)
	require.NoError(t, err)

	require.NoError(t, w.Append(records[0]))
	sep, ok := w.(serialize.SeparatorWriter)
	require.True(t, ok)
	require.NoError(t, sep.AppendSeparator())
	for _, e := range records[1:] {
		require.NoError(t, w.Append(e))
	}
	require.NoError(t, w.Close())

	var elements []json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &elements))
	require.Len(t, elements, 5)
	assert.JSONEq(t, `";"`, string(elements[1]))

	var first types.Employee
	require.NoError(t, json.Unmarshal(elements[0], &first))
	assert.Equal(t, records[0], &first)
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	w, err := serialize.NewJSONSerializer().NewWriter(&buf, types.KindTeacher)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "[]\n", buf.String())
}

func TestParseFormatAndCodec(t *testing.T) {
	f, err := serialize.ParseFormat("AVRO")
	require.NoError(t, err)
	assert.Equal(t, serialize.FormatAvro, f)

	f, err = serialize.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, serialize.FormatJSON, f)

	_, err = serialize.ParseFormat("csv")
	assert.Error(t, err)

	_, err = serialize.ParseCodec("lz4")
	assert.Error(t, err)
}
