// Package savegame persists the records of simulation objects.
package savegame

import (
	"encoding/json"
	"io"
)

// A Codec turns records into bytes and back.
type Codec interface {
	Encode(rec map[string]any, writer io.Writer) error
	Decode(reader io.Reader) (map[string]any, error)
}

// JSONCodec encodes records as JSON. Numbers decode as json.Number so that
// large counts survive the round trip.
type JSONCodec struct {
}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Encode writes the record to the writer.
func (c JSONCodec) Encode(rec map[string]any, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)

	return encoder.Encode(rec)
}

// Decode reads a record from the reader.
func (c JSONCodec) Decode(reader io.Reader) (map[string]any, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	rec := map[string]any{}

	err := decoder.Decode(&rec)
	if err != nil {
		return nil, err
	}

	return rec, nil
}
