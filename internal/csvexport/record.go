// Package csvexport turns lists of records into CSV text
package csvexport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// ErrNotAnArray is returned if the JSON to convert does not hold an array of objects
var ErrNotAnArray = errors.New("expected a JSON array of objects")

// Field represents a single named value of a record
type Field struct {
	Name  string
	Value any
}

// Record represents a single row of an export.
// Fields keep their order; it decides the column order of the header.
type Record []Field

// Get returns the value of the field called name
func (record Record) Get(name string) (any, bool) {
	for _, field := range record {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// FromMaps converts maps into records.
// Keys listed in order come first; the remaining keys of every map follow in lexical order.
func FromMaps(rows []map[string]any, order ...string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record, 0, len(row))
		seen := make(map[string]struct{}, len(order))
		for _, key := range order {
			seen[key] = struct{}{}
			if value, ok := row[key]; ok {
				record = append(record, Field{Name: key, Value: value})
			}
		}
		rest := make([]string, 0, len(row))
		for key := range row {
			if _, ok := seen[key]; !ok {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			record = append(record, Field{Name: key, Value: row[key]})
		}
		records = append(records, record)
	}
	return records
}

// FromJSON converts a JSON array of objects into records, keeping the key order of every object.
// Numbers are kept as json.Number; nested objects and arrays are kept as json.RawMessage.
func FromJSON(data []byte) ([]Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return nil, ErrNotAnArray
	}

	var records []Record
	for decoder.More() {
		record, err := decodeObject(decoder)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return records, nil
}

// FromValues converts a slice of JSON-serializable values (usually API records) into records
func FromValues(values any) ([]Record, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

func decodeObject(decoder *json.Decoder) (Record, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotAnArray
	}

	var record Record
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}

		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, err
		}
		value, err := scalar(raw)
		if err != nil {
			return nil, err
		}
		record = append(record, Field{Name: name, Value: value})
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return record, nil
}

func scalar(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '{', '[':
		return raw, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
