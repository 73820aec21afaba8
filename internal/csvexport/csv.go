package csvexport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/model"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"
)

const (
	timestampFormat = "2006-01-02T15:04:05.000Z"
	filenameFormat  = "2006-01-02T15-04-05"

	// DefaultPrefix is used by GenerateFilename if no prefix is given
	DefaultPrefix = "export"

	// DefaultExtension is used by GenerateFilename if no extension is given
	DefaultExtension = "csv"
)

// ToCSV renders rows as CSV text.
// The header is the union of all field names in order of first appearance; rows lacking a field
// get an empty cell. Lines are separated by a single \n and there is no trailing newline.
func ToCSV(rows []Record) string {
	if len(rows) == 0 {
		return ""
	}

	var columns []string
	known := make(map[string]struct{})
	for _, row := range rows {
		for _, field := range row {
			if _, ok := known[field.Name]; ok {
				continue
			}
			known[field.Name] = struct{}{}
			columns = append(columns, field.Name)
		}
	}

	lines := make([]string, 0, len(rows)+1)
	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = escape(column)
	}
	lines = append(lines, strings.Join(header, ","))
	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			value, _ := row.Get(column)
			cells[i] = escape(format(value))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// Export writes the CSV representation of rows to writer.
// If there are no rows nothing is written and false is returned.
func Export(writer io.Writer, rows []Record) (bool, error) {
	if len(rows) == 0 {
		log.Warn().Msg("there is no data to export")
		return false, nil
	}
	if _, err := io.WriteString(writer, ToCSV(rows)); err != nil {
		return false, err
	}
	return true, nil
}

// ExportFile writes the CSV representation of rows into a new file in dir named using GenerateFilename.
// It returns the path of the written file or an empty string if there were no rows.
func ExportFile(dir, prefix string, rows []Record, now time.Time) (string, error) {
	if len(rows) == 0 {
		log.Warn().Str("prefix", prefix).Msg("there is no data to export")
		return "", nil
	}
	path := filepath.Join(dir, GenerateFilename(prefix, DefaultExtension, now))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := Export(file, rows); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateFilename builds a file name of the form <prefix>_<YYYY-MM-DDTHH-MM-SS>.<extension> using the UTC time of now
func GenerateFilename(prefix, extension string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if extension == "" {
		extension = DefaultExtension
	}
	return prefix + "_" + now.UTC().Format(filenameFormat) + "." + extension
}

func format(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case json.RawMessage:
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, typed); err != nil {
			return string(typed)
		}
		return compacted.String()
	case time.Time:
		return typed.UTC().Format(timestampFormat)
	case *time.Time:
		if typed == nil {
			return ""
		}
		return typed.UTC().Format(timestampFormat)
	case model.NullTime:
		if !typed.Valid {
			return ""
		}
		return format(typed.Time)
	case *model.NullTime:
		if typed == nil {
			return ""
		}
		return format(*typed)
	case fmt.Stringer:
		return typed.String()
	}

	if marshaler, ok := value.(json.Marshaler); ok {
		encoded, err := marshaler.MarshalJSON()
		if err != nil {
			return fmt.Sprint(value)
		}
		var scalar any
		if err := json.Unmarshal(encoded, &scalar); err == nil {
			switch typed := scalar.(type) {
			case nil:
				return ""
			case string:
				return typed
			}
		}
		return string(encoded)
	}

	reflected := reflect.ValueOf(value)
	if reflected.Kind() == reflect.Pointer {
		if reflected.IsNil() {
			return ""
		}
		return format(reflected.Elem().Interface())
	}
	switch reflected.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(encoded)
	}
	return fmt.Sprint(value)
}

func escape(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
