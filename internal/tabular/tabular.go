// Package tabular reads keyword-tool exports. Files come either as UTF-16
// with a byte-order mark and tab separated fields, or as UTF-8 (optional
// BOM) with comma separated fields. The first row is always the header.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var (
	ErrNotFound = errors.New("tabular: file not found")
	ErrFormat   = errors.New("tabular: unrecognized format")
)

const (
	EncodingUTF16 = "utf-16"
	EncodingUTF8  = "utf-8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Field is a logical column known under several header names, in order of
// preference.
type Field struct {
	Name    string
	Aliases []string
}

type Row map[string]string

// Get returns the cell for column, "" when the row has none.
func (r Row) Get(column string) string { return r[column] }

type Table struct {
	Path     string
	Encoding string
	Header   []string
	Records  [][]string
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Resolve picks the first alias of f present in the header.
func (t *Table) Resolve(f Field) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, alias := range f.Aliases {
		for _, h := range t.Header {
			if h == alias {
				return h, true
			}
		}
	}
	return "", false
}

// Rows maps every record onto the header. Missing trailing cells become ""
// and cells beyond the header are dropped. With duplicate header names the
// later column wins.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, 0, len(t.Records))
	for _, rec := range t.Records {
		row := make(Row, len(t.Header))
		for i, h := range t.Header {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			row[h] = v
		}
		out = append(out, row)
	}
	return out
}

// Read loads path. The returned table is never nil; on error it is empty
// and the error wraps ErrNotFound or ErrFormat where that applies.
func Read(path string) (*Table, error) {
	empty := &Table{Path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return empty, fmt.Errorf("read %s: %w", path, err)
	}

	t, err := Parse(b)
	if err != nil {
		return empty, fmt.Errorf("%s: %w", path, err)
	}
	t.Path = path
	return t, nil
}

// Parse tries UTF-16/TSV first and falls back to UTF-8/CSV.
func Parse(b []byte) (*Table, error) {
	if len(b) == 0 {
		return &Table{}, nil
	}

	t, err16 := parseUTF16(b)
	if err16 == nil {
		return t, nil
	}
	t, err8 := parseUTF8(b)
	if err8 == nil {
		return t, nil
	}
	return &Table{}, fmt.Errorf("%w (utf-16: %v; utf-8: %v)", ErrFormat, err16, err8)
}

func parseUTF16(b []byte) (*Table, error) {
	if len(b)%2 != 0 {
		return nil, errors.New("odd byte count")
	}
	// ExpectBOM makes a missing byte-order mark an error instead of a guess.
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	text, err := dec.Bytes(b)
	if err != nil {
		return nil, err
	}
	t, err := parseDelimited(text, '\t')
	if err != nil {
		return nil, err
	}
	t.Encoding = EncodingUTF16
	return t, nil
}

func parseUTF8(b []byte) (*Table, error) {
	b = bytes.TrimPrefix(b, utf8BOM)
	if !utf8.Valid(b) {
		return nil, errors.New("invalid utf-8")
	}
	t, err := parseDelimited(b, ',')
	if err != nil {
		return nil, err
	}
	t.Encoding = EncodingUTF8
	return t, nil
}

func parseDelimited(text []byte, comma rune) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	t := &Table{Header: make([]string, len(header))}
	for i, h := range header {
		t.Header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}
