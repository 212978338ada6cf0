package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseError reports input that is not valid JSON. Error returns the
// parser's own diagnostic text unchanged.
type ParseError struct {
	Msg    string
	Offset int64
	Line   int
	Column int
	err    error
}

func (e *ParseError) Error() string { return e.Msg }

func (e *ParseError) Unwrap() error { return e.err }

// Position renders the failing location as "line N, column M".
func (e *ParseError) Position() string {
	if e == nil || e.Line == 0 {
		return ""
	}
	return fmt.Sprintf("line %d, column %d", e.Line, e.Column)
}

// Parse decodes text as a single RFC 8259 JSON value, preserving object key
// order. Any failure is returned as a *ParseError.
func Parse(text string) (*Value, error) {
	data := []byte(text)
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newParseError(data, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return nil, newParseError(data, err)
	}
	return v, nil
}

func newParseError(data []byte, err error) *ParseError {
	pe := &ParseError{Msg: err.Error(), err: err}
	var syntax *json.SyntaxError
	switch {
	case errors.As(err, &syntax):
		pe.Offset = syntax.Offset
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		pe.Offset = int64(len(data))
	default:
		return pe
	}
	pe.Line, pe.Column = lineColumn(data, pe.Offset)
	return pe
}

// lineColumn converts a byte offset reported by encoding/json (which points
// just past the offending byte) into 1-based line and rune column numbers.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset > 0 {
		offset--
	}
	line, col := 1, 1
	for _, r := range string(data[:offset]) {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func readValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(t))
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func readObject(dec *json.Decoder) (*Value, error) {
	v := &Value{kind: KindObject, members: []Member{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		child, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		v.members = setMember(v.members, key, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}

func readArray(dec *json.Decoder) (*Value, error) {
	v := &Value{kind: KindArray, elements: []*Value{}}
	for dec.More() {
		child, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		v.elements = append(v.elements, child)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return v, nil
}
