package jsondoc

import (
	"bytes"
	"encoding/json"
	"math"
)

// Indent is the indentation unit used by Format.
const Indent = "    "

// Format serialises v as pretty-printed JSON with four-space indentation,
// object keys in insertion order and array elements untouched. Non-finite
// numbers are written as null.
func Format(v *Value) string {
	var compact bytes.Buffer
	writeCompact(&compact, v)
	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", Indent); err != nil {
		return compact.String()
	}
	return out.String()
}

// MarshalJSON implements json.Marshaler with insertion-ordered keys.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	writeCompact(&buf, v)
	return buf.Bytes(), nil
}

func writeCompact(buf *bytes.Buffer, v *Value) {
	switch Classify(v) {
	case KindNull:
		buf.WriteString("null")
	case KindBoolean, KindNumber:
		if v.kind == KindNumber && (math.IsInf(v.number, 0) || math.IsNaN(v.number)) {
			buf.WriteString("null")
			return
		}
		buf.WriteString(v.Canonical())
	case KindString:
		writeString(buf, v.text)
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, m.Key)
			buf.WriteByte(':')
			writeCompact(buf, m.Value)
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, e := range v.elements {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCompact(buf, e)
		}
		buf.WriteByte(']')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode always terminates with a newline.
	out := quoted.Bytes()[:quoted.Len()-1]
	// Line and paragraph separators are valid inside JSON strings and are
	// written raw, as JSON.stringify does.
	for i := 0; i < len(out); i++ {
		if out[i] != '\\' || i+1 >= len(out) {
			buf.WriteByte(out[i])
			continue
		}
		if out[i+1] == 'u' && i+6 <= len(out) {
			switch string(out[i+2 : i+6]) {
			case "2028":
				buf.WriteRune('\u2028')
				i += 5
				continue
			case "2029":
				buf.WriteRune('\u2029')
				i += 5
				continue
			}
		}
		buf.WriteByte(out[i])
		buf.WriteByte(out[i+1])
		i++
	}
}
