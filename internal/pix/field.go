package pix

import (
	"fmt"
	"strings"
)

// Field is one tag-length-value entry. The length is derived from Value
// when the field is encoded.
type Field struct {
	Tag   string
	Value string
}

// NewField returns a field for tag and value.
func NewField(tag, value string) Field {
	return Field{Tag: tag, Value: value}
}

// Group returns a field whose value is the encoding of children.
func Group(tag string, children ...Field) Field {
	return Field{Tag: tag, Value: Encode(children...)}
}

// Len is the length of the field's value in characters.
func (f Field) Len() int {
	return len(f.Value)
}

// String renders the field as tag, two digit length and value.
func (f Field) String() string {
	return EncodeField(f.Tag, f.Value)
}

// EncodeField renders tag + zero padded length + value. It panics when the
// tag is not two ASCII digits or the value does not fit a two digit length;
// callers truncate values before they get here.
func EncodeField(tag, value string) string {
	if !isTag(tag) {
		panic(fmt.Sprintf("pix: invalid tag %q", tag))
	}
	if len(value) > MaxValueLength {
		panic(fmt.Sprintf("pix: value of tag %s is %d characters, maximum is %d", tag, len(value), MaxValueLength))
	}
	var b strings.Builder
	b.Grow(4 + len(value))
	b.WriteString(tag)
	b.WriteByte('0' + byte(len(value)/10))
	b.WriteByte('0' + byte(len(value)%10))
	b.WriteString(value)
	return b.String()
}

// Encode concatenates the encodings of fields in the given order.
func Encode(fields ...Field) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(EncodeField(f.Tag, f.Value))
	}
	return b.String()
}

func isTag(tag string) bool {
	return len(tag) == 2 && isDigit(tag[0]) && isDigit(tag[1])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
