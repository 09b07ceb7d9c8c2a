package pix

import "fmt"

// Fields is an ordered TLV sequence as read from a payload.
type Fields []Field

// Find returns the first field with the given tag.
func (fs Fields) Find(tag string) (Field, bool) {
	for _, f := range fs {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

// Scan walks data as a flat TLV sequence: two character tag, two digit
// decimal length, then exactly that many characters of value. Nested groups
// are returned as a single field; call Scan on their value to descend.
func Scan(data string) (Fields, error) {
	fields := make(Fields, 0, 16)
	offset := 0
	for offset < len(data) {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("%w: truncated header at offset %d", ErrMalformedPayload, offset)
		}
		tag := data[offset : offset+2]
		if !isTag(tag) {
			return nil, fmt.Errorf("%w: invalid tag %q at offset %d", ErrMalformedPayload, tag, offset)
		}
		lengthStr := data[offset+2 : offset+4]
		if !isDigit(lengthStr[0]) || !isDigit(lengthStr[1]) {
			return nil, fmt.Errorf("%w: invalid length %q for tag %s", ErrMalformedPayload, lengthStr, tag)
		}
		length := int(lengthStr[0]-'0')*10 + int(lengthStr[1]-'0')
		offset += 4

		if offset+length > len(data) {
			return nil, fmt.Errorf("%w: tag %s needs %d characters, %d left", ErrMalformedPayload, tag, length, len(data)-offset)
		}
		fields = append(fields, Field{Tag: tag, Value: data[offset : offset+length]})
		offset += length
	}
	return fields, nil
}
