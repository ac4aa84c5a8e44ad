package savefile

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// Save file framing: 0x7E, tag length byte, tag, u32 LE body length, body.
const (
	EntryStart = 0x7E

	// VINTag names the entry holding the build sheet dictionary.
	VINTag = "VINGen4"

	ContainerNone       = 0x00
	ContainerDictionary = 0x52

	ValueTypeString = 0xFDE9F1EE
	ValueTypeInt32  = 0xE2A80856
	ValueTypeBool   = 0xAD4D7C9C
)

var errTruncated = errors.New("truncated data")

// Entry is one key/value pair of a save file dictionary.
type Entry struct {
	Key   string
	Value string
}

type header struct {
	container uint8
	keyType   uint32
	valueType uint32
	size      int
}

// findEntry returns the body of the first entry tagged tag.
func findEntry(buf []byte, tag string) ([]byte, bool) {
	i := 0
	for i < len(buf) {
		if buf[i] != EntryStart {
			i++
			continue
		}
		if i+1 >= len(buf) {
			return nil, false
		}
		tagSize := int(buf[i+1])
		tagEnd := i + 2 + tagSize
		if tagEnd+4 > len(buf) {
			return nil, false
		}
		bodyLen := int(binary.LittleEndian.Uint32(buf[tagEnd : tagEnd+4]))
		bodyStart := tagEnd + 4
		bodyEnd := bodyStart + bodyLen
		if bodyLen < 0 || bodyEnd > len(buf) {
			return nil, false
		}
		if string(buf[i+2:tagEnd]) == tag {
			return buf[bodyStart:bodyEnd], true
		}
		i = bodyEnd
	}
	return nil, false
}

// readHeader parses the container header at the start of an entry body.
func readHeader(body []byte) (header, error) {
	var h header
	if len(body) < 2 {
		return h, fmt.Errorf("header: %w", errTruncated)
	}
	if body[0] != 0xFF {
		h.container = body[0]
	}
	offset := 2
	if h.container == ContainerDictionary {
		if offset+4 > len(body) {
			return h, fmt.Errorf("header key type: %w", errTruncated)
		}
		h.keyType = binary.LittleEndian.Uint32(body[offset:])
		offset += 4
	}
	if offset+4 > len(body) {
		return h, fmt.Errorf("header value type: %w", errTruncated)
	}
	h.valueType = binary.LittleEndian.Uint32(body[offset:])
	offset += 4
	if h.keyType == 0 {
		offset++
	} else {
		offset += 2
	}
	if offset > len(body) {
		return h, fmt.Errorf("header properties: %w", errTruncated)
	}
	h.size = offset
	return h, nil
}

// parseValue decodes one value of valueType at *offset and advances it.
// Unknown types are read as four raw bytes rendered in hex.
func parseValue(data []byte, offset *int, valueType uint32) (string, error) {
	o := *offset
	switch valueType {
	case ValueTypeString:
		if o >= len(data) {
			return "", fmt.Errorf("string length: %w", errTruncated)
		}
		n := int(data[o])
		if o+1+n > len(data) {
			return "", fmt.Errorf("string of %d bytes: %w", n, errTruncated)
		}
		*offset = o + 1 + n
		return string(data[o+1 : o+1+n]), nil
	case ValueTypeBool:
		if o >= len(data) {
			return "", fmt.Errorf("bool: %w", errTruncated)
		}
		*offset = o + 1
		return strconv.FormatBool(data[o] != 0), nil
	}

	if o+4 > len(data) {
		return "", fmt.Errorf("value type %#x: %w", valueType, errTruncated)
	}
	*offset = o + 4
	if valueType == ValueTypeInt32 {
		return strconv.Itoa(int(int32(binary.LittleEndian.Uint32(data[o:])))), nil
	}
	return hex.EncodeToString(data[o : o+4]), nil
}

// parseDictionary decodes a u32 LE count followed by key/value pairs.
func parseDictionary(data []byte, keyType, valueType uint32) ([]Entry, error) {
	if len(data) < 4 {
		return nil, nil
	}
	count := int(binary.LittleEndian.Uint32(data))
	offset := 4
	entries := make([]Entry, 0, min(count, 64))
	for i := 0; i < count; i++ {
		key, err := parseValue(data, &offset, keyType)
		if err != nil {
			return entries, fmt.Errorf("entry %d key: %w", i, err)
		}
		val, err := parseValue(data, &offset, valueType)
		if err != nil {
			return entries, fmt.Errorf("entry %d (%s) value: %w", i, key, err)
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return entries, nil
}

// ParseEntries extracts the VINGen4 dictionary from raw save file bytes.
func ParseEntries(buf []byte) ([]Entry, error) {
	body, ok := findEntry(buf, VINTag)
	if !ok {
		return nil, ErrNoVINData
	}
	h, err := readHeader(body)
	if err != nil {
		return nil, err
	}
	if h.container != ContainerDictionary {
		return nil, fmt.Errorf("%w: container type %#x", ErrNoVINData, h.container)
	}
	return parseDictionary(body[h.size:], h.keyType, h.valueType)
}
