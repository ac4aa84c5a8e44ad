package vin

import (
	"errors"
	"fmt"
	"strings"

	"vindec/internal/models"
	"vindec/pkg/log"

	"go.uber.org/zap"
)

// ErrInvalidFormat is returned for VINs with the wrong length or characters
// outside the VIN alphabet.
var ErrInvalidFormat = errors.New("invalid VIN format")

const (
	// NotFitted is the code used for options the car was built without.
	NotFitted = "-"

	unknownPrefix = "[UNKNOWN]"
)

// Result is a decoded VIN. Fields follow the layout order.
type Result struct {
	VIN    string
	Fields []models.DecodedField
}

// Get returns the decoded field for key.
func (r *Result) Get(key string) (models.DecodedField, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return models.DecodedField{}, false
}

// Code returns the raw code for key, or "" when absent.
func (r *Result) Code(key string) string {
	f, _ := r.Get(key)
	return f.Code
}

// Unknown lists the fields whose code was not found in their table.
func (r *Result) Unknown() []models.DecodedField {
	var out []models.DecodedField
	for _, f := range r.Fields {
		if !f.Known {
			out = append(out, f)
		}
	}
	return out
}

// Decoder slices VINs against a fixed field layout. It holds no mutable
// state and is safe for concurrent use.
type Decoder struct {
	fields []Field
	length int
}

// NewDecoder returns a decoder for the given layout.
func NewDecoder(layout []Field) *Decoder {
	d := &Decoder{fields: layout}
	for _, f := range layout {
		d.length += f.Len
	}
	return d
}

var defaultDecoder = NewDecoder(fields)

// Decode decodes vin with the Rivett layout.
func Decode(vin string) (*Result, error) {
	return defaultDecoder.Decode(vin)
}

// Decode validates vin and maps every segment through its code table.
// Unknown codes are reported inside the result and never stop decoding.
func (d *Decoder) Decode(vin string) (*Result, error) {
	if err := d.Validate(vin); err != nil {
		return nil, err
	}

	res := &Result{
		VIN:    vin,
		Fields: make([]models.DecodedField, 0, len(d.fields)),
	}
	pos := 0
	for _, f := range d.fields {
		code := vin[pos : pos+f.Len]
		pos += f.Len

		df := models.DecodedField{Key: f.Key, Name: f.Name, Code: code, Known: true}
		if label, ok := f.Lookup(code); ok {
			df.Label = label
		} else {
			df.Label = fmt.Sprintf("%s %s", unknownPrefix, code)
			df.Known = false
			log.Debug("unknown VIN code", zap.String("field", f.Name), zap.String("code", code))
		}
		res.Fields = append(res.Fields, df)
	}
	return res, nil
}

// Validate checks length and alphabet.
func (d *Decoder) Validate(vin string) error {
	if len(vin) != d.length {
		return fmt.Errorf("%w: length %d (expected %d)", ErrInvalidFormat, len(vin), d.length)
	}
	for i := 0; i < len(vin); i++ {
		if !validChar(vin[i]) {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidFormat, vin[i], i+1)
		}
	}
	return nil
}

// validChar accepts digits, the not-fitted dash and uppercase letters
// except O and Q.
func validChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return true
	case c == 'O' || c == 'Q':
		return false
	case c >= 'A' && c <= 'Z':
		return true
	}
	return false
}

// Normalize cleans up hand-typed input: surrounding whitespace and inner
// spaces are removed and letters are uppercased.
func Normalize(input string) string {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToUpper(s)
}
