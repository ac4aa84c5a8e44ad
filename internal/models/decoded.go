package models

// DecodedField is one decoded VIN attribute.
type DecodedField struct {
	Key   string
	Name  string
	Code  string
	Label string
	// Known is false when Code is missing from the field's code table.
	Known bool
}
