// internal/domain/catalog/number.go
package catalog

import (
	"bytes"
	"math"
	"strconv"
)

// Number is a numeric value as the upstream API serves it: sometimes a JSON
// number, sometimes a numeric string, sometimes null or missing entirely.
// Parsing happens once at the decode boundary; anything that is not a finite
// number is treated as absent rather than as an error.
type Number struct {
	value float64
	valid bool
}

// NewNumber returns a valid Number holding v.
func NewNumber(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{value: v, valid: true}
}

// Float returns the parsed value and whether one is present.
func (n Number) Float() (float64, bool) {
	return n.value, n.valid
}

// Or returns the parsed value, or fallback when absent.
func (n Number) Or(fallback float64) float64 {
	if n.valid {
		return n.value
	}
	return fallback
}

// IsValid reports whether a finite value is present.
func (n Number) IsValid() bool {
	return n.valid
}

// UnmarshalJSON accepts numbers, quoted numbers, null and empty strings.
// Unparsable values decode as absent.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		*n = Number{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*n = Number{}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = Number{}
		return nil
	}
	*n = Number{value: f, valid: true}
	return nil
}

// MarshalJSON emits the value, or null when absent.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
}

// ID is an entity identifier as the upstream API serves it: Mongo-style
// string ids and numeric ids both occur, so everything is normalized to a
// string.
type ID string

// UnmarshalJSON accepts strings and numbers.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*id = ID(s)
	return nil
}

// MarshalJSON emits the id as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}

// IsEmpty reports whether the id is absent.
func (id ID) IsEmpty() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}
