package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrInvalidFormat is returned when a model reply carries no parseable JSON object
var ErrInvalidFormat = errors.New("formato de resposta inválido")

// ExtractJSON returns the text between the first '{' and the last '}'.
// Prose with braces around the object defeats it; callers fall back accordingly.
func ExtractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// DecodeJSON extracts the JSON object from a model reply into v
func DecodeJSON(text string, v interface{}) error {
	raw, ok := ExtractJSON(text)
	if !ok {
		return ErrInvalidFormat
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return errors.Join(ErrInvalidFormat, err)
	}
	return nil
}

// flexInt accepts a JSON number or a numeric string
type flexInt float64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s json.Number
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n, err := s.Float64()
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// flexString accepts a JSON string or number and keeps it as text
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
