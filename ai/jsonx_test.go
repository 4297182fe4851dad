package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"plain object", `{"a":1}`, `{"a":1}`, true},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"prose around", `Aqui está: {"a":{"b":2}} espero ter ajudado`, `{"a":{"b":2}}`, true},
		{"no braces", "sem json aqui", "", false},
		{"only closing", "} antes {", "", false},
		{"braces in trailing prose", `{"a":1} e depois {nota}`, `{"a":1} e depois {nota}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSON(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSON_BracesInProseBreakExtraction(t *testing.T) {
	var v map[string]interface{}

	err := DecodeJSON(`Use {chaves} assim: {"score": 80}`, &v)

	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeJSON_NoObject(t *testing.T) {
	var v map[string]interface{}
	assert.ErrorIs(t, DecodeJSON("nada", &v), ErrInvalidFormat)
}

func TestFlexInt(t *testing.T) {
	var v struct {
		A flexInt `json:"a"`
		B flexInt `json:"b"`
		C flexInt `json:"c"`
	}

	require.NoError(t, DecodeJSON(`{"a": 82, "b": "64", "c": null}`, &v))

	assert.Equal(t, flexInt(82), v.A)
	assert.Equal(t, flexInt(64), v.B)
	assert.Equal(t, flexInt(0), v.C)
}

func TestFlexString(t *testing.T) {
	var v struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
		C flexString `json:"c"`
	}

	require.NoError(t, DecodeJSON(`{"a": "R$ 89,90", "b": 89.9, "c": null}`, &v))

	assert.Equal(t, flexString("R$ 89,90"), v.A)
	assert.Equal(t, flexString("89.9"), v.B)
	assert.Equal(t, flexString(""), v.C)
	assert.Error(t, DecodeJSON(`{"a": [1]}`, &v))
}
