package base

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_RanksByFrequency(t *testing.T) {
	text := "Fone de Ouvido Bluetooth sem fio. Fone com cancelamento de ruído, fone premium!"

	got := ExtractKeywords(text)

	assert.Equal(t, []string{"fone", "ouvido", "bluetooth", "cancelamento", "ruído", "premium"}, got)
}

func TestExtractKeywords_DropsStopWordsAndShortTokens(t *testing.T) {
	got := ExtractKeywords("Para o produto: comprar muito mais de uma vez")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractKeywords_KeepsPortugueseLetters(t *testing.T) {
	got := ExtractKeywords("AÇÃO ação promoção! ção")

	assert.Equal(t, []string{"ação", "promoção"}, got)
}

func TestExtractKeywords_LimitsToTen(t *testing.T) {
	var words []string
	for i := 0; i < 12; i++ {
		words = append(words, fmt.Sprintf("palavra%02d", i))
	}

	got := ExtractKeywords(strings.Join(words, " "))

	assert.Len(t, got, 10)
	assert.Equal(t, words[:10], got)
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Equal(t, []string{}, ExtractKeywords(""))
	assert.Equal(t, []string{}, ExtractKeywords("  !!! ... "))
}
