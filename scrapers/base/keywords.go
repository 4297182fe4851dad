package base

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\sáàâãéèêíïóôõöúçñ]`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	stopWords = map[string]bool{
		"o": true, "a": true, "os": true, "as": true, "um": true, "uma": true,
		"de": true, "da": true, "do": true, "das": true, "dos": true,
		"em": true, "no": true, "na": true, "nos": true, "nas": true,
		"para": true, "com": true, "por": true, "e": true, "ou": true,
		"que": true, "se": true, "mais": true, "muito": true,
		"produto": true, "comprar": true,
	}
)

const maxKeywords = 10

// ExtractKeywords returns up to 10 of the most frequent meaningful words in text.
// Ties keep the order in which the words first appear.
func ExtractKeywords(text string) []string {
	cleaned := strings.ToLower(text)
	cleaned = nonWordPattern.ReplaceAllString(cleaned, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	keywords := []string{}
	if cleaned == "" {
		return keywords
	}

	frequency := make(map[string]int)
	var order []string
	for _, word := range strings.Split(cleaned, " ") {
		if utf8.RuneCountInString(word) <= 3 || stopWords[word] {
			continue
		}
		if frequency[word] == 0 {
			order = append(order, word)
		}
		frequency[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return frequency[order[i]] > frequency[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return append(keywords, order...)
}
