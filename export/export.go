// Package export renders analysis results as downloadable plain-text reports.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/socialboost/vision/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ContentType is the MIME type of every rendered report
const ContentType = "text/plain; charset=utf-8"

const (
	dateLayout = "02/01/2006, 15:04:05"
	separator  = "═══════════════════════════════════"
)

var ErrEmptyReport = errors.New("relatório vazio")

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]+")
	hyphenRuns   = regexp.MustCompile("-+")
)

// Render dispatches on the report variant and returns the text and its download file name
func Render(r models.Report, now time.Time) (string, string, error) {
	switch r.Variant {
	case models.VariantProductForm:
		if r.ProductForm == nil {
			return "", "", ErrEmptyReport
		}
		return ProductReport(r.ProductForm, now), ProductFileName(r.ProductForm.Product.Name), nil
	case models.VariantLegacy:
		if r.Legacy == nil {
			return "", "", ErrEmptyReport
		}
		return AnalysisReport(r.Legacy, now), AnalysisFileName(now), nil
	}
	return "", "", fmt.Errorf("%w: variante %q", ErrEmptyReport, r.Variant)
}

// ProductReport renders a product-form result
func ProductReport(r *models.ProductAnalysisResult, now time.Time) string {
	social := r.Suggestions.SocialMedia
	market := r.Suggestions.Marketplace

	captions := make([]string, len(social.Captions))
	for i, c := range social.Captions {
		captions[i] = fmt.Sprintf("\n%d. %s\n", i+1, c)
	}

	var b strings.Builder
	b.WriteString("ANÁLISE DE PRODUTO - SocialBoost Vision\n\n")
	fmt.Fprintf(&b, "PRODUTO:\n%s\n\n", r.Product.Name)
	fmt.Fprintf(&b, "DESCRIÇÃO:\n%s\n\n", r.Product.Description)
	fmt.Fprintf(&b, "SCORE: %d/100\n\n", r.Score)

	fmt.Fprintf(&b, "%s\nSUGESTÕES PARA REDES SOCIAIS\n%s\n\n", separator, separator)
	fmt.Fprintf(&b, "TÍTULOS:\n%s\n\n", numbered(social.Titles))
	fmt.Fprintf(&b, "LEGENDAS:\n%s\n\n", strings.Join(captions, "\n"))
	fmt.Fprintf(&b, "HASHTAGS:\n%s\n\n", strings.Join(social.Hashtags, " "))
	fmt.Fprintf(&b, "MELHORES HORÁRIOS:\n%s\n\n", strings.Join(social.BestTimes, "\n"))
	fmt.Fprintf(&b, "MELHORIAS:\n%s\n\n", numbered(social.Improvements))

	fmt.Fprintf(&b, "%s\nSUGESTÕES PARA MARKETPLACE\n%s\n\n", separator, separator)
	fmt.Fprintf(&b, "TÍTULO SEO:\n%s\n\n", market.Title)
	fmt.Fprintf(&b, "DESCRIÇÃO:\n%s\n\n", market.Description)
	fmt.Fprintf(&b, "PALAVRAS-CHAVE:\n%s\n\n", strings.Join(market.Keywords, ", "))
	fmt.Fprintf(&b, "CATEGORIA:\n%s\n\n", market.Category)
	fmt.Fprintf(&b, "MELHORIAS:\n%s\n\n", numbered(market.Improvements))

	fmt.Fprintf(&b, "---\nGerado em: %s\n", now.Format(dateLayout))
	return b.String()
}

// AnalysisReport renders an upload-section result
func AnalysisReport(r *models.AnalysisResult, now time.Time) string {
	var b strings.Builder
	b.WriteString("ANÁLISE DE POSTAGEM - SocialBoost Vision\n    \n")
	fmt.Fprintf(&b, "Score de Engajamento: %d/100\n\n", r.Score)
	fmt.Fprintf(&b, "TÍTULO SUGERIDO:\n%s\n\n", r.Title)
	fmt.Fprintf(&b, "LEGENDA:\n%s\n\n", r.Caption)
	fmt.Fprintf(&b, "HASHTAGS:\n%s\n\n", strings.Join(r.Hashtags, " "))
	fmt.Fprintf(&b, "DICAS DE MELHORIA:\n%s\n\n", numbered(r.Improvements))
	fmt.Fprintf(&b, "---\nGerado em: %s\n", now.Format(dateLayout))
	return b.String()
}

// ProductFileName names a product report after the product, e.g. analise-capa-de-painel.txt
func ProductFileName(name string) string {
	s := slug(name)
	if s == "" {
		s = "produto"
	}
	return "analise-" + s + ".txt"
}

// AnalysisFileName names an upload-section report after the export time in milliseconds
func AnalysisFileName(now time.Time) string {
	return fmt.Sprintf("analise-%d.txt", now.UnixMilli())
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}

func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, strings.ToLower(s))

	s = strings.Join(strings.Fields(s), "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
