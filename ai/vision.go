package ai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/socialboost/vision/models"
)

var (
	ErrImageAnalysisFormat = errors.New("Não foi possível gerar análise da imagem (formato inválido)")

	scorePattern  = regexp.MustCompile(`(?i)score[:\s]+(\d+)`)
	bulletPattern = regexp.MustCompile(`^[-*•]\s*`)
)

const defaultVisionScore = 75

type imageAnalysisReply struct {
	Composition      string `json:"composition"`
	Lighting         string `json:"lighting"`
	Colors           string `json:"colors"`
	Quality          string `json:"quality"`
	CommercialAppeal *struct {
		Score      flexInt  `json:"score"`
		Strengths  []string `json:"strengths"`
		Weaknesses []string `json:"weaknesses"`
	} `json:"commercialAppeal"`
	Improvements []string `json:"improvements"`
}

// normalize fills every missing field with its default
func (r *imageAnalysisReply) normalize() *models.ImageAnalysis {
	ia := &models.ImageAnalysis{
		Composition:  orDefault(r.Composition, "Composição equilibrada."),
		Lighting:     orDefault(r.Lighting, "Iluminação adequada."),
		Colors:       orDefault(r.Colors, "Paleta de cores harmoniosa."),
		Quality:      orDefault(r.Quality, "Boa qualidade técnica."),
		Improvements: listOrDefault(r.Improvements, "Melhorar iluminação", "Aumentar contraste"),
	}

	ia.CommercialAppeal = models.CommercialAppeal{
		Score:      defaultVisionScore,
		Strengths:  []string{"Produto bem destacado"},
		Weaknesses: []string{"Pode melhorar iluminação"},
	}
	if ca := r.CommercialAppeal; ca != nil {
		if score := int(math.Round(float64(ca.Score))); score != 0 {
			ia.CommercialAppeal.Score = clampScore(score)
		}
		ia.CommercialAppeal.Strengths = listOrDefault(ca.Strengths, ia.CommercialAppeal.Strengths...)
		ia.CommercialAppeal.Weaknesses = listOrDefault(ca.Weaknesses, ia.CommercialAppeal.Weaknesses...)
	}
	return ia
}

// AnalyzeImage inspects an image with the primary model.
// A reply without JSON is mined heuristically, so only transport failures are errors.
func (c *Client) AnalyzeImage(ctx context.Context, img *models.ImageFile) (*models.ImageAnalysis, error) {
	text, err := c.Primary.Generate(ctx, visionPrompt, ImagePart{MIMEType: img.ContentType, Data: img.Data})
	if err != nil {
		return nil, err
	}

	var reply imageAnalysisReply
	if err := DecodeJSON(text, &reply); err == nil {
		return reply.normalize(), nil
	}
	return parseTextAnalysis(text), nil
}

// AnalyzeImageStrict is the product-form variant: the reply must carry JSON
func (c *Client) AnalyzeImageStrict(ctx context.Context, img *models.ImageFile) (*models.ImageAnalysis, error) {
	if !c.Primary.Configured() {
		return nil, ErrGeminiNotConfigured
	}

	text, err := c.Primary.Generate(ctx, strictVisionPrompt, ImagePart{MIMEType: img.ContentType, Data: img.Data})
	if err != nil {
		return nil, fmt.Errorf("Falha na análise da imagem: %w", err)
	}

	var reply imageAnalysisReply
	if err := DecodeJSON(text, &reply); err != nil {
		if _, found := ExtractJSON(text); !found {
			err = ErrImageAnalysisFormat
		}
		return nil, fmt.Errorf("Falha na análise da imagem: %w", err)
	}
	return reply.normalize(), nil
}

func parseTextAnalysis(text string) *models.ImageAnalysis {
	score := defaultVisionScore
	if m := scorePattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			score = clampScore(n)
		}
	}

	return &models.ImageAnalysis{
		Composition: orDefault(extractSection(text, "composição"), "Composição equilibrada com elementos bem distribuídos."),
		Lighting:    orDefault(extractSection(text, "iluminação"), "Iluminação adequada para o tipo de produto."),
		Colors:      orDefault(extractSection(text, "cores"), "Paleta de cores harmoniosa."),
		Quality:     orDefault(extractSection(text, "qualidade"), "Boa qualidade técnica geral."),
		CommercialAppeal: models.CommercialAppeal{
			Score:      score,
			Strengths:  listOrDefault(extractList(text, "pontos fortes"), "Produto bem destacado", "Boa composição visual", "Cores atrativas"),
			Weaknesses: listOrDefault(extractList(text, "pontos fracos"), "Pode melhorar iluminação", "Adicionar mais contexto"),
		},
		Improvements: listOrDefault(extractList(text, "melhorias"),
			"Aumentar contraste para destacar detalhes",
			"Melhorar iluminação do produto",
			"Adicionar elementos de contexto",
		),
	}
}

// extractSection returns the rest of the line following "<section>:"
func extractSection(text, section string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(section) + `[:\s]+([^\n]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractList returns up to 5 bullet lines following "<section>:" up to the next blank line.
// A nil result means the section was not found; an empty one means it had no items.
func extractList(text, section string) []string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(section) + `[:\s]+`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	block := text[loc[1]:]
	if i := strings.Index(block, "\n\n"); i >= 0 {
		block = block[:i]
	}

	items := []string{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		items = append(items, line)
		if len(items) == 5 {
			break
		}
	}
	return items
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// listOrDefault keeps an explicitly empty list and only replaces a missing one
func listOrDefault(v []string, def ...string) []string {
	if v == nil {
		return append([]string{}, def...)
	}
	return v
}
