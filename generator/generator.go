// Package generator writes social media copy for a product without calling any remote model.
package generator

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/socialboost/vision/models"
)

// Picker chooses an index in [0, n)
type Picker interface {
	IntN(n int) int
}

type randPicker struct{}

func (randPicker) IntN(n int) int { return rand.IntN(n) }

// Generator builds content from fixed template pools
type Generator struct {
	picker Picker
}

// New creates a Generator. A nil picker draws from math/rand.
func New(p Picker) *Generator {
	if p == nil {
		p = randPicker{}
	}
	return &Generator{picker: p}
}

// Content is the copy generated for a scraped product
type Content struct {
	Score        int
	Title        string
	Caption      string
	Hashtags     []string
	Improvements []string
}

const maxScore = 98

// GenerateIntelligentContent derives a score, a title, a caption, hashtags and tips from the product
func (g *Generator) GenerateIntelligentContent(p *models.ProductData) Content {
	return Content{
		Score:        calculateScore(p),
		Title:        g.title(p),
		Caption:      g.caption(p),
		Hashtags:     hashtags(p),
		Improvements: improvements(p),
	}
}

func calculateScore(p *models.ProductData) int {
	score := 50

	titleLen := utf8.RuneCountInString(p.Title)
	if titleLen > 20 {
		score += 10
	}
	if titleLen > 40 {
		score += 10
	}

	descLen := utf8.RuneCountInString(p.Description)
	if descLen > 50 {
		score += 8
	}
	if descLen > 200 {
		score += 7
	}

	if len(p.Images) > 0 {
		score += 5
	}
	if len(p.Images) > 2 {
		score += 5
	}

	if len(p.Keywords) > 3 {
		score += 5
	}
	if len(p.Keywords) > 6 {
		score += 5
	}

	if p.Price != "" {
		score += 5
	}

	return min(score, maxScore)
}

var qualityKeywords = map[string]bool{"qualidade": true, "premium": true, "luxo": true, "profissional": true}

func (g *Generator) title(p *models.ProductData) string {
	templates := []string{
		"🔥 " + prefix(p.Title, 50) + "... Você precisa ver!",
		"✨ Descobri isso e mudou tudo: " + prefix(p.Title, 45),
		"💎 " + prefix(p.Title, 50) + " - Vale cada centavo!",
		"🚀 Isso aqui é INCRÍVEL: " + prefix(p.Title, 45) + "!",
		"⚡ " + prefix(p.Title, 50) + " - Qualidade surpreendente!",
	}

	for _, k := range p.Keywords {
		if qualityKeywords[k] {
			return templates[2]
		}
	}
	return templates[g.picker.IntN(len(templates))]
}

func (g *Generator) caption(p *models.ProductData) string {
	return g.intro(p) + "\n\n" + body(p) + "\n\n" + g.cta()
}

func (g *Generator) intro(p *models.ProductData) string {
	firstWord, _, _ := strings.Cut(p.Title, " ")
	intros := []string{
		"Quem disse que qualidade custa caro? 🤔",
		"Você já conhece " + firstWord + "? 👀",
		"Isso aqui vai mudar sua vida! ✨",
		"Encontrei o produto PERFEITO e preciso compartilhar! 💎",
		"Testei e aprovei! Vem ver... 🔥",
	}
	return intros[g.picker.IntN(len(intros))]
}

func body(p *models.ProductData) string {
	if utf8.RuneCountInString(p.Description) > 100 {
		summary := prefix(p.Description, 150) + "..."
		return summary + "\n\n✅ Qualidade comprovada\n✅ Entrega rápida\n✅ Melhor custo-benefício"
	}

	var benefits []string
	for _, k := range firstN(p.Keywords, 3) {
		benefits = append(benefits, "✅ "+capitalize(k))
	}
	return "Esse produto tem tudo que você precisa:\n\n" + strings.Join(benefits, "\n") +
		"\n\n💯 Testado e aprovado por milhares de clientes satisfeitos!"
}

var ctas = []string{
	"👉 Link na bio para comprar!\n💬 Comenta aqui o que achou!",
	"🔗 Clica no link da bio e garante o seu!\n❤️ Salva esse post para não esquecer!",
	"⚡ Corre que é por tempo limitado!\n📲 Link na bio!",
	"🎯 Quer saber mais? Link na bio!\n💭 Me conta nos comentários!",
	"🛒 Disponível agora! Link na bio!\n⭐ Marca aquele amigo que precisa disso!",
}

func (g *Generator) cta() string {
	return ctas[g.picker.IntN(len(ctas))]
}

var (
	baseHashtags = []string{"#dicasdecompras", "#produtobom", "#recomendo", "#valedinheiro", "#comprasonline"}

	platformHashtags = map[models.Platform][]string{
		models.PlatformMercadoLivre: {"#mercadolivre", "#meli", "#comprasonline"},
		models.PlatformShopee:       {"#shopee", "#shopeebrasil", "#comprasonline"},
		models.PlatformAmazon:       {"#amazon", "#amazonbrasil", "#comprasonline"},
		models.PlatformGeneric:      {"#comprasonline", "#ecommerce"},
	}

	trendingHashtags = []string{"#foryou", "#viral"}
)

const maxHashtags = 15

func hashtags(p *models.ProductData) []string {
	var all []string
	for _, k := range firstN(p.Keywords, 5) {
		all = append(all, "#"+strings.Join(strings.Fields(k), ""))
	}
	all = append(all, baseHashtags...)
	all = append(all, platformHashtags[p.Platform]...)
	all = append(all, trendingHashtags...)

	seen := make(map[string]bool, len(all))
	tags := make([]string, 0, maxHashtags)
	for _, tag := range all {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == maxHashtags {
			break
		}
	}
	return tags
}

func improvements(p *models.ProductData) []string {
	var tips []string

	if p.Price == "" {
		tips = append(tips, "Adicione o preço do produto na descrição para aumentar conversões")
	}
	if len(p.Images) < 3 {
		tips = append(tips, "Use mais imagens do produto (mínimo 3-5) para mostrar diferentes ângulos")
	}
	if utf8.RuneCountInString(p.Description) < 100 {
		tips = append(tips, "Expanda a descrição do produto com mais detalhes e benefícios")
	}
	if len(p.Keywords) < 5 {
		tips = append(tips, "Adicione mais palavras-chave relevantes para melhorar SEO")
	}

	tips = append(tips,
		"Adicione depoimentos de clientes para aumentar credibilidade",
		"Use emojis estratégicos para destacar pontos importantes",
		"Crie senso de urgência com ofertas por tempo limitado",
	)
	return firstN(tips, 5)
}

// prefix returns the first n runes of s
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
