package generator

import "github.com/socialboost/vision/models"

var (
	basicTitles = []string{
		"✨ Essa imagem está INCRÍVEL! Vem ver...",
		"🔥 Conteúdo que vai bombar nas redes!",
		"💎 Qualidade profissional - Aproveita!",
		"🚀 Isso aqui vai viralizar, tenho certeza!",
		"⚡ Visual impecável! Salva esse post!",
	}

	basicCaptions = []string{
		"Quando a qualidade fala por si só! 😍\n\nEsse visual ficou simplesmente perfeito.\n\n✅ Composição impecável\n✅ Cores vibrantes\n✅ Profissionalismo total\n\n👉 Salva esse post!\n💬 Marca aquele amigo que precisa ver isso!",
		"Olha que SHOW ficou isso! 🎨\n\nCada detalhe pensado com carinho para entregar o melhor resultado.\n\n💯 Qualidade garantida\n💯 Visual atrativo\n💯 Engajamento certo\n\n🔗 Quer saber mais? Me chama no direct!\n❤️ Deixa aquele like se curtiu!",
		"Isso aqui é o que eu chamo de CONTEÚDO! 🌟\n\nQuando você capricha nos detalhes, o resultado aparece.\n\n✨ Profissionalismo\n✨ Criatividade\n✨ Impacto visual\n\n📲 Compartilha com quem precisa ver!\n💭 Comenta aqui sua opinião!",
	}

	basicHashtagSets = [][]string{
		{"#conteudodqualidade", "#marketingdigital", "#redesociais", "#criacaodeconteudo", "#designgrafico", "#visualidentity", "#branding", "#socialmedia"},
		{"#fotografiaprofissional", "#producaodeconteudo", "#contentcreator", "#instagramtips", "#socialmediamarketing", "#digitalmarketing", "#contentmarketing", "#visualcontent"},
		{"#criatividadesemfim", "#designinspiration", "#marketingdeconteudo", "#estrategiadigital", "#conteudocriativo", "#socialmediatips", "#brandingdesign", "#visualmarketing"},
	}

	basicImprovements = []string{
		"Aumente o contraste em 10-15% para destacar melhor os elementos principais",
		"Considere adicionar texto overlay com call-to-action visível",
		"Experimente aplicar filtro de saturação +20% para cores mais vibrantes",
		"Adicione logo/marca d'água discreta no canto inferior",
		"Use regra dos terços para reposicionar elemento focal",
	}
)

const (
	basicMinScore = 70
	basicMaxScore = 92 // exclusive
)

// BasicImageAnalysis is the randomized image result used when the vision model is unavailable.
// PreviewURL is left for the caller.
func (g *Generator) BasicImageAnalysis() *models.AnalysisResult {
	tags := basicHashtagSets[g.picker.IntN(len(basicHashtagSets))]

	return &models.AnalysisResult{
		Type:         models.ContentImage,
		Score:        basicMinScore + g.picker.IntN(basicMaxScore-basicMinScore),
		Title:        basicTitles[g.picker.IntN(len(basicTitles))],
		Caption:      basicCaptions[g.picker.IntN(len(basicCaptions))],
		Hashtags:     append([]string(nil), tags...),
		Improvements: g.shuffled(basicImprovements)[:3],
	}
}

// shuffled returns a Fisher-Yates shuffled copy of s
func (g *Generator) shuffled(s []string) []string {
	out := append([]string(nil), s...)
	for i := len(out) - 1; i > 0; i-- {
		j := g.picker.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
