package ai

import (
	"fmt"
	"strings"

	"github.com/socialboost/vision/models"
)

const visionChecklist = `Analise esta imagem de produto/postagem para redes sociais e forneça uma análise DETALHADA em português do Brasil:

1. COMPOSIÇÃO:
   - Regra dos terços
   - Pontos focais
   - Enquadramento
   - Simetria/Assimetria

2. ILUMINAÇÃO:
   - Tipo de luz (natural/artificial)
   - Direção da luz
   - Qualidade (dura/suave)
   - Temperatura de cor

3. CORES:
   - Paleta de cores
   - Harmonia cromática
   - Contraste
   - Saturação

4. QUALIDADE TÉCNICA:
   - Nitidez
   - Exposição
   - Ruído/Granulação
   - Resolução aparente

5. APELO COMERCIAL (0-100):
   - Pontos fortes (liste 3-5)
   - Pontos fracos (liste 2-4)
   - Score geral

6. MELHORIAS ESPECÍFICAS:
   - Liste 5-7 sugestões PRÁTICAS e TÉCNICAS
   - Inclua valores específicos quando possível (ex: "aumentar contraste em 15%")
`

// visionPrompt lets the model answer loosely; the reply may be prose
const visionPrompt = visionChecklist + `
Responda em formato JSON estruturado.`

// strictVisionPrompt pins the JSON shape for the product form
const strictVisionPrompt = visionChecklist + `
Responda APENAS em formato JSON válido seguindo esta estrutura:
{
  "composition": "análise da composição",
  "lighting": "análise da iluminação",
  "colors": "análise das cores",
  "quality": "análise da qualidade técnica",
  "commercialAppeal": {
    "score": 85,
    "strengths": ["ponto forte 1", "ponto forte 2", ...],
    "weaknesses": ["ponto fraco 1", "ponto fraco 2", ...]
  },
  "improvements": ["melhoria 1", "melhoria 2", ...]
}`

func productAnalysisPrompt(name, description string) string {
	return fmt.Sprintf(`Analise este produto e gere sugestões COMPLETAS e PROFISSIONAIS para divulgação:

**PRODUTO:**
Nome: %s
Descrição: %s

**GERE EM FORMATO JSON:**

{
  "score": <número de 0-100 baseado no potencial de venda>,
  "socialMedia": {
    "titles": [<5 títulos chamativos para redes sociais, máx 60 caracteres, com emojis>],
    "captions": [<3 legendas completas e persuasivas, 150-200 caracteres, com storytelling e CTA>],
    "hashtags": [<15-20 hashtags relevantes, mix de nicho + genéricas + tendências>],
    "bestTimes": [<3 melhores horários para postar, formato: "Dia: HH:MM - HH:MM">],
    "improvements": [<5 sugestões específicas para melhorar presença em redes sociais>]
  },
  "marketplace": {
    "title": "<título otimizado para SEO com palavras-chave, máx 80 caracteres>",
    "description": "<descrição persuasiva e completa para marketplace, 200-300 caracteres>",
    "keywords": [<10-15 palavras-chave para SEO>],
    "category": "<categoria sugerida para marketplace>",
    "improvements": [<5 sugestões específicas para melhorar vendas em marketplace>]
  }
}

**IMPORTANTE:**
- Seja ESPECÍFICO para este produto
- Use linguagem BRASILEIRA
- Foque em CONVERSÃO e ENGAJAMENTO
- Sugestões devem ser ACIONÁVEIS`, name, description)
}

func socialContentPrompt(p *models.ProductData, ia *models.ImageAnalysis) string {
	visual := ""
	if ia != nil {
		visual = fmt.Sprintf("Análise visual: Score %d/100", ia.CommercialAppeal.Score)
	}

	return fmt.Sprintf(`Com base nestes dados de produto:
Título: %s
Descrição: %s
Palavras-chave: %s
%s

Gere conteúdo OTIMIZADO para redes sociais em português do Brasil:

1. TÍTULOS (gere 5 opções):
   - Máximo 60 caracteres
   - Use emojis estratégicos
   - Gatilhos mentais (urgência, exclusividade, curiosidade)
   - Foco em benefícios

2. LEGENDAS (gere 3 opções):
   - Estrutura: Gancho + Corpo + CTA
   - 150-200 caracteres
   - Storytelling envolvente
   - Call-to-action claro

3. HASHTAGS (gere 15-20):
   - Mix de nicho + genéricas + tendências
   - Alta/média/baixa concorrência
   - Relevantes para o produto

Responda em formato JSON:
{
  "titles": ["título 1", "título 2", ...],
  "captions": ["legenda 1", "legenda 2", ...],
  "hashtags": ["#hashtag1", "#hashtag2", ...]
}`, p.Title, p.Description, strings.Join(p.Keywords, ", "), visual)
}

func primaryScrapePrompt(html string) string {
	return fmt.Sprintf(`Analise este HTML de página de produto e extraia as informações em formato JSON.

HTML (primeiros 50000 caracteres):
%s

Extraia APENAS as seguintes informações do produto:
1. Nome/Título do produto
2. Descrição completa do produto
3. Preço (se disponível)
4. URL da imagem principal (se disponível)

Responda APENAS em formato JSON válido:
{
  "name": "nome do produto",
  "description": "descrição completa do produto com todos os detalhes",
  "price": "preço formatado (opcional)",
  "imageUrl": "URL da imagem principal (opcional)"
}`, html)
}

func secondaryScrapePrompt(html string) string {
	return fmt.Sprintf(`Analise este HTML e extraia: nome, descrição, preço e URL da imagem principal do produto.

HTML (primeiros 50000 caracteres):
%s

Responda em JSON:
{
  "name": "nome do produto",
  "description": "descrição completa",
  "price": "preço (opcional)",
  "imageUrl": "URL da imagem (opcional)"
}`, html)
}
