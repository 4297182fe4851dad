package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/socialboost/vision/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testImage = &models.ImageFile{Name: "foto.png", ContentType: "image/png", Data: []byte("png")}

func TestAnalyzeImage_JSONReplyWithDefaults(t *testing.T) {
	model := &fakeModel{replies: []string{"```json\n" + `{
		"composition": "Produto centralizado",
		"commercialAppeal": {"score": 88, "strengths": ["Fundo limpo"]},
		"improvements": []
	}` + "\n```"}}
	c := NewClient(model, nil)

	ia, err := c.AnalyzeImage(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, "Produto centralizado", ia.Composition)
	assert.Equal(t, "Iluminação adequada.", ia.Lighting)
	assert.Equal(t, "Paleta de cores harmoniosa.", ia.Colors)
	assert.Equal(t, "Boa qualidade técnica.", ia.Quality)
	assert.Equal(t, 88, ia.CommercialAppeal.Score)
	assert.Equal(t, []string{"Fundo limpo"}, ia.CommercialAppeal.Strengths)
	assert.Equal(t, []string{"Pode melhorar iluminação"}, ia.CommercialAppeal.Weaknesses)
	assert.Equal(t, []string{}, ia.Improvements)

	require.Len(t, model.images[0], 1)
	assert.Equal(t, "image/png", model.images[0][0].MIMEType)
	assert.Contains(t, model.prompts[0], "Responda em formato JSON estruturado.")
}

func TestAnalyzeImage_ScoreClamped(t *testing.T) {
	model := &fakeModel{replies: []string{`{"commercialAppeal": {"score": 140}}`}}

	ia, err := NewClient(model, nil).AnalyzeImage(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, 100, ia.CommercialAppeal.Score)
	assert.Equal(t, []string{"Melhorar iluminação", "Aumentar contraste"}, ia.Improvements)
}

func TestAnalyzeImage_TextFallback(t *testing.T) {
	reply := "Composição: regra dos terços bem aplicada\n" +
		"Iluminação: luz natural suave\n" +
		"Score: 81\n\n" +
		"Pontos fortes:\n- Tons vivos\n* Produto nítido\n• Fundo neutro\n\n" +
		"Melhorias:\n- a\n- b\n- c\n- d\n- e\n- f"
	model := &fakeModel{replies: []string{reply}}

	ia, err := NewClient(model, nil).AnalyzeImage(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, "regra dos terços bem aplicada", ia.Composition)
	assert.Equal(t, "luz natural suave", ia.Lighting)
	assert.Equal(t, "Paleta de cores harmoniosa.", ia.Colors)
	assert.Equal(t, "Boa qualidade técnica geral.", ia.Quality)
	assert.Equal(t, 81, ia.CommercialAppeal.Score)
	assert.Equal(t, []string{"Tons vivos", "Produto nítido", "Fundo neutro"}, ia.CommercialAppeal.Strengths)
	assert.Equal(t, []string{"Pode melhorar iluminação", "Adicionar mais contexto"}, ia.CommercialAppeal.Weaknesses)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ia.Improvements)
}

func TestAnalyzeImage_TextFallbackDefaults(t *testing.T) {
	model := &fakeModel{replies: []string{"Não consegui analisar."}}

	ia, err := NewClient(model, nil).AnalyzeImage(context.Background(), testImage)

	require.NoError(t, err)
	assert.Equal(t, 75, ia.CommercialAppeal.Score)
	assert.Equal(t, "Composição equilibrada com elementos bem distribuídos.", ia.Composition)
	assert.Equal(t, "Iluminação adequada para o tipo de produto.", ia.Lighting)
	assert.Equal(t, []string{"Produto bem destacado", "Boa composição visual", "Cores atrativas"}, ia.CommercialAppeal.Strengths)
	assert.Equal(t, []string{
		"Aumentar contraste para destacar detalhes",
		"Melhorar iluminação do produto",
		"Adicionar elementos de contexto",
	}, ia.Improvements)
}

func TestAnalyzeImage_ProviderError(t *testing.T) {
	model := &fakeModel{errs: []error{errors.New("network down")}}

	_, err := NewClient(model, nil).AnalyzeImage(context.Background(), testImage)

	assert.EqualError(t, err, "network down")
}

func TestAnalyzeImageStrict(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		model := &fakeModel{replies: []string{`{"composition":"ok","commercialAppeal":{"score":70}}`}}

		ia, err := NewClient(model, nil).AnalyzeImageStrict(context.Background(), testImage)

		require.NoError(t, err)
		assert.Equal(t, 70, ia.CommercialAppeal.Score)
		assert.Contains(t, model.prompts[0], "Responda APENAS em formato JSON válido")
	})

	t.Run("no json", func(t *testing.T) {
		model := &fakeModel{replies: []string{"Composição: boa"}}

		_, err := NewClient(model, nil).AnalyzeImageStrict(context.Background(), testImage)

		assert.EqualError(t, err, "Falha na análise da imagem: Não foi possível gerar análise da imagem (formato inválido)")
		assert.ErrorIs(t, err, ErrImageAnalysisFormat)
	})

	t.Run("provider failure", func(t *testing.T) {
		model := &fakeModel{errs: []error{errors.New("quota")}}

		_, err := NewClient(model, nil).AnalyzeImageStrict(context.Background(), testImage)

		assert.EqualError(t, err, "Falha na análise da imagem: quota")
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := NewClient(&unconfiguredModel{}, nil).AnalyzeImageStrict(context.Background(), testImage)

		assert.Equal(t, ErrGeminiNotConfigured, err)
	})
}
