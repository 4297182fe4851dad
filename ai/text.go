package ai

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/socialboost/vision/models"
)

var (
	ErrProductAnalysisFormat = errors.New("Não foi possível gerar análise (formato inválido)")
	ErrContentGeneration     = errors.New("Não foi possível gerar conteúdo")
)

type productAnalysisReply struct {
	Score       flexInt `json:"score"`
	SocialMedia struct {
		Titles       []string `json:"titles"`
		Captions     []string `json:"captions"`
		Hashtags     []string `json:"hashtags"`
		BestTimes    []string `json:"bestTimes"`
		Improvements []string `json:"improvements"`
	} `json:"socialMedia"`
	Marketplace struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Keywords     []string `json:"keywords"`
		Category     string   `json:"category"`
		Improvements []string `json:"improvements"`
	} `json:"marketplace"`
}

// AnalyzeProduct generates the social media and marketplace suggestions of the product form
func (c *Client) AnalyzeProduct(ctx context.Context, name, description string) (*models.ProductAnalysisResult, error) {
	if !c.Primary.Configured() {
		return nil, ErrGeminiNotConfigured
	}

	text, err := c.Primary.Generate(ctx, productAnalysisPrompt(name, description))
	if err != nil {
		return nil, fmt.Errorf("Falha na API: %w", err)
	}

	var reply productAnalysisReply
	if err := DecodeJSON(text, &reply); err != nil {
		if _, found := ExtractJSON(text); !found {
			err = ErrProductAnalysisFormat
		}
		return nil, fmt.Errorf("Falha na API: %w", err)
	}

	score := defaultVisionScore
	if s := int(math.Round(float64(reply.Score))); s != 0 {
		score = clampScore(s)
	}

	sm, mp := reply.SocialMedia, reply.Marketplace
	return &models.ProductAnalysisResult{
		Product: models.ProductInfo{Name: name, Description: description},
		Suggestions: models.Suggestions{
			SocialMedia: models.SocialMediaSuggestions{
				Titles:       listOrDefault(sm.Titles),
				Captions:     listOrDefault(sm.Captions),
				Hashtags:     listOrDefault(sm.Hashtags),
				BestTimes:    listOrDefault(sm.BestTimes),
				Improvements: listOrDefault(sm.Improvements),
			},
			Marketplace: models.MarketplaceSuggestions{
				Title:        orDefault(mp.Title, name),
				Description:  orDefault(mp.Description, description),
				Keywords:     listOrDefault(mp.Keywords),
				Category:     orDefault(mp.Category, "Geral"),
				Improvements: listOrDefault(mp.Improvements),
			},
		},
		Score: score,
	}, nil
}

// GenerateSocialContent writes titles, captions and hashtags for a product seed
func (c *Client) GenerateSocialContent(ctx context.Context, seed *models.ProductData, ia *models.ImageAnalysis) (*models.SocialContent, error) {
	text, err := c.Primary.Generate(ctx, socialContentPrompt(seed, ia))
	if err != nil {
		return nil, err
	}

	raw, ok := ExtractJSON(text)
	if !ok {
		return nil, ErrContentGeneration
	}

	var content models.SocialContent
	if err := DecodeJSON(raw, &content); err != nil {
		return nil, err
	}
	content.Titles = listOrDefault(content.Titles)
	content.Captions = listOrDefault(content.Captions)
	content.Hashtags = listOrDefault(content.Hashtags)
	return &content, nil
}
