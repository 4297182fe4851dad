package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/socialboost/vision/utils"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// GeminiModel calls Google Gemini through the generative-ai-go SDK
type GeminiModel struct {
	apiKey      string
	modelName   string
	rateLimiter *rate.Limiter
}

// NewGeminiModel creates a Gemini model paced to requestsPerMinute outbound calls
func NewGeminiModel(apiKey, modelName string, requestsPerMinute int) *GeminiModel {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)

	return &GeminiModel{
		apiKey:      apiKey,
		modelName:   modelName,
		rateLimiter: limiter,
	}
}

func (m *GeminiModel) Name() string { return "gemini" }

func (m *GeminiModel) Configured() bool { return m.apiKey != "" }

// Generate sends the prompt and the inline images and joins the text parts of the first candidate
func (m *GeminiModel) Generate(ctx context.Context, prompt string, images ...ImagePart) (string, error) {
	if m.apiKey == "" {
		return "", ErrMissingGeminiKey
	}

	if err := m.rateLimiter.Wait(ctx); err != nil {
		log.Printf("[Gemini] Rate limiter error: %v", err)
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(m.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(m.modelName)

	parts := []genai.Part{genai.Text(prompt)}
	for _, img := range images {
		parts = append(parts, genai.Blob{MIMEType: img.MIMEType, Data: img.Data})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		perr := wrapProviderError(m.Name(), err)
		utils.AIRequestsTotal.WithLabelValues(m.Name(), perr.Kind.String()).Inc()
		return "", perr
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		utils.AIRequestsTotal.WithLabelValues(m.Name(), "empty").Inc()
		return "", fmt.Errorf("no content generated")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	utils.AIRequestsTotal.WithLabelValues(m.Name(), "ok").Inc()
	return text.String(), nil
}
