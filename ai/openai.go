package ai

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"github.com/socialboost/vision/utils"
)

const openAISystemPrompt = "Você é um assistente que extrai informações de produtos de páginas HTML. Responda APENAS em formato JSON válido."

// OpenAIModel is the secondary provider, asked for JSON objects only
type OpenAIModel struct {
	client    *openai.Client
	apiKey    string
	modelName string
}

// NewOpenAIModel creates an OpenAI chat model. An empty baseURL uses the public API.
func NewOpenAIModel(apiKey, modelName, baseURL string) *OpenAIModel {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIModel{
		client:    openai.NewClientWithConfig(cfg),
		apiKey:    apiKey,
		modelName: modelName,
	}
}

func (m *OpenAIModel) Name() string { return "openai" }

func (m *OpenAIModel) Configured() bool { return m.apiKey != "" }

// Generate runs a JSON-mode chat completion. Images are not sent to this provider.
func (m *OpenAIModel) Generate(ctx context.Context, prompt string, _ ...ImagePart) (string, error) {
	if m.apiKey == "" {
		return "", ErrMissingOpenAIKey
	}

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: m.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		perr := wrapProviderError(m.Name(), err)
		utils.AIRequestsTotal.WithLabelValues(m.Name(), perr.Kind.String()).Inc()
		return "", perr
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		utils.AIRequestsTotal.WithLabelValues(m.Name(), "empty").Inc()
		return "", ErrEmptyResponse
	}

	utils.AIRequestsTotal.WithLabelValues(m.Name(), "ok").Inc()
	return resp.Choices[0].Message.Content, nil
}
