package ai

import (
	"context"
	"errors"
)

var (
	// ErrMissingGeminiKey is returned by the Gemini model when GEMINI_API_KEY is empty
	ErrMissingGeminiKey = errors.New("GEMINI_API_KEY não configurada")
	// ErrMissingOpenAIKey is returned by the OpenAI model when OPENAI_API_KEY is empty
	ErrMissingOpenAIKey = errors.New("OPENAI_API_KEY não configurada")
	// ErrGeminiNotConfigured is the user-facing message of the product form when no key is set
	ErrGeminiNotConfigured = errors.New("Chave da API do Google Gemini não configurada.")
	// ErrEmptyResponse is returned when the provider answered without any text
	ErrEmptyResponse = errors.New("Resposta vazia da OpenAI")
)

// ImagePart is an inline image sent along with a prompt
type ImagePart struct {
	MIMEType string
	Data     []byte
}

// Model is a remote generative model answering a prompt with text
type Model interface {
	// Name identifies the provider in logs and metrics
	Name() string
	// Configured reports whether the model has credentials
	Configured() bool
	Generate(ctx context.Context, prompt string, images ...ImagePart) (string, error)
}
