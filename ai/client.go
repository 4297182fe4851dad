package ai

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client runs the SocialBoost prompts against a primary and a secondary model
type Client struct {
	Primary   Model
	Secondary Model
	// HTTPClient fetches product pages for URL import
	HTTPClient *http.Client
}

// NewClient creates a Client. Secondary may be nil, in which case no provider switch happens.
func NewClient(primary, secondary Model) *Client {
	return &Client{
		Primary:    primary,
		Secondary:  secondary,
		HTTPClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
