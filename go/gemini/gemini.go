// Package gemini drives Google's image generation models for preview art.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

const probePrompt = "Say hello"

// Opts holds Gemini client options.
type Opts struct {
	APIKey string   `long:"api-key" env:"API_KEY" description:"Google AI Studio API key"`
	Models []string `long:"model" env:"MODELS" env-delim:"," description:"Image generation models to probe, in order of preference" default:"gemini-3-pro-image-preview" default:"gemini-2.5-flash-image"`
}

// Client wraps a genai client for single-shot image generation.
type Client struct {
	opts   *Opts
	client *genai.Client
}

// NewClient creates a Gemini client. A missing API key is an error here so
// callers can treat it as a fatal precondition rather than a per-item failure.
func NewClient(ctx context.Context, opts *Opts) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("missing API key: set GEMINI_API_KEY (https://aistudio.google.com/app/apikey)")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: opts.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Client{opts: opts, client: client}, nil
}

// PickModel probes the configured models in order with a trivial text call and
// returns the first one that answers. A model that fails the probe is skipped
// for the whole run; there are no retries.
func (c *Client) PickModel(ctx context.Context) (string, error) {
	for _, model := range c.opts.Models {
		slog.InfoContext(ctx, "probing model", "model", model)
		contents := []*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: probePrompt}},
		}}
		config := &genai.GenerateContentConfig{
			ResponseModalities: []string{string(genai.MediaModalityText)},
		}
		if _, err := c.client.Models.GenerateContent(ctx, model, contents, config); err != nil {
			slog.WarnContext(ctx, "model not available", "model", model, "error", err)
			continue
		}
		return model, nil
	}
	return "", fmt.Errorf("no image generation model available among %s", strings.Join(c.opts.Models, ", "))
}

// GenerateImage sends the prompt and the reference screenshot to the model
// and returns the bytes of the first image part in the response. A response
// with no image part is an error; its parts are logged to aid debugging.
func (c *Client) GenerateImage(ctx context.Context, model, prompt string, screenshotPNG []byte) ([]byte, error) {
	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: screenshotPNG}},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.MediaModalityText), string(genai.MediaModalityImage)},
	}
	response, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}
	data, mimeType, ok := firstImagePart(response)
	if !ok {
		slog.WarnContext(ctx, "response contains no image", "parts", describeParts(response))
		return nil, fmt.Errorf("model %s returned no image part", model)
	}
	slog.DebugContext(ctx, "received image", "mime_type", mimeType, "bytes", len(data))
	return data, nil
}

// firstImagePart returns the first inline image payload in the response.
func firstImagePart(response *genai.GenerateContentResponse) ([]byte, string, bool) {
	for _, candidate := range response.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, true
			}
		}
	}
	return nil, "", false
}

// describeParts summarizes response parts for diagnostics.
func describeParts(response *genai.GenerateContentResponse) []string {
	var descriptions []string
	for _, candidate := range response.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			switch {
			case part.Text != "":
				preview := strings.ReplaceAll(part.Text, "\n", " ")
				if runes := []rune(preview); len(runes) > 80 {
					preview = string(runes[:80]) + "..."
				}
				descriptions = append(descriptions, fmt.Sprintf("text: %q", preview))
			case part.InlineData != nil:
				descriptions = append(descriptions, fmt.Sprintf("inline_data: %s", part.InlineData.MIMEType))
			default:
				descriptions = append(descriptions, "unknown")
			}
		}
	}
	if len(descriptions) == 0 {
		descriptions = append(descriptions, "no parts in response")
	}
	return descriptions
}
