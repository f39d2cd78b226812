// Copyright 2026 The ScreenPilot Authors

// Package ai is the optional chat-completion branch of the demo workflows:
// it sends captured text, screenshots, and automation trees to an OpenAI
// chat-completion endpoint and parses the structured answers.
//
// The branch is optional by design. Workflows that cannot construct a client
// (no API key) skip it with a warning instead of failing.
package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

// ErrMissingAPIKey is returned by NewClient when no API key is provided.
var ErrMissingAPIKey = errors.New("ai: API key is required")

// ErrEmptyResponse is returned when the model answers with no content.
var ErrEmptyResponse = errors.New("ai: model returned an empty response")

// Client wraps the chat-completion API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a chat-completion client. The key is required; the model
// defaults to DefaultModel when empty.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{api: openai.NewClient(apiKey), model: model}, nil
}

// Model returns the model this client sends requests to.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a system and user message and returns the free-text answer.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return c.complete(ctx, system, user, nil)
}

// CompleteJSON is Complete constrained to return a single JSON object.
func (c *Client) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	format := &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	}
	return c.complete(ctx, system, user, format)
}

func (c *Client) complete(ctx context.Context, system, user string, format *openai.ChatCompletionResponseFormat) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:          c.model,
		ResponseFormat: format,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	return firstChoice(resp)
}

// CompleteVision sends a prompt together with a PNG image and returns the
// free-text answer.
func (c *Client) CompleteVision(ctx context.Context, prompt string, png []byte) (string, error) {
	if len(png) == 0 {
		return "", errors.New("ai: no image data")
	}

	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision completion failed: %w", err)
	}
	return firstChoice(resp)
}

func firstChoice(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
