package augment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Defaults for OpenAI.
const (
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
	DefaultModel    = "gpt-4o-mini"
)

// OpenAIConfig configures an OpenAI translator. Empty fields take defaults;
// the default client gives up after DefaultTimeout.
type OpenAIConfig struct {
	Endpoint string
	Model    string
	APIKey   string
	Client   *http.Client
}

// OpenAI translates with a chat completion model.
type OpenAI struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// NewOpenAI creates a translator for the OpenAI chat completions API.
// Without an API key the translator declines every request.
func NewOpenAI(conf OpenAIConfig) *OpenAI {
	o := &OpenAI{
		endpoint: conf.Endpoint,
		model:    conf.Model,
		apiKey:   conf.APIKey,
		client:   conf.Client,
	}
	if o.endpoint == "" {
		o.endpoint = DefaultEndpoint
	}
	if o.model == "" {
		o.model = DefaultModel
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: DefaultTimeout}
	}
	return o
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

var prompts = map[Direction][2]string{
	ToText: {
		"You are an assistant that converts emoji messages into natural, friendly English text.",
		"Convert the following emojis into a coherent English sentence:\n",
	},
	ToEmoji: {
		"You are an assistant that replaces words with emojis when appropriate, keeping the sentence readable.",
		"Convert this phrase into emojis (keep it human-readable):\n",
	},
}

// Translate is part of interface Translator.
func (o *OpenAI) Translate(ctx context.Context, dir Direction, input string) (string, bool) {
	if o.apiKey == "" {
		return "", false
	}
	text, err := o.complete(ctx, dir, input)
	if err != nil {
		tracer().Infof("OpenAI translation to %s failed: %v", dir, err)
		return "", false
	}
	return text, true
}

func (o *OpenAI) complete(ctx context.Context, dir Direction, input string) (string, error) {
	prompt, ok := prompts[dir]
	if !ok {
		return "", fmt.Errorf("unknown direction %v", dir)
	}
	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt[0]},
			{Role: "user", Content: prompt[1] + input},
		},
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("status %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	text := strings.TrimSpace(cr.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty answer")
	}
	return text, nil
}
