// Package chat holds the assistant collaborators behind ports.ChatClient.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"

	systemInstruction = "You are LifeLink AI, a friendly assistant for a blood donation app in Nanjing. " +
		"Answer questions about donation eligibility, preparation, recovery and general health tips. " +
		"Keep answers short and encourage users to consult a medical professional for personal advice."
)

var errEmptyAnswer = errors.New("gemini returned no text")

// GeminiConfig configures the hosted model client.
type GeminiConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiClient calls the generateContent endpoint once per message.
type GeminiClient struct {
	http  *resty.Client
	model string
	key   string
	log   zerolog.Logger

	initOnce sync.Once
	initErr  error
}

func NewGeminiClient(cfg GeminiConfig, log zerolog.Logger) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(1).
		SetRetryWaitTime(500 * time.Millisecond)

	return &GeminiClient{http: client, model: cfg.Model, key: cfg.APIKey, log: log}
}

// Initialize checks the client is usable. Only the first call does any work.
func (c *GeminiClient) Initialize(_ context.Context) error {
	c.initOnce.Do(func() {
		if c.key == "" {
			c.initErr = errors.New("gemini: api key is not configured")
			return
		}
		c.log.Info().Str("model", c.model).Msg("chat initialised")
	})
	return c.initErr
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// SendMessage returns the model's first candidate as plain text.
func (c *GeminiClient) SendMessage(ctx context.Context, text string) (string, error) {
	if err := c.Initialize(ctx); err != nil {
		return "", err
	}

	var out generateResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.key).
		SetBody(generateRequest{
			SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
			Contents:          []content{{Role: "user", Parts: []part{{Text: text}}}},
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1beta/models/" + c.model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}

	var b strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		return "", errEmptyAnswer
	}
	return b.String(), nil
}
