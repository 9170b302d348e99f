package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel           = "gpt-4o-mini"
	defaultGenerateTimeout = 30 * time.Second
)

// OpenAIGenerator implements TextGenerator with the OpenAI chat completion
// API. Every call carries a bounded timeout; a timeout is reported the same
// way as any other provider failure.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIGeneratorFromEnv constructs a generator from environment:
//   - OPENAI_API_KEY (required)
//   - OPENAI_MODEL (default gpt-4o-mini)
//   - LLM_TIMEOUT_SECONDS (default 30)
func NewOpenAIGeneratorFromEnv() (*OpenAIGenerator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("openai: OPENAI_API_KEY environment variable is not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	timeout := defaultGenerateTimeout
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if s, err := strconv.Atoi(v); err == nil && s > 0 {
			timeout = time.Duration(s) * time.Second
		}
	}

	return &OpenAIGenerator{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}, nil
}

var _ TextGenerator = (*OpenAIGenerator)(nil)

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
