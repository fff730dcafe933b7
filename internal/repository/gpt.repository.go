package repository

import (
	"context"
	"findata/internal/domain"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

// GptRepository writes the market summary shown on the dashboard
type GptRepository interface {
	SummarizeMarket(ctx context.Context, marketDataJson string) (string, error)
}

type chatCompletionSender interface {
	Send(ctx context.Context, req *chatgpt.ChatCompletionRequest) (*chatgpt.ChatResponse, error)
}

type gptRepositoryHandler struct {
	GptClient chatCompletionSender
	Model     string
}

func NewGptRepository(apiKey, model string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
		Model:     model,
	}, nil
}

const summarySystemPrompt = "You are a financial analyst providing market insights."

const summaryPrompt = `Generate a concise and insightful summary of the current market trends based on the following data:
%s

Focus on:
1. Overall market sentiment
2. Notable price movements
3. Potential trends or patterns
4. Brief comparison between assets

Keep the summary under 200 words and use a professional tone.`

func (h gptRepositoryHandler) SummarizeMarket(ctx context.Context, marketDataJson string) (string, error) {
	model := chatgpt.ChatGPTModel(h.Model)
	if h.Model == "" {
		model = chatgpt.GPT35Turbo
	}

	resp, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: model,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: summarySystemPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: fmt.Sprintf(summaryPrompt, marketDataJson),
			},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to get summary from gpt: %w", domain.ErrGenerationFailed, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: gpt returned no choices", domain.ErrGenerationFailed)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
