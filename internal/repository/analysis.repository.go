package repository

import (
	"context"
	"findata/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// AnalysisRepository answers free-form questions about tracked assets
// using any OpenAI-compatible chat endpoint.
type AnalysisRepository interface {
	Analyze(ctx context.Context, marketData string, question string) (string, error)
}

type chatCompletionsClient interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

type analysisRepositoryHandler struct {
	Completions chatCompletionsClient
	Model       string
}

func NewAnalysisRepository(apiKey, baseURL, model string, timeout time.Duration) AnalysisRepository {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	client := openai.NewClient(opts...)

	return analysisRepositoryHandler{
		Completions: &client.Chat.Completions,
		Model:       model,
	}
}

const analysisSystemPrompt = `You are a financial analyst assistant. Analyze the following market data and provide insights.
Focus on:
1. Overall market trends and patterns
2. Correlations between different assets
3. Significant price movements and their potential causes
4. Market sentiment and potential future movements
5. Volume and market cap analysis

Keep responses clear, concise, and professional.
Highlight any interesting patterns or relationships between different assets.`

func (h analysisRepositoryHandler) Analyze(ctx context.Context, marketData string, question string) (string, error) {
	userPrompt := fmt.Sprintf("Market Data:\n%s\n\nQuestion: %s", marketData, question)

	resp, err := h.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(h.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisSystemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		return "", fmt.Errorf("%w: analysis request failed: %w", domain.ErrGenerationFailed, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: analysis model returned no choices", domain.ErrGenerationFailed)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
