package groq

import (
	"errors"
	"os"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/net/context"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// CompletionRequest carries one system+user exchange to the completion
// provider. ForceJSON asks the provider for JSON-formatted output where
// supported.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	ForceJSON   bool
}

type ICompletion interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type groqClient struct {
	client *openai.Client
	model  string
}

func NewGroqClient() (ICompletion, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil, errors.New("groq API key is required")
	}

	model := os.Getenv("ACCOUNTANT_MODEL")
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL

	return &groqClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (g *groqClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.ForceJSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from Groq API")
	}

	return resp.Choices[0].Message.Content, nil
}
