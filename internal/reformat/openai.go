package reformat

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type openAIRewriter struct {
	client *openai.Client
	model  string
}

func newOpenAI(cfg Config) *openAIRewriter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIRewriter{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (r *openAIRewriter) Name() string { return "openai" }

func (r *openAIRewriter) Rewrite(ctx context.Context, title, description string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     r.model,
		MaxTokens: 1024,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: title + "\n\n" + description},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
