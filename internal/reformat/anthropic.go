package reformat

import (
	"context"

	"github.com/liushuangls/go-anthropic/v2"
)

type anthropicRewriter struct {
	client *anthropic.Client
	model  anthropic.Model
}

func newAnthropic(cfg Config) *anthropicRewriter {
	var opts []anthropic.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
	}
	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaude3Haiku20240307
	}
	return &anthropicRewriter{
		client: anthropic.NewClient(cfg.APIKey, opts...),
		model:  model,
	}
}

func (r *anthropicRewriter) Name() string { return "anthropic" }

func (r *anthropicRewriter) Rewrite(ctx context.Context, title, description string) (string, error) {
	resp, err := r.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     r.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(title + "\n\n" + description),
		},
	})
	if err != nil {
		return "", err
	}
	return resp.GetFirstContentText(), nil
}
