package reformat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kayz/nethys/internal/render"
)

type stubRewriter struct {
	reply string
	err   error
}

func (s *stubRewriter) Name() string { return "stub" }

func (s *stubRewriter) Rewrite(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func TestApplyReplacesDescription(t *testing.T) {
	card := &render.Card{Title: "Longsword", Description: "original text"}
	Apply(context.Background(), &stubRewriter{reply: "tightened text"}, card, zerolog.Nop())
	if card.Description != "tightened text" {
		t.Fatalf("description = %q", card.Description)
	}
}

func TestApplyKeepsDeterministicOnError(t *testing.T) {
	card := &render.Card{Title: "Longsword", Description: "original text"}
	Apply(context.Background(), &stubRewriter{err: fmt.Errorf("boom")}, card, zerolog.Nop())
	if card.Description != "original text" {
		t.Fatalf("description = %q", card.Description)
	}
}

func TestApplyKeepsDeterministicOnEmptyReply(t *testing.T) {
	card := &render.Card{Title: "Longsword", Description: "original text"}
	Apply(context.Background(), &stubRewriter{reply: "   "}, card, zerolog.Nop())
	if card.Description != "original text" {
		t.Fatalf("description = %q", card.Description)
	}
}

func TestApplyKeepsDeterministicOnOversizeReply(t *testing.T) {
	card := &render.Card{Title: "Longsword", Description: "original text"}
	Apply(context.Background(), &stubRewriter{reply: strings.Repeat("x", render.DescriptionLimit+1)}, card, zerolog.Nop())
	if card.Description != "original text" {
		t.Fatalf("description = %q", card.Description)
	}
}

func TestApplyNilRewriterIsNoop(t *testing.T) {
	card := &render.Card{Title: "Longsword", Description: "original text"}
	Apply(context.Background(), nil, card, zerolog.Nop())
	if card.Description != "original text" {
		t.Fatalf("description = %q", card.Description)
	}
}

func TestNewProviderSelection(t *testing.T) {
	if rw, err := New(Config{}); err != nil || rw != nil {
		t.Fatalf("empty provider should disable reformatting, got %v %v", rw, err)
	}
	if rw, err := New(Config{Provider: "openai", APIKey: "k"}); err != nil || rw == nil {
		t.Fatalf("openai provider: %v %v", rw, err)
	}
	if rw, err := New(Config{Provider: "anthropic", APIKey: "k"}); err != nil || rw == nil {
		t.Fatalf("anthropic provider: %v %v", rw, err)
	}
	if _, err := New(Config{Provider: "mystery"}); err == nil {
		t.Fatalf("unknown provider must error")
	}
}
