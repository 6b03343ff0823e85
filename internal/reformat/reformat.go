// Package reformat is the optional best-effort rewriting of rendered
// descriptions through a language model. The deterministic renderer is the
// system of record: any provider failure leaves its output untouched.
package reformat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kayz/nethys/internal/render"
)

const systemPrompt = "You rewrite tabletop RPG reference text. Rewrite the description you are given so it reads clearly and compactly. Keep every game statistic and rules term intact. Reply with the rewritten description only."

// Rewriter rewrites one description. Implementations wrap a model provider.
type Rewriter interface {
	Name() string
	Rewrite(ctx context.Context, title, description string) (string, error)
}

// Config selects and configures a provider. An empty provider disables the
// reformatting path entirely.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

// New builds the configured rewriter, or nil when the path is disabled.
func New(cfg Config) (Rewriter, error) {
	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, nil
	case "openai":
		return newOpenAI(cfg), nil
	case "anthropic":
		return newAnthropic(cfg), nil
	default:
		return nil, fmt.Errorf("unknown reformat provider: %s", cfg.Provider)
	}
}

// Apply rewrites card's description in place when the provider succeeds.
// Errors, empty replies and over-length replies all keep the deterministic
// description.
func Apply(ctx context.Context, rw Rewriter, card *render.Card, log zerolog.Logger) {
	if rw == nil || card == nil || card.Description == "" {
		return
	}
	rewritten, err := rw.Rewrite(ctx, card.Title, card.Description)
	if err != nil {
		log.Debug().Err(err).Str("provider", rw.Name()).Msg("reformat failed, keeping deterministic output")
		return
	}
	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" || len(rewritten) > render.DescriptionLimit {
		log.Debug().Str("provider", rw.Name()).Int("len", len(rewritten)).Msg("reformat reply unusable, keeping deterministic output")
		return
	}
	card.Description = rewritten
}
