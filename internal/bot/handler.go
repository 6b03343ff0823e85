// Package bot wires the cache-backed search client, the renderer and the
// optional reformatter into the single entry point the command surfaces use.
package bot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kayz/nethys/internal/nethys"
	"github.com/kayz/nethys/internal/reformat"
	"github.com/kayz/nethys/internal/render"
)

// ErrorMessage is shown when the index could not be reached. Every query
// yields exactly one visible outcome; a silent timeout is a bug.
const ErrorMessage = "Error while searching. Please try again later."

// DefaultResultLimit is how many hits are requested per query.
const DefaultResultLimit = 5

// Searcher is the slice of the search client the handler needs.
type Searcher interface {
	Search(ctx context.Context, query string, limit int, category string) ([]nethys.Record, error)
}

// Handler answers search queries.
type Handler struct {
	searcher    Searcher
	rewriter    reformat.Rewriter
	resultLimit int
	log         zerolog.Logger
}

// New builds a handler. rewriter may be nil to disable the LLM path.
func New(searcher Searcher, rewriter reformat.Rewriter, resultLimit int, log zerolog.Logger) *Handler {
	if resultLimit <= 0 {
		resultLimit = DefaultResultLimit
	}
	return &Handler{
		searcher:    searcher,
		rewriter:    rewriter,
		resultLimit: resultLimit,
		log:         log,
	}
}

// HandleSearch resolves one query into exactly one output: a rendered card,
// a no-results notice, or a soft failure notice.
func (h *Handler) HandleSearch(ctx context.Context, query, category string) render.Output {
	results, err := h.searcher.Search(ctx, query, h.resultLimit, category)
	if err != nil {
		h.log.Warn().Err(err).Str("query", query).Msg("search failed")
		return render.Output{Text: ErrorMessage}
	}
	if len(results) == 0 {
		return render.Output{Text: NoResultsMessage(query)}
	}

	out := render.Format(results[0])
	if out.Card != nil {
		reformat.Apply(ctx, h.rewriter, out.Card, h.log)
	}
	return out
}

// NoResultsMessage is the user-facing notice for an empty result list.
func NoResultsMessage(query string) string {
	return fmt.Sprintf("**No results found for `%s`**", query)
}
