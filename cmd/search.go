package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kayz/nethys/internal/nethys"
	"github.com/kayz/nethys/internal/render"
)

var (
	searchCategory string
	searchLimit    int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run one query against the index and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", nethys.CategoryAll,
		"Category filter: "+strings.Join(nethys.Categories, ", ")+", or All")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0,
		"Maximum hits to request (0 uses the configured default)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if !nethys.ValidCategory(searchCategory) {
		return fmt.Errorf("unknown category %q", searchCategory)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if searchLimit > 0 {
		cfg.Search.ResultLimit = searchLimit
	}

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	out := handler.HandleSearch(cmd.Context(), query, searchCategory)

	text := out.Text
	if out.Card != nil {
		text = out.Card.PlainText()
	}
	for _, chunk := range render.Chunk(text, render.MessageLimit) {
		fmt.Fprintln(cmd.OutOrStdout(), chunk)
	}
	return nil
}
