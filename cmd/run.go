package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kayz/nethys/internal/bot"
	"github.com/kayz/nethys/internal/config"
	"github.com/kayz/nethys/internal/nethys"
	"github.com/kayz/nethys/internal/platforms/discord"
	"github.com/kayz/nethys/internal/reformat"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Discord bot",
	RunE:  runBot,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	token := cfg.DiscordToken()
	if token == "" {
		return fmt.Errorf("discord token missing: set discord.token in the config or DISCORD_TOKEN in the environment")
	}

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	platform, err := discord.New(discord.Config{Token: token}, handler, log.Logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := platform.Start(ctx); err != nil {
		return err
	}
	log.Info().Msg("bot running, press ctrl-c to exit")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	return platform.Stop()
}

func buildHandler(cfg *config.Config) (*bot.Handler, error) {
	client := nethys.NewClient(nethys.ClientConfig{
		APIBase:  cfg.Search.APIBase,
		WebBase:  cfg.Search.WebBase,
		Timeout:  time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
		CacheTTL: time.Duration(cfg.Search.CacheTTLSeconds) * time.Second,
	}, nethys.NewClock(), log.Logger)

	rewriter, err := reformat.New(reformat.Config{
		Provider: cfg.Reformat.Provider,
		APIKey:   cfg.Reformat.APIKey,
		BaseURL:  cfg.Reformat.BaseURL,
		Model:    cfg.Reformat.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("configure reformat provider: %w", err)
	}

	return bot.New(client, rewriter, cfg.Search.ResultLimit, log.Logger), nil
}
