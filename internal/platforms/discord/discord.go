// Package discord exposes the search handler as Discord slash commands.
package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/kayz/nethys/internal/bot"
	"github.com/kayz/nethys/internal/nethys"
	"github.com/kayz/nethys/internal/render"
)

const helpMessage = "**Archives of Nethys Bot**\n\n" +
	"• `/search <term>` searches the Archives of Nethys. The optional `category` argument narrows the result type.\n" +
	"  Use tab-completion for quick suggestions."

const deliveryErrorMessage = "Sorry, I was unable to display the result for your query. An unexpected error occurred."

// popularTerms feed the query autocomplete.
var popularTerms = []string{
	"longsword", "healing potion", "fireball", "leather armor", "shield",
	"dagger", "shortbow", "chain mail", "rapier", "meteor hammer",
}

// Config holds Discord configuration.
type Config struct {
	Token string // Bot token from the Discord Developer Portal
}

// Platform owns the Discord session and routes interactions to the handler.
type Platform struct {
	session *discordgo.Session
	handler *bot.Handler
	log     zerolog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates the Discord platform. The session is not opened yet.
func New(cfg Config, handler *bot.Handler, log zerolog.Logger) (*Platform, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord bot token is required")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	return &Platform{
		session: session,
		handler: handler,
		log:     log,
	}, nil
}

// Name returns the platform name.
func (p *Platform) Name() string { return "discord" }

// Start opens the connection and registers the slash commands.
func (p *Platform) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.session.AddHandler(p.onInteraction)

	if err := p.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}

	appID := p.session.State.User.ID
	registered, err := p.session.ApplicationCommandBulkOverwrite(appID, "", commandDefinitions())
	if err != nil {
		p.session.Close()
		return fmt.Errorf("failed to register commands: %w", err)
	}

	p.log.Info().
		Str("user", p.session.State.User.Username).
		Int("commands", len(registered)).
		Msg("connected to discord")
	return nil
}

// Stop shuts down the Discord connection.
func (p *Platform) Stop() error {
	if p.cancel != nil {
		p.cancel()
	}
	return p.session.Close()
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "search",
			Description: "Search Archives of Nethys for PF2e content",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "query",
					Description:  "Search term",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "category",
					Description:  "Optional category filter",
					Autocomplete: true,
				},
			},
		},
		{
			Name:        "help",
			Description: "Show help information",
		},
	}
}

func (p *Platform) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.Name {
		case "search":
			p.handleSearch(s, i, data)
		case "help":
			p.respondEphemeral(s, i, helpMessage)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		p.handleAutocomplete(s, i)
	}
}

func (p *Platform) handleSearch(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) {
	query, category := searchOptions(data)

	// Defer immediately; the index lookup can take several seconds.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		p.log.Error().Err(err).Msg("failed to defer interaction")
	}

	out := p.handler.HandleSearch(p.ctx, query, category)
	if err := p.deliver(s, i, out); err != nil {
		p.log.Error().Err(err).Str("query", query).Msg("follow-up failed")
		p.sendErrorNotice(s, i)
	}
}

// deliver sends a card as a single embed, or plain text as ordered chunks:
// the first as the primary follow-up, the rest as additional follow-ups.
func (p *Platform) deliver(s *discordgo.Session, i *discordgo.InteractionCreate, out render.Output) error {
	if out.Card != nil {
		_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embedFromCard(out.Card)},
		})
		return err
	}

	for _, chunk := range render.Chunk(out.Text, render.MessageLimit) {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: chunk,
		}); err != nil {
			return err
		}
	}
	return nil
}

// sendErrorNotice is the best-effort last resort after a failed delivery.
// If this one fails too, the failure is logged and swallowed.
func (p *Platform) sendErrorNotice(s *discordgo.Session, i *discordgo.InteractionCreate) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: deliveryErrorMessage,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		p.log.Error().Err(err).Msg("failed to send final error message")
	}
}

func (p *Platform) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		p.log.Error().Err(err).Msg("failed to respond to interaction")
	}
}

func (p *Platform) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, opt := range data.Options {
		if !opt.Focused {
			continue
		}
		switch opt.Name {
		case "category":
			choices = categoryChoices(opt.StringValue())
		case "query":
			choices = queryChoices(opt.StringValue())
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		p.log.Error().Err(err).Msg("failed to respond to autocomplete")
	}
}

func categoryChoices(current string) []*discordgo.ApplicationCommandOptionChoice {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, c := range append([]string{nethys.CategoryAll}, nethys.Categories...) {
		if !strings.Contains(strings.ToLower(c), strings.ToLower(current)) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: c, Value: c})
		if len(choices) == 25 {
			break
		}
	}
	return choices
}

func queryChoices(current string) []*discordgo.ApplicationCommandOptionChoice {
	if len(current) < 2 {
		return nil
	}
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, term := range popularTerms {
		if !strings.Contains(term, strings.ToLower(current)) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: term, Value: term})
		if len(choices) == 25 {
			break
		}
	}
	return choices
}

func searchOptions(data discordgo.ApplicationCommandInteractionData) (query, category string) {
	category = nethys.CategoryAll
	for _, opt := range data.Options {
		switch opt.Name {
		case "query":
			query = opt.StringValue()
		case "category":
			category = opt.StringValue()
		}
	}
	return query, category
}

func embedFromCard(card *render.Card) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(card.Sections))
	for _, s := range card.Sections {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   s.Name,
			Value:  s.Value,
			Inline: s.Inline,
		})
	}
	return &discordgo.MessageEmbed{
		Title:       card.Title,
		URL:         card.URL,
		Description: card.Description,
		Color:       card.Color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: card.Footer},
	}
}
