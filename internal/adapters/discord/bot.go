package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"dmstrings/internal/config"
	"dmstrings/internal/ports/input"
	"dmstrings/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *zap.Logger
}

// NewBot creates a Bot and wires the use case and translator into the handler.
func NewBot(cfg *config.Config, useCase input.StringUseCase, translator output.T, logger *zap.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(useCase, translator, logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case cmdString:
		b.handler.HandleString(s, i)
	case cmdLocales:
		b.handler.HandleLocales(s, i)
	}
}

// Start runs the bot until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Warn("discord: command registration failed", zap.String("command", cmd.Name), zap.Error(err))
		}
	}

	b.logger.Info("bot online", zap.String("guild", b.config.GuildID))
	<-ctx.Done()
	return nil
}
